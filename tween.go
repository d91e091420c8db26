package bramble

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenProperty selects the transform channel a Tween animates.
type TweenProperty uint8

const (
	TweenTranslation TweenProperty = iota // animates the local translation
	TweenScale                            // animates the local scale
)

// Tween is an Actor that animates one transform channel of its object from
// the value it has at Start to To over Duration seconds. Register it with
// RegisterActor[Tween] and attach it with AddComponent.
//
// When the object is destroyed the component goes with it; nothing else needs
// to be stopped.
type Tween struct {
	Property TweenProperty
	To       mgl64.Vec3
	Duration float32
	Ease     ease.TweenFunc
	// Loop restarts the tween from its starting value when it finishes.
	Loop bool

	tweens [3]*gween.Tween
	Done   bool
}

// TweenPosition returns a Tween moving an object to `to`.
func TweenPosition(to mgl64.Vec3, duration float32, fn ease.TweenFunc) Tween {
	return Tween{Property: TweenTranslation, To: to, Duration: duration, Ease: fn}
}

// TweenScaleTo returns a Tween scaling an object to `to`.
func TweenScaleTo(to mgl64.Vec3, duration float32, fn ease.TweenFunc) Tween {
	return Tween{Property: TweenScale, To: to, Duration: duration, Ease: fn}
}

// Start captures the starting value.
func (t *Tween) Start(obj *GameObject, _ *World) {
	fn := t.Ease
	if fn == nil {
		fn = ease.Linear
	}
	from := t.read(obj)
	for i := range t.tweens {
		t.tweens[i] = gween.New(float32(from[i]), float32(t.To[i]), t.Duration, fn)
	}
	t.Done = false
}

// Update advances the tween by the step's delta time and writes the value.
func (t *Tween) Update(obj *GameObject, w *World) {
	if t.Done {
		return
	}
	dt := float32(w.DeltaTime())
	var v mgl64.Vec3
	finished := true
	for i, tw := range t.tweens {
		val, done := tw.Update(dt)
		v[i] = float64(val)
		if !done {
			finished = false
		}
	}
	t.write(obj, v)
	if !finished {
		return
	}
	if t.Loop {
		for _, tw := range t.tweens {
			tw.Reset()
		}
		return
	}
	t.Done = true
}

func (t *Tween) read(obj *GameObject) mgl64.Vec3 {
	tr := obj.LocalTransform()
	if t.Property == TweenScale {
		return tr.Scale
	}
	return tr.Translation
}

func (t *Tween) write(obj *GameObject, v mgl64.Vec3) {
	tr := obj.LocalTransform()
	if t.Property == TweenScale {
		tr.Scale = v
	} else {
		tr.Translation = v
	}
	obj.SetLocalTransform(tr)
}
