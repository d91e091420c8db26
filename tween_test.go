package bramble

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// tween values pass through float32.
const tweenEpsilon = 1e-4

func assertVec3Loose(t *testing.T, name string, got, want mgl64.Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > tweenEpsilon {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

func newTweenWorld() *World {
	b := NewBuilder()
	RegisterActor[Tween](b)
	return b.Build()
}

func TestTweenPositionLinear(t *testing.T) {
	w := newTweenWorld()
	obj := w.NewGameObject()
	obj.SetPosition(mgl64.Vec3{0, 1, 0})
	c := AddComponent(obj, TweenPosition(mgl64.Vec3{10, 1, 0}, 1, nil))

	w.Step(0.5)
	assertVec3Loose(t, "halfway", obj.Position(), mgl64.Vec3{5, 1, 0})

	w.Step(0.5)
	assertVec3Loose(t, "end", obj.Position(), mgl64.Vec3{10, 1, 0})
	View(c, func(tw *Tween) {
		if !tw.Done {
			t.Error("tween not done")
		}
	})

	// A finished tween no longer writes.
	obj.SetPosition(mgl64.Vec3{})
	w.Step(0.5)
	assertVec3Loose(t, "after done", obj.Position(), mgl64.Vec3{})
}

func TestTweenScaleWithEase(t *testing.T) {
	w := newTweenWorld()
	obj := w.NewGameObject()
	AddComponent(obj, TweenScaleTo(mgl64.Vec3{3, 3, 3}, 2, ease.InQuad))

	w.Step(1)
	// InQuad at t=0.5 covers a quarter of the distance.
	assertVec3Loose(t, "halfway", obj.LocalTransform().Scale, mgl64.Vec3{1.5, 1.5, 1.5})
	w.Step(1)
	assertVec3Loose(t, "end", obj.LocalTransform().Scale, mgl64.Vec3{3, 3, 3})
	assertVec3(t, "translation untouched", obj.Position(), mgl64.Vec3{})
}

func TestTweenLoopRestarts(t *testing.T) {
	w := newTweenWorld()
	obj := w.NewGameObject()
	tw := TweenPosition(mgl64.Vec3{4, 0, 0}, 1, ease.Linear)
	tw.Loop = true
	c := AddComponent(obj, tw)

	w.Step(1)
	assertVec3Loose(t, "end of first run", obj.Position(), mgl64.Vec3{4, 0, 0})
	w.Step(0.25)
	assertVec3Loose(t, "restarted", obj.Position(), mgl64.Vec3{1, 0, 0})
	View(c, func(tw *Tween) {
		if tw.Done {
			t.Error("looping tween marked done")
		}
	})
}

func TestTweenMovesChildrenGlobally(t *testing.T) {
	w := newTweenWorld()
	parent := w.NewGameObject()
	child := w.NewChild(parent)
	child.SetPosition(mgl64.Vec3{0, 0, 1})
	AddComponent(parent, TweenPosition(mgl64.Vec3{2, 0, 0}, 1, nil))

	w.Step(1)
	assertVec3Loose(t, "child global", child.GlobalPosition(), mgl64.Vec3{2, 0, 1})
}
