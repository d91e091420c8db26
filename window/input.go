package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bramble"
)

// inputState remembers what is needed to turn Ebitengine's polled input into
// edge events.
type inputState struct {
	keys         []ebiten.Key // reused buffer
	lastX, lastY float64
	havePointer  bool
	width        int
	height       int
}

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	bb bramble.MouseButton
}{
	{ebiten.MouseButtonLeft, bramble.MouseButtonLeft},
	{ebiten.MouseButtonRight, bramble.MouseButtonRight},
	{ebiten.MouseButtonMiddle, bramble.MouseButtonMiddle},
}

// collect pushes this tick's input events into the world.
func (s *inputState) collect(w *bramble.World) {
	mods := readModifiers()

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		w.PushEvent(bramble.InputEvent{Type: bramble.InputKeyDown, Key: k.String(), Modifiers: mods})
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		w.PushEvent(bramble.InputEvent{Type: bramble.InputKeyUp, Key: k.String(), Modifiers: mods})
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if !s.havePointer || x != s.lastX || y != s.lastY {
		if s.havePointer {
			w.PushEvent(bramble.InputEvent{
				Type: bramble.InputPointerMove, X: x, Y: y,
				DeltaX: x - s.lastX, DeltaY: y - s.lastY, Modifiers: mods,
			})
		}
		s.lastX, s.lastY, s.havePointer = x, y, true
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			w.PushEvent(bramble.InputEvent{Type: bramble.InputPointerDown, Button: b.bb, X: x, Y: y, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			w.PushEvent(bramble.InputEvent{Type: bramble.InputPointerUp, Button: b.bb, X: x, Y: y, Modifiers: mods})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		w.PushEvent(bramble.InputEvent{Type: bramble.InputWheel, X: x, Y: y, DeltaX: dx, DeltaY: dy, Modifiers: mods})
	}
}

// resize reports a changed layout size.
func (s *inputState) resize(w *bramble.World, width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	w.PushEvent(bramble.InputEvent{Type: bramble.InputResize, X: float64(width), Y: float64(height)})
}

// readModifiers returns the currently held modifier keys.
func readModifiers() bramble.KeyModifiers {
	var m bramble.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= bramble.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= bramble.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= bramble.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= bramble.ModMeta
	}
	return m
}

// rgba converts a non-premultiplied bramble color to color.RGBA.
func rgba(c bramble.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	a := clamp(c.A)
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: a,
	}
}
