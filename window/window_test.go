package window

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble"
)

func TestFromConfig(t *testing.T) {
	cfg := bramble.DefaultConfig().Window
	cfg.Resizable = true
	rc := FromConfig(cfg)
	if rc.Title != cfg.Title || rc.Width != cfg.Width || rc.Height != cfg.Height || rc.TPS != cfg.TPS {
		t.Errorf("RunConfig = %+v", rc)
	}
	if !rc.Resizable {
		t.Error("Resizable not carried over")
	}
	if rc.QuitKey != ebiten.KeyEscape {
		t.Errorf("QuitKey = %v, want Escape", rc.QuitKey)
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	w := bramble.NewBuilder().Build()
	if err := Run(w, RunConfig{Width: 0, Height: 480}); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   bramble.Color
		want color.RGBA
	}{
		{"white", bramble.ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"transparent", bramble.Color{R: 1, G: 1, B: 1, A: 0}, color.RGBA{}},
		{"half red", bramble.Color{R: 1, A: 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", bramble.Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgba(tt.in); got != tt.want {
				t.Errorf("rgba(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResizeEventsOnlyOnChange(t *testing.T) {
	w := bramble.NewBuilder().Build()
	var s inputState
	s.resize(w, 640, 480)
	s.resize(w, 640, 480)
	s.resize(w, 800, 600)
	w.Step(1)

	events := w.Events()
	if len(events) != 2 {
		t.Fatalf("events = %+v, want 2 resizes", events)
	}
	if events[1].Type != bramble.InputResize || events[1].X != 800 || events[1].Y != 600 {
		t.Errorf("second resize = %+v", events[1])
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"frame12", "frame12"},
		{"  ", "unlabeled"},
		{"a b/c:d", "a_b_c_d"},
		{"v1.2-rc", "v1.2-rc"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	unpremultiply(pix)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}
