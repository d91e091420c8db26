package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsOverlay caches a small FPS/TPS readout.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
}

func (o *fpsOverlay) update(dt float64) {
	if o.img == nil {
		o.img = ebiten.NewImage(100, 32)
		o.since = fpsRefresh
	}
	o.since += dt
	if o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// draw puts the overlay in the top-right corner.
func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(screen.Bounds().Dx()-o.img.Bounds().Dx()), 0)
	screen.DrawImage(o.img, &op)
}
