// Package window runs a bramble World inside an Ebitengine window.
//
// It is the windowing and input plumbing around the core: each tick it turns
// keyboard, mouse and wheel state into bramble.InputEvents, steps the world,
// and before each draw runs the world's pre-render pass and hands the screen
// to an optional draw callback.
//
//	world := bramble.NewBuilder().Build()
//	// ... spawn objects ...
//	if err := window.Run(world, window.RunConfig{Title: "demo", Width: 1280, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/bramble"
)

// ErrQuit may be returned from RunConfig.Update to end the loop cleanly.
var ErrQuit = errors.New("window: quit")

// RunConfig configures Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	TPS       int // fixed steps per second; 0 keeps Ebitengine's default
	Resizable bool

	// Update, when set, runs after each world step. Returning an error stops
	// the loop; ErrQuit stops it without reporting an error.
	Update func(w *bramble.World) error
	// Draw, when set, renders the frame after the pre-render pass.
	Draw func(screen *ebiten.Image, w *bramble.World)
	// QuitKey, when set, ends the loop when pressed. The zero Key (KeyA)
	// means none, here and for ScreenshotKey.
	QuitKey ebiten.Key
	// ScreenshotKey, when set, captures the next frame into ScreenshotDir.
	ScreenshotKey ebiten.Key
	ScreenshotDir string
	// ShowFPS draws an FPS/TPS readout over the frame.
	ShowFPS bool
}

// FromConfig converts the window section of a bramble.Config.
func FromConfig(cfg bramble.WindowConfig) RunConfig {
	return RunConfig{
		Title:     cfg.Title,
		Width:     cfg.Width,
		Height:    cfg.Height,
		TPS:       cfg.TPS,
		Resizable: cfg.Resizable,
		QuitKey:   ebiten.KeyEscape,

		ScreenshotKey: ebiten.KeyF12,
		ScreenshotDir: "screenshots",
	}
}

// Game adapts a World to ebiten.Game.
type Game struct {
	world *bramble.World
	cfg   RunConfig
	input inputState
	shots []string
	fps   fpsOverlay
}

// NewGame wraps world for use with ebiten.RunGame.
func NewGame(world *bramble.World, cfg RunConfig) *Game {
	return &Game{world: world, cfg: cfg}
}

// Update collects input and steps the world by one tick.
func (g *Game) Update() error {
	g.input.collect(g.world)
	if g.cfg.QuitKey != 0 && inpututil.IsKeyJustPressed(g.cfg.QuitKey) {
		return ErrQuit
	}
	if g.cfg.ScreenshotKey != 0 && inpututil.IsKeyJustPressed(g.cfg.ScreenshotKey) {
		g.Screenshot(fmt.Sprintf("frame%d", g.world.Frame()))
	}
	dt := 1.0 / float64(ebiten.TPS())
	g.world.Step(dt)
	if g.cfg.ShowFPS {
		g.fps.update(dt)
	}
	if g.cfg.Update != nil {
		return g.cfg.Update(g.world)
	}
	return nil
}

// Draw runs the pre-render pass and the draw callback, then writes any queued
// screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	g.world.PreRender()
	if cam, ok := g.world.CurrentCamera(); ok {
		screen.Fill(rgba(cam.Camera.ClearColor))
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen, g.world)
	}
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout keeps a 1:1 mapping between window and screen pixels and reports
// size changes to the world.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.resize(g.world, outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives world until the window closes, the quit key
// is pressed, or an Update callback fails.
func Run(world *bramble.World, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	world.Logger().Info("window open",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	err := ebiten.RunGame(NewGame(world, cfg))
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
