package bramble

import (
	"time"

	"go.uber.org/zap"
)

// World is the top-level object that owns the scene tree, the watchers and the
// per-frame loop. Build one with a Builder.
type World struct {
	cfg Config
	log *zap.Logger

	tree      *SceneTree
	watchers  []Watcher
	renderers []PreRenderer
	materials *TypeWatcher
	cameras   *TypeWatcher

	// objects are the top-level handles the world hands out and keeps alive.
	objects []*GameObject

	// Input is double-buffered: events pushed during frame N are visible
	// through Events during step N+1.
	events   []InputEvent
	incoming []InputEvent
	script   *InputScript

	assets       AssetSystem
	materialList []Material

	dt             float64
	frame          uint64
	resetRequested bool
}

// Tree returns the world's scene tree.
func (w *World) Tree() *SceneTree {
	return w.tree
}

// Root returns the root object of the scene tree.
func (w *World) Root() *GameObject {
	return w.tree.Root()
}

// Logger returns the world's logger. Never nil.
func (w *World) Logger() *zap.Logger {
	return w.log
}

// Config returns the settings the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Assets returns the asset system handed to the Builder, or nil.
func (w *World) Assets() AssetSystem {
	return w.assets
}

// DeltaTime returns the duration of the current step in seconds.
func (w *World) DeltaTime() float64 {
	return w.dt
}

// Frame returns the number of steps taken so far.
func (w *World) Frame() uint64 {
	return w.frame
}

// Watchers returns the registered watchers in step order. The returned slice
// MUST NOT be mutated.
func (w *World) Watchers() []Watcher {
	return w.watchers
}

// --- Objects ---

// NewGameObject creates an object under the root and keeps it alive until it
// is destroyed or the world is reset.
func (w *World) NewGameObject() *GameObject {
	obj := w.tree.NewNode(RootID)
	w.objects = append(w.objects, obj)
	return obj
}

// NewChild creates an object under parent.
func (w *World) NewChild(parent *GameObject) *GameObject {
	parent.mustAlive("NewChild")
	obj := w.tree.NewNode(parent.id)
	w.objects = append(w.objects, obj)
	return obj
}

// Objects returns the objects created through the world that were alive at
// the end of the last step. The returned slice MUST NOT be mutated.
func (w *World) Objects() []*GameObject {
	return w.objects
}

// --- Input ---

// PushEvent queues an input event for the next step.
func (w *World) PushEvent(e InputEvent) {
	w.incoming = append(w.incoming, e)
}

// Events returns the input events of the current step. The returned slice
// MUST NOT be mutated.
func (w *World) Events() []InputEvent {
	return w.events
}

// SetInputScript attaches a scripted input sequence. Its events are queued at
// the start of each step, ahead of the buffer swap.
func (w *World) SetInputScript(s *InputScript) {
	w.script = s
}

// --- Rendering side channel ---

// CurrentCamera returns the first active camera on an active object.
func (w *World) CurrentCamera() (CameraView, bool) {
	var view CameraView
	found := false
	w.cameras.Each(func(obj *GameObject, c *Component) {
		if found || !obj.Active {
			return
		}
		View(c, func(cam *Camera) {
			view = CameraView{
				Object:     obj,
				Camera:     *cam,
				View:       viewMatrix(obj),
				Projection: cam.Projection(),
			}
		})
		found = true
	})
	return view, found
}

// Materials returns the material aggregate computed by the last PreRender.
// The returned slice MUST NOT be mutated.
func (w *World) Materials() []Material {
	return w.materialList
}

// PreRender recomputes the list of materials on active objects and hands it to
// every processor. Call it once per frame, before rendering. Each call builds
// a new list, so a processor may keep the slice it was given.
func (w *World) PreRender() {
	list := make([]Material, 0, len(w.materialList))
	w.materials.Each(func(obj *GameObject, c *Component) {
		if !obj.Active {
			return
		}
		View(c, func(m *Material) {
			list = append(list, *m)
		})
	})
	w.materialList = list
	for _, r := range w.renderers {
		r.WatchPreRender(list)
	}
}

// --- Frame loop ---

// Step advances the world by dt seconds: it swaps the input buffers, polls the
// asset system, steps every watcher in registration order, prunes destroyed
// objects and finally performs a reset requested during the step.
func (w *World) Step(dt float64) {
	w.dt = dt
	w.frame++

	if w.script != nil {
		w.script.step(w)
	}
	w.events, w.incoming = w.incoming, w.events[:0]

	if w.assets != nil {
		w.assets.Poll()
	}

	var stats stepStats
	var t0 time.Time
	debug := w.cfg.Engine.Debug
	if debug {
		t0 = time.Now()
	}

	for _, wt := range w.watchers {
		if debug {
			t1 := time.Now()
			wt.Step(w)
			if d := time.Since(t1); d > stats.slowestTime {
				stats.slowest, stats.slowestTime = wt.Name(), d
			}
			continue
		}
		wt.Step(w)
	}

	if debug {
		stats.watcherTime = time.Since(t0)
		t0 = time.Now()
	}

	w.pruneObjects()

	if debug {
		stats.pruneTime = time.Since(t0)
		stats.objects = len(w.objects)
		stats.nodes = w.tree.Len()
		for _, wt := range w.watchers {
			if tw, ok := wt.(interface{ Pending() int }); ok {
				stats.pending += tw.Pending()
			}
			if tw, ok := wt.(interface{ Active() int }); ok {
				stats.active += tw.Active()
			}
		}
		w.debugLog(stats)
	}

	if w.resetRequested {
		w.resetRequested = false
		w.Reset()
	}
}

// RequestReset asks for a Reset at the end of the current step. Safe to call
// from start and update hooks.
func (w *World) RequestReset() {
	w.resetRequested = true
}

// Reset destroys every object in the scene and clears the root's components.
// Watchers are not touched: their entries stop resolving and are dropped on
// their next pass.
func (w *World) Reset() {
	objects := w.objects
	w.objects = nil
	for _, obj := range objects {
		obj.Destroy()
	}
	// Objects created straight through the tree are not tracked above.
	var stray []*GameObject
	for _, id := range w.tree.Children(RootID) {
		w.tree.Walk(id, func(id NodeID) bool {
			stray = append(stray, w.tree.Object(id))
			return true
		})
	}
	for _, obj := range stray {
		obj.Destroy()
	}
	w.tree.Root().ClearComponents()
	w.log.Debug("world reset", zap.Int("objects", len(objects)+len(stray)))
}

// pruneObjects drops destroyed objects from the world's holder list.
func (w *World) pruneObjects() {
	kept := w.objects[:0]
	for _, obj := range w.objects {
		if obj.Alive() {
			kept = append(kept, obj)
		}
	}
	clear(w.objects[len(kept):])
	w.objects = kept
}

func (w *World) maxDrainPasses() int {
	if n := w.cfg.Engine.MaxDrainPasses; n > 0 {
		return n
	}
	return DefaultMaxDrainPasses
}
