package bramble

import (
	"fmt"
)

// Watcher turns structural changes for the types it matches into start and
// update calls. A World steps its watchers in registration order.
type Watcher interface {
	ChangeListener
	Name() string
	Step(w *World)
}

// PreRenderer is implemented by watchers that take part in the pre-render pass.
type PreRenderer interface {
	WatchPreRender(materials []Material)
}

// Handler is the per-type operation set a TypeWatcher dispatches to.
type Handler interface {
	ObjectStart(obj *GameObject, c *Component, w *World)
	ObjectStep(obj *GameObject, c *Component, w *World)
}

// StopHandler is an optional Handler extension. ObjectStop is called once for
// every started entry that is removed by a ChangeRemove, at the next step
// boundary of its watcher.
type StopHandler interface {
	ObjectStop(obj *GameObject, c *Component)
}

// watchEntry is a generation-checked weak pair. It resolves only while the
// component is still attached, in the same attachment, to a live object.
type watchEntry struct {
	obj  *GameObject
	comp *Component
	seq  uint64
}

func (e watchEntry) resolve() bool {
	return e.comp.owner == e.obj && e.comp.attachSeq == e.seq && e.obj.Alive()
}

func (e watchEntry) is(c *Component) bool {
	return e.comp == c && e.seq == c.attachSeq
}

// TypeWatcher tracks every component of one TypeKey through the states
// pending (attached, not started), active (started, updated every step) and
// gone (pruned).
//
// Per step:
//
//	drain pending until empty, calling ObjectStart and moving entries to active
//	call ObjectStep on every active entry in activation order
//	prune active entries whose weak pair no longer resolves
type TypeWatcher struct {
	name    string
	key     TypeKey
	handler Handler

	pending []watchEntry
	batch   []watchEntry // reused drain buffer
	active  []watchEntry
	stopped []watchEntry

	// stepping is set while active is iterated; removals then leave active
	// alone and the prune pass drops the dead entries.
	stepping bool
}

// NewTypeWatcher creates a watcher for components of the given type.
func NewTypeWatcher(name string, key TypeKey, h Handler) *TypeWatcher {
	if h == nil {
		panic("bramble: watcher handler must not be nil")
	}
	if name == "" {
		name = key.String()
	}
	return &TypeWatcher{name: name, key: key, handler: h}
}

// Name returns the watcher's name, used in logs.
func (tw *TypeWatcher) Name() string {
	return tw.name
}

// Key returns the watched component type.
func (tw *TypeWatcher) Key() TypeKey {
	return tw.key
}

// Matches reports whether key is the watched type.
func (tw *TypeWatcher) Matches(key TypeKey) bool {
	return key == tw.key
}

// Pending returns the number of entries waiting to be started.
func (tw *TypeWatcher) Pending() int {
	return len(tw.pending)
}

// Active returns the number of started entries, including dead ones not yet
// pruned.
func (tw *TypeWatcher) Active() int {
	return len(tw.active)
}

// OnChange queues attached components and drops removed ones.
func (tw *TypeWatcher) OnChange(kind ChangeKind, obj *GameObject, c *Component) {
	switch kind {
	case ChangeAdd:
		tw.pending = append(tw.pending, watchEntry{obj: obj, comp: c, seq: c.attachSeq})
	case ChangeRemove:
		tw.pending = deleteEntry(tw.pending, c)
		for _, e := range tw.active {
			if !e.is(c) {
				continue
			}
			if _, ok := tw.handler.(StopHandler); ok {
				tw.stopped = append(tw.stopped, e)
			}
			if !tw.stepping {
				tw.active = deleteEntry(tw.active, c)
			}
			break
		}
	}
}

// Each calls fn for every active entry that still resolves, in activation
// order. fn may remove components; the removed entries are skipped and dropped
// by the next prune.
func (tw *TypeWatcher) Each(fn func(obj *GameObject, c *Component)) {
	prev := tw.stepping
	tw.stepping = true
	defer func() { tw.stepping = prev }()

	n := len(tw.active)
	for i := 0; i < n; i++ {
		e := tw.active[i]
		if e.resolve() {
			fn(e.obj, e.comp)
		}
	}
}

// Step drains, updates and prunes. See TypeWatcher.
func (tw *TypeWatcher) Step(w *World) {
	tw.flushStops()
	tw.drain(w)
	tw.update(w)
	tw.prune()
	tw.flushStops()
}

// drain starts pending entries. Starting a component may attach more
// components of this type; those are started in later passes of the same
// drain, so every start completes before this watcher's update pass.
func (tw *TypeWatcher) drain(w *World) {
	limit := w.maxDrainPasses()
	for pass := 0; len(tw.pending) > 0; pass++ {
		if pass >= limit {
			panic(fmt.Sprintf("bramble: watcher %s exceeded %d drain passes; a start hook keeps attaching %s",
				tw.name, limit, tw.key))
		}
		tw.batch, tw.pending = tw.pending, tw.batch[:0]
		for _, e := range tw.batch {
			if !e.resolve() {
				continue
			}
			tw.active = append(tw.active, e)
			tw.handler.ObjectStart(e.obj, e.comp, w)
		}
		clear(tw.batch)
	}
}

// update steps every active entry once. Entries appended while iterating are
// not visited until the next step.
func (tw *TypeWatcher) update(w *World) {
	tw.stepping = true
	defer func() { tw.stepping = false }()

	n := len(tw.active)
	for i := 0; i < n; i++ {
		e := tw.active[i]
		if !e.resolve() {
			continue
		}
		tw.handler.ObjectStep(e.obj, e.comp, w)
	}
}

// prune keeps only active entries whose weak pair still resolves.
func (tw *TypeWatcher) prune() {
	kept := tw.active[:0]
	for _, e := range tw.active {
		if e.resolve() {
			kept = append(kept, e)
		}
	}
	clear(tw.active[len(kept):])
	tw.active = kept
}

// flushStops delivers queued ObjectStop calls. A stop hook may remove more
// components, so this loops until the queue stays empty.
func (tw *TypeWatcher) flushStops() {
	sh, ok := tw.handler.(StopHandler)
	if !ok {
		return
	}
	for len(tw.stopped) > 0 {
		stopped := tw.stopped
		tw.stopped = nil
		for _, e := range stopped {
			sh.ObjectStop(e.obj, e.comp)
		}
	}
}

// deleteEntry removes the entry for c, preserving order.
func deleteEntry(entries []watchEntry, c *Component) []watchEntry {
	for i, e := range entries {
		if e.is(c) {
			copy(entries[i:], entries[i+1:])
			entries[len(entries)-1] = watchEntry{}
			return entries[:len(entries)-1]
		}
	}
	return entries
}

// passiveHandler tracks components without calling into them. The built-in
// material and camera watchers use it.
type passiveHandler struct{}

func (passiveHandler) ObjectStart(*GameObject, *Component, *World) {}
func (passiveHandler) ObjectStep(*GameObject, *Component, *World)  {}
