package bramble

// Actor is the lifecycle contract for gameplay and subsystem code hosted as a
// component. Start is called once, before the first Update; Update is called
// on every following step while the component stays attached.
type Actor interface {
	Start(obj *GameObject, w *World)
	Update(obj *GameObject, w *World)
}

// Stopper is an optional Actor extension called once after a started actor is
// removed from its object.
type Stopper interface {
	Stop(obj *GameObject)
}

// Processor is an Actor that also receives the scene's aggregated material
// list before each render pass.
type Processor interface {
	Actor
	ApplyMaterials(materials []Material)
}

// actorHandler dispatches to a *T implementing Actor, holding an exclusive
// borrow of the value for the duration of each call.
type actorHandler[T any, PT interface {
	*T
	Actor
}] struct{}

func (actorHandler[T, PT]) ObjectStart(obj *GameObject, c *Component, w *World) {
	v, done := BorrowMut[T](c)
	defer done()
	PT(v).Start(obj, w)
}

func (actorHandler[T, PT]) ObjectStep(obj *GameObject, c *Component, w *World) {
	v, done := BorrowMut[T](c)
	defer done()
	PT(v).Update(obj, w)
}

func (actorHandler[T, PT]) ObjectStop(obj *GameObject, c *Component) {
	v, done := BorrowMut[T](c)
	defer done()
	if s, ok := any(PT(v)).(Stopper); ok {
		s.Stop(obj)
	}
}

// NewActorWatcher returns a watcher driving every attached T as an Actor.
func NewActorWatcher[T any, PT interface {
	*T
	Actor
}]() *TypeWatcher {
	key := TypeOf[T]()
	return NewTypeWatcher(key.String(), key, actorHandler[T, PT]{})
}

// ProcessorWatcher is a TypeWatcher whose components also take part in the
// pre-render pass. It shares the pending/active bookkeeping of its
// TypeWatcher; WatchPreRender is a read-only side channel on top of it.
type ProcessorWatcher struct {
	*TypeWatcher
	apply func(c *Component, materials []Material)
}

// NewProcessorWatcher returns a watcher driving every attached T as a
// Processor.
func NewProcessorWatcher[T any, PT interface {
	*T
	Processor
}]() *ProcessorWatcher {
	key := TypeOf[T]()
	return &ProcessorWatcher{
		TypeWatcher: NewTypeWatcher(key.String(), key, actorHandler[T, PT]{}),
		apply: func(c *Component, materials []Material) {
			v, done := BorrowMut[T](c)
			defer done()
			PT(v).ApplyMaterials(materials)
		},
	}
}

// WatchPreRender hands the material list to every active processor.
func (pw *ProcessorWatcher) WatchPreRender(materials []Material) {
	pw.Each(func(_ *GameObject, c *Component) {
		pw.apply(c, materials)
	})
}
