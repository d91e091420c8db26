package bramble

import (
	"fmt"

	"go.uber.org/zap"
)

// Builder assembles a World. The order in which watchers are registered is the
// order in which they are stepped, so a type registered earlier has its update
// run before, and is observable by, types registered later in the same step.
//
// Every world tracks Material and Camera components through built-in watchers
// registered ahead of any user watcher.
type Builder struct {
	cfg       Config
	log       *zap.Logger
	assets    AssetSystem
	watchers  []Watcher
	listeners []ChangeListener
	keys      map[TypeKey]string
	built     bool
}

// NewBuilder returns a Builder using DefaultConfig and a no-op logger.
func NewBuilder() *Builder {
	return &Builder{
		cfg:  DefaultConfig(),
		log:  zap.NewNop(),
		keys: make(map[TypeKey]string),
	}
}

// WithConfig replaces the configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func (b *Builder) WithLogger(log *zap.Logger) *Builder {
	if log != nil {
		b.log = log
	}
	return b
}

// WithAssets sets the asset system returned by World.Assets.
func (b *Builder) WithAssets(a AssetSystem) *Builder {
	b.assets = a
	return b
}

// Register appends a watcher. Panics if another watcher already claims the
// same component type.
func (b *Builder) Register(w Watcher) *Builder {
	if w == nil {
		panic("bramble: cannot register nil watcher")
	}
	if k, ok := w.(interface{ Key() TypeKey }); ok {
		key := k.Key()
		if key == TypeOf[Material]() || key == TypeOf[Camera]() {
			panic(fmt.Sprintf("bramble: %s is tracked by a built-in watcher", key))
		}
		if prev, dup := b.keys[key]; dup {
			panic(fmt.Sprintf("bramble: watcher %s already registered for %s", prev, key))
		}
		b.keys[key] = w.Name()
	}
	b.watchers = append(b.watchers, w)
	return b
}

// Listen subscribes a plain listener (one that is not stepped) to the tree's
// structural-change broadcast.
func (b *Builder) Listen(l ChangeListener) *Builder {
	if l == nil {
		panic("bramble: cannot listen with nil listener")
	}
	b.listeners = append(b.listeners, l)
	return b
}

// RegisterActor registers a watcher driving every attached T as an Actor.
func RegisterActor[T any, PT interface {
	*T
	Actor
}](b *Builder) *Builder {
	return b.Register(NewActorWatcher[T, PT]())
}

// RegisterProcessor registers a watcher driving every attached T as a
// Processor.
func RegisterProcessor[T any, PT interface {
	*T
	Processor
}](b *Builder) *Builder {
	return b.Register(NewProcessorWatcher[T, PT]())
}

// Build creates the World. A Builder builds exactly once.
func (b *Builder) Build() *World {
	if b.built {
		panic("bramble: Builder.Build called twice")
	}
	b.built = true

	tree := NewSceneTree()
	tree.SetDebug(b.cfg.Engine.Debug, b.log)

	w := &World{
		cfg:       b.cfg,
		log:       b.log,
		tree:      tree,
		assets:    b.assets,
		materials: NewTypeWatcher("material", TypeOf[Material](), passiveHandler{}),
		cameras:   NewTypeWatcher("camera", TypeOf[Camera](), passiveHandler{}),
	}
	w.watchers = append(w.watchers, w.materials, w.cameras)
	w.watchers = append(w.watchers, b.watchers...)
	for _, wt := range w.watchers {
		tree.Subscribe(wt)
		if r, ok := wt.(PreRenderer); ok {
			w.renderers = append(w.renderers, r)
		}
	}
	for _, l := range b.listeners {
		tree.Subscribe(l)
	}

	names := make([]string, len(w.watchers))
	for i, wt := range w.watchers {
		names[i] = wt.Name()
	}
	w.log.Info("world built",
		zap.Strings("watchers", names),
		zap.Int("listeners", len(b.listeners)),
		zap.Bool("debug", b.cfg.Engine.Debug))
	return w
}
