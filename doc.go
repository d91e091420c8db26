// Package bramble is the runtime core of a small 3D engine.
//
// Bramble keeps a scene hierarchy with cached world-space transforms, hosts
// arbitrary typed values as components on game objects, and drives their
// lifecycle: every attached component is started exactly once and then
// updated once per step, in a deterministic order, until it is removed.
//
// # Quick start
//
// Register the component types the world should drive, build it, spawn
// objects and step it:
//
//	b := bramble.NewBuilder()
//	bramble.RegisterActor[Spinner](b)
//	world := b.Build()
//
//	obj := world.NewGameObject()
//	bramble.AddComponent(obj, Spinner{Speed: 1})
//
//	for {
//		world.Step(1.0 / 60)
//	}
//
// The bramble/window package runs a World inside an [Ebitengine] window and
// feeds it input.
//
// # Scene tree
//
// A [SceneTree] stores nodes in a generation-checked arena. Each node has a
// local [Transform]; its global matrix is parentGlobal * local, computed on
// demand and cached until the node or one of its ancestors changes. Removing
// a node re-parents its children to the root.
//
// # Components
//
// A [Component] boxes one value and remembers its type. Values are reached
// through borrows: [Borrow] and [View] share, [BorrowMut] and [Modify] are
// exclusive, and a conflicting borrow panics.
//
//	bramble.FindComponentMut(obj, func(c *bramble.Camera) {
//		c.FovY = mgl64.DegToRad(45)
//	})
//
// # Watchers
//
// Attaching or detaching a component broadcasts a change to every
// [ChangeListener] whose type matches. A [TypeWatcher] turns those changes
// into start and update calls. Per step it starts every pending component,
// including ones attached by other start calls, then updates every started
// one. Watchers step in registration order.
//
// Types implementing [Actor] are registered with [RegisterActor];
// [Processor] types additionally receive the scene's materials before each
// render through [RegisterProcessor] and [World.PreRender].
//
// # Built-in components
//
// [Material] and [Camera] are tracked by every world: [World.Materials] and
// [World.CurrentCamera] read them. [Mesh] holds triangle geometry, [Tween]
// animates a transform with [gween], and [Script] runs Lua hooks through
// gopher-lua.
//
// # Configuration and logging
//
// [LoadConfig] reads TOML or YAML settings; [NewLogger] builds the zap logger
// the world logs through.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bramble
