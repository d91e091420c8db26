package bramble

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// GameObject is the handle through which the rest of the engine sees one
// entity: a node in the SceneTree plus an ordered list of owned components.
//
// Go has no last-drop hook, so teardown is explicit: Destroy (or World.Reset)
// removes every component, emitting one ChangeRemove each, then removes the
// node, re-parenting its children to the root.
type GameObject struct {
	tree *SceneTree
	id   NodeID
	gen  uint32

	// Active marks the object as visible to rendering. Inactive objects still
	// have their components started and updated; CurrentCamera and PreRender
	// skip them.
	Active bool
	Name   string

	components []*Component
	destroyed  bool
}

// ID returns the object's node id.
func (g *GameObject) ID() NodeID {
	return g.id
}

// Tree returns the tree the object lives in.
func (g *GameObject) Tree() *SceneTree {
	return g.tree
}

// Alive reports whether the object still refers to a live node. This is the
// generation check that stands in for a weak reference.
func (g *GameObject) Alive() bool {
	if g == nil || g.destroyed {
		return false
	}
	n := &g.tree.nodes[g.id]
	return n.live && n.gen == g.gen
}

// String implements fmt.Stringer.
func (g *GameObject) String() string {
	if g.Name != "" {
		return fmt.Sprintf("%s(%d)", g.Name, g.id)
	}
	return fmt.Sprintf("object(%d)", g.id)
}

func (g *GameObject) mustAlive(op string) {
	if !g.Alive() {
		panic(fmt.Sprintf("bramble: %s on destroyed object %d", op, g.id))
	}
}

// --- Components ---

// AddComponent boxes v, appends it to g's components and broadcasts a
// ChangeAdd. The returned handle stays valid after removal.
func AddComponent[T any](g *GameObject, v T) *Component {
	c := NewComponent(v)
	g.Attach(c)
	return c
}

// Attach appends an existing detached component and broadcasts a ChangeAdd.
// Panics if c is already attached somewhere.
func (g *GameObject) Attach(c *Component) {
	g.mustAlive("Attach")
	if c.owner != nil {
		panic(fmt.Sprintf("bramble: component %s is already attached to %s", c, c.owner))
	}
	attachCounter++
	c.owner = g
	c.attachSeq = attachCounter
	g.components = append(g.components, c)
	g.tree.broadcast(ChangeAdd, g, c)
}

// RemoveComponent detaches c by identity and broadcasts one ChangeRemove.
// Returns false if c is not attached to g.
func (g *GameObject) RemoveComponent(c *Component) bool {
	for i, have := range g.components {
		if have == c {
			copy(g.components[i:], g.components[i+1:])
			g.components[len(g.components)-1] = nil
			g.components = g.components[:len(g.components)-1]
			c.owner = nil
			g.tree.broadcast(ChangeRemove, g, c)
			return true
		}
	}
	return false
}

// ClearComponents detaches every component in list order, broadcasting one
// ChangeRemove per component.
func (g *GameObject) ClearComponents() {
	removed := g.components
	g.components = nil
	for _, c := range removed {
		c.owner = nil
	}
	for _, c := range removed {
		g.tree.broadcast(ChangeRemove, g, c)
	}
}

// Components returns the attached components in attach order. The returned
// slice MUST NOT be mutated by the caller.
func (g *GameObject) Components() []*Component {
	return g.components
}

// FindComponent returns the first attached component holding a T.
func FindComponent[T any](g *GameObject) (*Component, bool) {
	key := TypeOf[T]()
	for _, c := range g.components {
		if c.typ == key {
			return c, true
		}
	}
	return nil, false
}

// FindComponentFunc calls fn with a shared borrow of the first T attached to
// g. Returns false without calling fn when there is none.
func FindComponentFunc[T any](g *GameObject, fn func(v *T)) bool {
	c, ok := FindComponent[T](g)
	if !ok {
		return false
	}
	View(c, fn)
	return true
}

// FindComponentMut calls fn with an exclusive borrow of the first T attached
// to g. Returns false without calling fn when there is none.
func FindComponentMut[T any](g *GameObject, fn func(v *T)) bool {
	c, ok := FindComponent[T](g)
	if !ok {
		return false
	}
	Modify(c, fn)
	return true
}

// --- Hierarchy ---

// Parent returns the parent object. The root is its own parent.
func (g *GameObject) Parent() *GameObject {
	g.mustAlive("Parent")
	return g.tree.Object(g.tree.Parent(g.id))
}

// SetParent moves g under parent.
func (g *GameObject) SetParent(parent *GameObject) {
	g.mustAlive("SetParent")
	parent.mustAlive("SetParent (parent)")
	if parent.tree != g.tree {
		panic("bramble: objects belong to different trees")
	}
	g.tree.AddChild(parent.id, g.id)
}

// Children returns the child objects in insertion order.
func (g *GameObject) Children() []*GameObject {
	g.mustAlive("Children")
	ids := g.tree.Children(g.id)
	out := make([]*GameObject, len(ids))
	for i, id := range ids {
		out[i] = g.tree.Object(id)
	}
	return out
}

// --- Transform ---

// LocalTransform returns the object's local transform.
func (g *GameObject) LocalTransform() Transform {
	g.mustAlive("LocalTransform")
	return g.tree.LocalTransform(g.id)
}

// SetLocalTransform replaces the object's local transform.
func (g *GameObject) SetLocalTransform(t Transform) {
	g.mustAlive("SetLocalTransform")
	g.tree.SetLocalTransform(g.id, t)
}

// Position returns the local translation.
func (g *GameObject) Position() mgl64.Vec3 {
	return g.LocalTransform().Translation
}

// SetPosition sets the local translation.
func (g *GameObject) SetPosition(p mgl64.Vec3) {
	t := g.LocalTransform()
	t.Translation = p
	g.tree.SetLocalTransform(g.id, t)
}

// SetRotation sets the local rotation.
func (g *GameObject) SetRotation(q mgl64.Quat) {
	t := g.LocalTransform()
	t.Rotation = q
	g.tree.SetLocalTransform(g.id, t)
}

// SetScale sets the local scale.
func (g *GameObject) SetScale(s mgl64.Vec3) {
	t := g.LocalTransform()
	t.Scale = s
	g.tree.SetLocalTransform(g.id, t)
}

// GlobalMatrix returns the object's global (world-space) matrix.
func (g *GameObject) GlobalMatrix() mgl64.Mat4 {
	g.mustAlive("GlobalMatrix")
	return g.tree.GlobalMatrix(g.id)
}

// GlobalPosition returns the world-space translation of the object.
func (g *GameObject) GlobalPosition() mgl64.Vec3 {
	return matrixTranslation(g.GlobalMatrix())
}

// --- Teardown ---

// Destroy clears the object's components and removes its node. Children
// survive under the root. Destroying twice is a no-op; destroying the root
// panics.
func (g *GameObject) Destroy() {
	if g.id == RootID {
		panic("bramble: cannot destroy the root object")
	}
	if !g.Alive() {
		return
	}
	// Marked first so listeners cannot attach to a dying object.
	g.destroyed = true
	g.ClearComponents()
	g.tree.RemoveNode(g.id)
}
