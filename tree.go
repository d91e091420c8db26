package bramble

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// node is one slot of the tree arena. A slot is reused only after its
// generation has been bumped, so handles to a removed node never alias its
// successor.
type node struct {
	gen      uint32
	live     bool
	parent   NodeID
	children []NodeID

	local  Transform
	global mgl64.Mat4
	dirty  bool

	object *GameObject
}

// SceneTree owns every node of a scene: the parent/child graph, local
// transforms and the lazily cached global matrices. It also fans structural
// changes out to its ChangeListeners.
//
// A dirty node always has dirty descendants: every mutation marks the whole
// subtree, and resolving a node resolves its ancestors first. GlobalMatrix
// relies on this to trust a clean cache.
type SceneTree struct {
	nodes     []node
	free      []NodeID
	count     int
	listeners []ChangeListener

	debug bool
	log   *zap.Logger
}

// NewSceneTree creates a tree holding only the root node.
func NewSceneTree() *SceneTree {
	t := &SceneTree{
		nodes: make([]node, 1, 64),
		count: 1,
		log:   zap.NewNop(),
	}
	root := &t.nodes[RootID]
	root.live = true
	root.parent = RootID
	root.local = IdentityTransform
	root.dirty = true
	root.object = &GameObject{tree: t, id: RootID, Active: true, Name: "root"}
	return t
}

// Root returns the root object.
func (t *SceneTree) Root() *GameObject {
	return t.nodes[RootID].object
}

// Len returns the number of live nodes, root included.
func (t *SceneTree) Len() int {
	return t.count
}

// Subscribe adds a listener to the structural-change broadcast. Listeners are
// notified in subscription order.
func (t *SceneTree) Subscribe(l ChangeListener) {
	if l == nil {
		panic("bramble: cannot subscribe nil listener")
	}
	t.listeners = append(t.listeners, l)
}

// broadcast is the only coupling between the structural model and dispatch.
func (t *SceneTree) broadcast(kind ChangeKind, obj *GameObject, c *Component) {
	listeners := t.listeners
	for _, l := range listeners {
		if l.Matches(c.typ) {
			l.OnChange(kind, obj, c)
		}
	}
}

// NewNode allocates a node under parent and returns its object handle.
func (t *SceneTree) NewNode(parent NodeID) *GameObject {
	t.mustNode(parent, "NewNode")

	var id NodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, node{})
	}

	n := &t.nodes[id]
	n.live = true
	n.parent = parent
	n.children = n.children[:0]
	n.local = IdentityTransform
	n.dirty = true
	obj := &GameObject{tree: t, id: id, gen: n.gen, Active: true}
	n.object = obj

	p := &t.nodes[parent]
	p.children = append(p.children, id)
	t.count++

	if t.debug {
		t.debugCheckTreeDepth(id)
		t.debugCheckChildCount(parent)
	}
	return obj
}

// RemoveNode detaches a node and frees its slot. Its children are not removed:
// they are re-parented to the root, keeping their order.
func (t *SceneTree) RemoveNode(id NodeID) {
	if id == RootID {
		panic("bramble: cannot remove the root node")
	}
	n := t.mustNode(id, "RemoveNode")
	parent := n.parent
	children := n.children

	t.removeChildID(parent, id)
	for _, c := range children {
		t.nodes[c].parent = RootID
		t.nodes[RootID].children = append(t.nodes[RootID].children, c)
		t.markSubtreeDirty(c)
	}

	n = &t.nodes[id]
	n.live = false
	n.gen++
	n.children = children[:0]
	n.object = nil
	n.dirty = false
	t.free = append(t.free, id)
	t.count--
}

// AddChild moves child under parent, appending it to parent's children.
// Panics if child is the root or if the move would create a cycle.
func (t *SceneTree) AddChild(parent, child NodeID) {
	if child == RootID {
		panic("bramble: cannot reparent the root node")
	}
	t.mustNode(parent, "AddChild (parent)")
	c := t.mustNode(child, "AddChild (child)")
	if t.isAncestor(child, parent) {
		panic("bramble: adding child would create a cycle")
	}

	t.removeChildID(c.parent, child)
	t.nodes[child].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.markSubtreeDirty(child)

	if t.debug {
		t.debugCheckTreeDepth(child)
		t.debugCheckChildCount(parent)
	}
}

// Parent returns the parent id of a node. The root is its own parent.
func (t *SceneTree) Parent(id NodeID) NodeID {
	return t.mustNode(id, "Parent").parent
}

// Children returns the child ids in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (t *SceneTree) Children(id NodeID) []NodeID {
	return t.mustNode(id, "Children").children
}

// Object returns the object handle owning a node.
func (t *SceneTree) Object(id NodeID) *GameObject {
	return t.mustNode(id, "Object").object
}

// Contains reports whether id names a live node.
func (t *SceneTree) Contains(id NodeID) bool {
	return int(id) < len(t.nodes) && t.nodes[id].live
}

// LocalTransform returns the local transform of a node.
func (t *SceneTree) LocalTransform(id NodeID) Transform {
	return t.mustNode(id, "LocalTransform").local
}

// SetLocalTransform stores a new local transform and invalidates the cached
// global matrix of the node and its descendants.
func (t *SceneTree) SetLocalTransform(id NodeID, tr Transform) {
	n := t.mustNode(id, "SetLocalTransform")
	n.local = tr
	t.markSubtreeDirty(id)
}

// GlobalMatrix returns the node's global matrix, recomputing it (and any dirty
// ancestors) as parentGlobal * local when the cache is stale. The root's global
// matrix is its local matrix.
func (t *SceneTree) GlobalMatrix(id NodeID) mgl64.Mat4 {
	n := t.mustNode(id, "GlobalMatrix")
	if !n.dirty {
		return n.global
	}
	m := n.local.Matrix()
	if id != RootID {
		m = t.GlobalMatrix(n.parent).Mul4(m)
	}
	n = &t.nodes[id]
	n.global = m
	n.dirty = false
	return m
}

// Depth returns the number of edges between a node and the root.
func (t *SceneTree) Depth(id NodeID) int {
	t.mustNode(id, "Depth")
	depth := 0
	for p := id; p != RootID; p = t.nodes[p].parent {
		depth++
	}
	return depth
}

// Walk visits id and its descendants depth-first in child order.
func (t *SceneTree) Walk(id NodeID, fn func(id NodeID) bool) {
	t.mustNode(id, "Walk")
	t.walk(id, fn)
}

func (t *SceneTree) walk(id NodeID, fn func(id NodeID) bool) bool {
	if !fn(id) {
		return false
	}
	for _, c := range t.nodes[id].children {
		if !t.walk(c, fn) {
			return false
		}
	}
	return true
}

// --- Helpers ---

// mustNode returns the live node for id, panicking on an unknown or freed id.
func (t *SceneTree) mustNode(id NodeID, op string) *node {
	if int(id) >= len(t.nodes) || !t.nodes[id].live {
		panic(fmt.Sprintf("bramble: %s on unknown node %d", op, id))
	}
	return &t.nodes[id]
}

// isAncestor reports whether candidate is id or one of its ancestors.
func (t *SceneTree) isAncestor(candidate, id NodeID) bool {
	for p := id; ; p = t.nodes[p].parent {
		if p == candidate {
			return true
		}
		if p == RootID {
			return false
		}
	}
}

// removeChildID removes child from parent's child list, preserving order.
func (t *SceneTree) removeChildID(parent, child NodeID) {
	p := &t.nodes[parent]
	for i, c := range p.children {
		if c == child {
			copy(p.children[i:], p.children[i+1:])
			p.children = p.children[:len(p.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets dirty on id and all its descendants. A node that is
// already dirty has dirty descendants, so the walk stops there.
func (t *SceneTree) markSubtreeDirty(id NodeID) {
	n := &t.nodes[id]
	if n.dirty {
		return
	}
	n.dirty = true
	for _, c := range n.children {
		t.markSubtreeDirty(c)
	}
}
