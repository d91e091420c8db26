package bramble

import (
	"fmt"
	"reflect"
)

// NodeID identifies a slot in a SceneTree. RootID is reserved for the root.
type NodeID uint32

// RootID is the id of the tree root. The root is its own parent.
const RootID NodeID = 0

// ComponentID uniquely identifies a Component for the lifetime of the process.
type ComponentID uint64

// TypeKey is the explicit runtime type tag of a component value. Two keys are
// equal exactly when they describe the same Go type.
type TypeKey struct {
	t reflect.Type
}

// TypeOf returns the TypeKey for T.
func TypeOf[T any]() TypeKey {
	return TypeKey{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// String returns the Go type name, e.g. "bramble.Camera".
func (k TypeKey) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// ChangeKind identifies a structural change broadcast by the SceneTree.
type ChangeKind uint8

const (
	ChangeAdd    ChangeKind = iota // a component was attached to an object
	ChangeRemove                   // a component was detached from an object
)

// String implements fmt.Stringer.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	default:
		return fmt.Sprintf("ChangeKind(%d)", uint8(k))
	}
}

// ChangeListener receives structural-change notifications from a SceneTree.
// Matches is consulted first; OnChange is only called for matching types.
type ChangeListener interface {
	Matches(key TypeKey) bool
	OnChange(kind ChangeKind, obj *GameObject, c *Component)
}

// ChangeEvent is a value snapshot of one broadcast, for listeners that forward
// notifications elsewhere (see the ecs package).
type ChangeEvent struct {
	Kind        ChangeKind
	Object      NodeID
	Component   ComponentID
	ComponentOf TypeKey
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default material tint.
var ColorWhite = Color{1, 1, 1, 1}

// Material describes how a surface is shaded. The core only aggregates
// materials; binding them to shaders is the renderer's job.
type Material struct {
	Name      string
	Shader    string
	Color     Color
	Textures  []string
	Roughness float64
	Metallic  float64
}
