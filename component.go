package bramble

import "fmt"

// componentIDCounter and attachCounter are plain counters (no atomic: bramble
// is single-threaded).
var (
	componentIDCounter ComponentID
	attachCounter      uint64
)

func nextComponentID() ComponentID {
	componentIDCounter++
	return componentIDCounter
}

// Component is a type-erased box around one value attached to a GameObject.
// Its TypeKey never changes. The value sits behind a borrow cell: any number
// of shared borrows or a single exclusive borrow may be outstanding, and a
// conflicting borrow panics.
type Component struct {
	id    ComponentID
	typ   TypeKey
	value any // always a *T matching typ

	// borrows is the number of shared borrows, or -1 while exclusively borrowed.
	borrows int

	owner     *GameObject
	attachSeq uint64
}

// NewComponent boxes v into a detached component. Most callers want
// AddComponent, which boxes and attaches in one step.
func NewComponent[T any](v T) *Component {
	p := new(T)
	*p = v
	return &Component{
		id:    nextComponentID(),
		typ:   TypeOf[T](),
		value: p,
	}
}

// ID returns the component's unique id.
func (c *Component) ID() ComponentID {
	return c.id
}

// Type returns the component's type tag.
func (c *Component) Type() TypeKey {
	return c.typ
}

// Owner returns the object the component is attached to, or nil.
func (c *Component) Owner() *GameObject {
	return c.owner
}

// Attached reports whether the component currently sits on a live object.
func (c *Component) Attached() bool {
	return c.owner != nil && c.owner.Alive()
}

// String implements fmt.Stringer.
func (c *Component) String() string {
	return fmt.Sprintf("%s#%d", c.typ, c.id)
}

// Is reports whether the component holds a T.
func Is[T any](c *Component) bool {
	return c.typ == TypeOf[T]()
}

// Borrow takes a shared borrow of the component's value. The returned release
// func must be called when done; calling it more than once is a no-op.
// Panics if the component is exclusively borrowed or does not hold a T.
func Borrow[T any](c *Component) (*T, func()) {
	p := typedValue[T](c)
	if c.borrows < 0 {
		panic(fmt.Sprintf("bramble: component %s is already mutably borrowed", c))
	}
	c.borrows++
	released := false
	return p, func() {
		if released {
			return
		}
		released = true
		c.borrows--
	}
}

// BorrowMut takes an exclusive borrow of the component's value. The returned
// release func must be called when done; calling it more than once is a no-op.
// Panics if the component is borrowed at all or does not hold a T.
func BorrowMut[T any](c *Component) (*T, func()) {
	p := typedValue[T](c)
	if c.borrows != 0 {
		panic(fmt.Sprintf("bramble: component %s is already borrowed", c))
	}
	c.borrows = -1
	released := false
	return p, func() {
		if released {
			return
		}
		released = true
		c.borrows = 0
	}
}

// View calls fn with a shared borrow of the component's value.
func View[T any](c *Component, fn func(v *T)) {
	v, done := Borrow[T](c)
	defer done()
	fn(v)
}

// Modify calls fn with an exclusive borrow of the component's value.
func Modify[T any](c *Component, fn func(v *T)) {
	v, done := BorrowMut[T](c)
	defer done()
	fn(v)
}

func typedValue[T any](c *Component) *T {
	p, ok := c.value.(*T)
	if !ok {
		panic(fmt.Sprintf("bramble: component %s does not hold a %s", c, TypeOf[T]()))
	}
	return p
}
