package bramble

import (
	"strings"
	"testing"
)

type health struct {
	HP int
}

type tag struct {
	Label string
}

func TestTypeOfIdentity(t *testing.T) {
	if TypeOf[health]() != TypeOf[health]() {
		t.Error("same type should give equal keys")
	}
	if TypeOf[health]() == TypeOf[tag]() {
		t.Error("different types should give different keys")
	}
	if TypeOf[health]() == TypeOf[*health]() {
		t.Error("T and *T should differ")
	}
	if got := TypeOf[health]().String(); got != "bramble.health" {
		t.Errorf("String = %q", got)
	}
	if got := (TypeKey{}).String(); got != "<nil>" {
		t.Errorf("zero key String = %q", got)
	}
}

func TestNewComponentDetached(t *testing.T) {
	c := NewComponent(health{HP: 3})
	if c.Attached() || c.Owner() != nil {
		t.Error("new component should be detached")
	}
	if c.Type() != TypeOf[health]() {
		t.Errorf("Type = %s", c.Type())
	}
	if !Is[health](c) || Is[tag](c) {
		t.Error("Is reports the wrong type")
	}
	d := NewComponent(health{})
	if c.ID() == d.ID() {
		t.Error("component ids should be unique")
	}
	if !strings.HasPrefix(c.String(), "bramble.health#") {
		t.Errorf("String = %q", c.String())
	}
}

func TestNewComponentCopiesValue(t *testing.T) {
	v := health{HP: 1}
	c := NewComponent(v)
	v.HP = 99
	View(c, func(h *health) {
		if h.HP != 1 {
			t.Errorf("HP = %d, want 1", h.HP)
		}
	})
}

func TestModifyThenView(t *testing.T) {
	c := NewComponent(health{HP: 10})
	Modify(c, func(h *health) { h.HP -= 4 })
	View(c, func(h *health) {
		if h.HP != 6 {
			t.Errorf("HP = %d, want 6", h.HP)
		}
	})
}

// --- Borrow cell ---

func TestSharedBorrowsCoexist(t *testing.T) {
	c := NewComponent(health{})
	_, r1 := Borrow[health](c)
	_, r2 := Borrow[health](c)
	r1()
	r2()
	_, w := BorrowMut[health](c)
	w()
}

func TestBorrowMutWhileBorrowedPanics(t *testing.T) {
	c := NewComponent(health{})
	_, release := Borrow[health](c)
	defer release()
	expectPanic(t, "BorrowMut during Borrow", func() { BorrowMut[health](c) })
}

func TestBorrowWhileMutablyBorrowedPanics(t *testing.T) {
	c := NewComponent(health{})
	_, release := BorrowMut[health](c)
	defer release()
	expectPanic(t, "Borrow during BorrowMut", func() { Borrow[health](c) })
	expectPanic(t, "second BorrowMut", func() { BorrowMut[health](c) })
}

func TestNestedModifyPanics(t *testing.T) {
	c := NewComponent(health{})
	expectPanic(t, "nested Modify", func() {
		Modify(c, func(*health) {
			View(c, func(*health) {})
		})
	})
	// The outer borrow was released by its defer.
	Modify(c, func(h *health) { h.HP = 1 })
}

func TestReleaseIsIdempotent(t *testing.T) {
	c := NewComponent(health{})
	_, r1 := Borrow[health](c)
	_, r2 := Borrow[health](c)
	r1()
	r1()
	// r2 still holds a shared borrow.
	expectPanic(t, "BorrowMut with one borrow left", func() { BorrowMut[health](c) })
	r2()
	_, w := BorrowMut[health](c)
	w()
	w()
	View(c, func(*health) {})
}

func TestWrongTypePanics(t *testing.T) {
	c := NewComponent(health{})
	expectPanic(t, "wrong type", func() { View(c, func(*tag) {}) })
	// The failed borrow must not leave the cell locked.
	Modify(c, func(*health) {})
}
