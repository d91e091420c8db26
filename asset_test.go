package bramble

import (
	"errors"
	"io/fs"
	"testing"
)

func TestResourceNotReady(t *testing.T) {
	r := NewResource[Mesh]("cube.obj")
	if r.Ready() {
		t.Error("new resource should not be ready")
	}
	if _, err := r.Poll(); !errors.Is(err, ErrNotReady) {
		t.Errorf("err = %v, want ErrNotReady", err)
	}
}

func TestResourceResolve(t *testing.T) {
	r := NewResource[Material]("stone.mat")
	r.Resolve(Material{Name: "stone"})
	r.Resolve(Material{Name: "ignored"})
	r.Fail(ErrIO, nil)

	m, err := r.Poll()
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "stone" {
		t.Errorf("Name = %q, want stone", m.Name)
	}
}

func TestResourceFailWrapsKindAndCause(t *testing.T) {
	r := NewResource[Mesh]("missing.obj")
	r.Fail(ErrIO, fs.ErrNotExist)

	_, err := r.Poll()
	if !errors.Is(err, ErrIO) {
		t.Errorf("err = %v, want ErrIO", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want wrapping fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrInvalidFormat) {
		t.Error("err matches the wrong kind")
	}
	if !r.Ready() {
		t.Error("failed resource should be ready")
	}
}

func TestResourceFailWithoutCause(t *testing.T) {
	r := NewResource[Mesh]("bad.obj")
	r.Fail(ErrInvalidFormat, nil)
	_, err := r.Poll()
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
	if err.Error() != "bad.obj: bramble: invalid resource format" {
		t.Errorf("Error() = %q", err.Error())
	}
}
