package bramble

import (
	"errors"
	"fmt"
)

// The closed set of asset failures. The core never inspects them; they
// travel between the asset system and whoever polls a Resource.
var (
	ErrNotReady      = errors.New("bramble: resource not ready")
	ErrInvalidFormat = errors.New("bramble: invalid resource format")
	ErrIO            = errors.New("bramble: resource i/o failure")
)

// AssetSystem is the boundary to the asset pipeline. World.Step calls Poll
// once per step, before any watcher runs, so loads that complete are visible
// to this step's start and update hooks.
type AssetSystem interface {
	Poll()
}

// Resource is a lazily-polled placeholder for a value an asset system is
// still producing.
type Resource[T any] struct {
	Path  string
	value T
	err   error
	done  bool
}

// NewResource returns an unresolved resource for path.
func NewResource[T any](path string) *Resource[T] {
	return &Resource[T]{Path: path}
}

// Resolve completes the resource with v. Later Resolve or Fail calls are
// ignored.
func (r *Resource[T]) Resolve(v T) {
	if r.done {
		return
	}
	r.value = v
	r.done = true
}

// Fail completes the resource with an error of the given kind (ErrIO or
// ErrInvalidFormat), wrapping cause.
func (r *Resource[T]) Fail(kind, cause error) {
	if r.done {
		return
	}
	if cause == nil {
		r.err = fmt.Errorf("%s: %w", r.Path, kind)
	} else {
		r.err = fmt.Errorf("%s: %w: %w", r.Path, kind, cause)
	}
	r.done = true
}

// Ready reports whether the resource has completed, successfully or not.
func (r *Resource[T]) Ready() bool {
	return r.done
}

// Poll returns the value once resolved, ErrNotReady while loading, or the
// failure the resource completed with.
func (r *Resource[T]) Poll() (T, error) {
	var zero T
	if !r.done {
		return zero, ErrNotReady
	}
	if r.err != nil {
		return zero, r.err
	}
	return r.value, nil
}
