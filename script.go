package bramble

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Script is an Actor whose hooks are written in Lua. Source may define global
// functions start(object) and update(object, dt); both are optional. Each
// Script owns a private VM, closed when the component is removed.
//
// The object table passed to the hooks exposes:
//
//	object.position()            -> x, y, z
//	object.set_position(x, y, z)
//	object.translate(dx, dy, dz)
//	object.rotate(angle, ax, ay, az)
//	object.set_scale(x, y, z)
//	object.name()                -> string
//	object.set_active(bool)
//	object.destroy()
//
// and the global reset() requests a world reset. A script that fails to load
// or raises an error is logged and disabled.
type Script struct {
	Name   string
	Source string

	vm     *lua.LState
	self   *lua.LTable
	failed bool
}

// NewScript returns a Script component for the given Lua source.
func NewScript(name, source string) Script {
	return Script{Name: name, Source: source}
}

// Failed reports whether the script was disabled by an error.
func (s *Script) Failed() bool {
	return s.failed
}

// Start compiles the source and calls its start hook.
func (s *Script) Start(obj *GameObject, w *World) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("reset", vm.NewFunction(func(L *lua.LState) int {
		w.RequestReset()
		return 0
	}))
	s.vm = vm
	s.self = s.bindObject(vm, obj)

	if err := vm.DoString(s.Source); err != nil {
		s.fail(w, "load", err)
		return
	}
	w.Logger().Debug("lua script loaded", zap.String("script", s.Name), zap.Stringer("object", obj))
	s.call(w, "start", s.self)
}

// Update calls the update hook with the step's delta time.
func (s *Script) Update(_ *GameObject, w *World) {
	if s.failed || s.vm == nil {
		return
	}
	s.call(w, "update", s.self, lua.LNumber(w.DeltaTime()))
}

// Stop closes the VM.
func (s *Script) Stop(*GameObject) {
	if s.vm != nil {
		s.vm.Close()
		s.vm = nil
		s.self = nil
	}
}

func (s *Script) call(w *World, hook string, args ...lua.LValue) {
	fn := s.vm.GetGlobal(hook)
	if fn == lua.LNil {
		return
	}
	if err := s.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		s.fail(w, hook, err)
	}
}

func (s *Script) fail(w *World, hook string, err error) {
	w.Logger().Error("lua script error",
		zap.String("script", s.Name),
		zap.String("hook", hook),
		zap.Error(err))
	s.failed = true
	s.Stop(nil)
}

// bindObject builds the object table. Every binding checks the object is
// still alive and raises a Lua error otherwise.
func (s *Script) bindObject(vm *lua.LState, obj *GameObject) *lua.LTable {
	alive := func(L *lua.LState) bool {
		if !obj.Alive() {
			L.RaiseError("object %d has been destroyed", obj.ID())
			return false
		}
		return true
	}
	vec := func(L *lua.LState, first int) mgl64.Vec3 {
		return mgl64.Vec3{
			float64(L.CheckNumber(first)),
			float64(L.CheckNumber(first + 1)),
			float64(L.CheckNumber(first + 2)),
		}
	}

	t := vm.NewTable()
	vm.SetFuncs(t, map[string]lua.LGFunction{
		"position": func(L *lua.LState) int {
			if !alive(L) {
				return 0
			}
			p := obj.Position()
			L.Push(lua.LNumber(p.X()))
			L.Push(lua.LNumber(p.Y()))
			L.Push(lua.LNumber(p.Z()))
			return 3
		},
		"set_position": func(L *lua.LState) int {
			if alive(L) {
				obj.SetPosition(vec(L, 1))
			}
			return 0
		},
		"translate": func(L *lua.LState) int {
			if alive(L) {
				obj.SetLocalTransform(obj.LocalTransform().Translated(vec(L, 1)))
			}
			return 0
		},
		"rotate": func(L *lua.LState) int {
			if alive(L) {
				angle := float64(L.CheckNumber(1))
				axis := vec(L, 2)
				if axis.Len() == 0 {
					L.ArgError(2, "rotation axis must be non-zero")
					return 0
				}
				obj.SetLocalTransform(obj.LocalTransform().Rotated(angle, axis))
			}
			return 0
		},
		"set_scale": func(L *lua.LState) int {
			if alive(L) {
				obj.SetScale(vec(L, 1))
			}
			return 0
		},
		"name": func(L *lua.LState) int {
			L.Push(lua.LString(obj.String()))
			return 1
		},
		"set_active": func(L *lua.LState) int {
			if alive(L) {
				obj.Active = L.CheckBool(1)
			}
			return 0
		},
		"destroy": func(L *lua.LState) int {
			if obj.ID() == RootID {
				L.RaiseError("cannot destroy the root object")
				return 0
			}
			obj.Destroy()
			return 0
		},
	})
	t.RawSetString("id", lua.LNumber(obj.ID()))
	return t
}

// String implements fmt.Stringer.
func (s *Script) String() string {
	return fmt.Sprintf("script %q", s.Name)
}
