package bramble

import "github.com/go-gl/mathgl/mgl64"

// Transform is a node's local translation, rotation and scale.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// IdentityTransform has no translation, no rotation and unit scale. New nodes
// start with it.
var IdentityTransform = Transform{
	Rotation: mgl64.QuatIdent(),
	Scale:    mgl64.Vec3{1, 1, 1},
}

// Translation returns IdentityTransform moved to (x, y, z).
func Translation(x, y, z float64) Transform {
	t := IdentityTransform
	t.Translation = mgl64.Vec3{x, y, z}
	return t
}

// Matrix returns the local matrix of the transform.
//
// Composition order:
//
//	Translate * Rotate * Scale
func (t Transform) Matrix() mgl64.Mat4 {
	tr := mgl64.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	sc := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(t.Rotation.Normalize().Mat4()).Mul4(sc)
}

// Translated returns a copy of t moved by d.
func (t Transform) Translated(d mgl64.Vec3) Transform {
	t.Translation = t.Translation.Add(d)
	return t
}

// Rotated returns a copy of t with an extra rotation of angle radians about
// axis applied after the current rotation.
func (t Transform) Rotated(angle float64, axis mgl64.Vec3) Transform {
	t.Rotation = mgl64.QuatRotate(angle, axis.Normalize()).Mul(t.Rotation).Normalize()
	return t
}

// matrixTranslation extracts the translation column of an affine matrix.
func matrixTranslation(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}
