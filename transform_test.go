package bramble

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec3(t *testing.T, name string, got, want mgl64.Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

func assertMatrix(t *testing.T, name string, got, want mgl64.Mat4) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for %s, got none", what)
		}
	}()
	fn()
}

// --- Transform.Matrix ---

func TestTransformIdentity(t *testing.T) {
	assertMatrix(t, "identity", IdentityTransform.Matrix(), mgl64.Ident4())
}

func TestTransformTranslation(t *testing.T) {
	got := Translation(10, 20, 30).Matrix()
	assertMatrix(t, "translation", got, mgl64.Translate3D(10, 20, 30))
}

func TestTransformScale(t *testing.T) {
	tr := IdentityTransform
	tr.Scale = mgl64.Vec3{2, 3, 4}
	assertMatrix(t, "scale", tr.Matrix(), mgl64.Scale3D(2, 3, 4))
}

func TestTransformRotation90(t *testing.T) {
	tr := IdentityTransform.Rotated(math.Pi/2, mgl64.Vec3{0, 0, 1})
	// +X rotates onto +Y about Z.
	got := tr.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3(t, "rotated x", got, mgl64.Vec3{0, 1, 0})
}

func TestTransformOrderScaleRotateTranslate(t *testing.T) {
	tr := Translation(5, 0, 0)
	tr.Scale = mgl64.Vec3{2, 2, 2}
	tr = tr.Rotated(math.Pi/2, mgl64.Vec3{0, 0, 1})
	// (1,0,0) scaled to (2,0,0), rotated to (0,2,0), moved to (5,2,0).
	got := tr.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3(t, "TRS", got, mgl64.Vec3{5, 2, 0})
}

func TestTransformUnnormalizedRotation(t *testing.T) {
	tr := IdentityTransform
	tr.Rotation = mgl64.Quat{W: 2}
	assertMatrix(t, "scaled identity quat", tr.Matrix(), mgl64.Ident4())
}

func TestTransformTranslated(t *testing.T) {
	tr := Translation(1, 2, 3).Translated(mgl64.Vec3{1, 1, 1})
	assertVec3(t, "translated", tr.Translation, mgl64.Vec3{2, 3, 4})
}

func TestTransformRotatedAccumulates(t *testing.T) {
	tr := IdentityTransform
	for i := 0; i < 4; i++ {
		tr = tr.Rotated(math.Pi/2, mgl64.Vec3{0, 1, 0})
	}
	assertMatrix(t, "full turn", tr.Matrix(), mgl64.Ident4())
}

func TestMatrixTranslation(t *testing.T) {
	m := mgl64.Translate3D(7, 8, 9).Mul4(mgl64.Scale3D(2, 2, 2))
	assertVec3(t, "translation", matrixTranslation(m), mgl64.Vec3{7, 8, 9})
}
