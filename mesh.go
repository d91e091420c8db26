package bramble

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is resolved triangle geometry hosted as a component. The asset system
// produces it; the renderer consumes it. Material names a Material attached
// somewhere in the scene. Vertex positions are reached through Vertices and
// SetVertices so the cached bounds follow them.
type Mesh struct {
	Normals  []mgl64.Vec3
	UVs      []mgl64.Vec2
	Indices  []uint32
	Material string

	vertices  []mgl64.Vec3
	aabb      AABB
	aabbValid bool
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Empty reports whether the box encloses nothing.
func (b AABB) Empty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// NewMesh creates a mesh from vertices and triangle indices.
// Panics if the index count is not a multiple of three or an index is out of
// range.
func NewMesh(vertices []mgl64.Vec3, indices []uint32, material string) Mesh {
	if len(indices)%3 != 0 {
		panic("bramble: mesh index count must be a multiple of 3")
	}
	for _, i := range indices {
		if int(i) >= len(vertices) {
			panic("bramble: mesh index out of range")
		}
	}
	return Mesh{
		Indices:  indices,
		Material: material,
		vertices: vertices,
	}
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertices returns the vertex positions. The slice MUST NOT be mutated; use
// SetVertices.
func (m *Mesh) Vertices() []mgl64.Vec3 {
	return m.vertices
}

// SetVertices replaces the vertex data and invalidates the cached bounds.
func (m *Mesh) SetVertices(v []mgl64.Vec3) {
	m.vertices = v
	m.aabbValid = false
}

// Bounds returns the local-space bounding box, recomputed only after the
// vertices change. An empty mesh has an empty box.
func (m *Mesh) Bounds() AABB {
	if m.aabbValid {
		return m.aabb
	}
	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.vertices {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}
	m.aabb = AABB{Min: lo, Max: hi}
	m.aabbValid = true
	return m.aabb
}

// Cube returns a unit cube centered on the origin.
func Cube(material string) Mesh {
	v := []mgl64.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	idx := []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 6, 2, 3, 7, 6, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	return NewMesh(v, idx, material)
}
