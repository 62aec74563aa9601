// Package meshsource provides the raw triangle-mesh arrays consumed by
// the model baker, plus a JSON loader for mesh files authored on disk.
package meshsource

import "github.com/go-gl/mathgl/mgl32"

// Mesh holds one surface worth of triangle-indexed vertex arrays.
// Positions and Normals are index-aligned; UVs may be empty (meaning
// "none authored"); Tangents, when present, store 4 floats per triangle
// vertex, contiguous by triangle. Meshes are read-only while a bake that
// references them is running, and may be shared by several models.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Tangents  []float32
	Indices   []int32
}

// VertexCount returns the number of source vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles described by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Positions: make([]mgl32.Vec3, len(m.Positions)),
		Normals:   make([]mgl32.Vec3, len(m.Normals)),
		Indices:   make([]int32, len(m.Indices)),
	}
	copy(c.Positions, m.Positions)
	copy(c.Normals, m.Normals)
	copy(c.Indices, m.Indices)
	if m.UVs != nil {
		c.UVs = make([]mgl32.Vec2, len(m.UVs))
		copy(c.UVs, m.UVs)
	}
	if m.Tangents != nil {
		c.Tangents = make([]float32, len(m.Tangents))
		copy(c.Tangents, m.Tangents)
	}
	return c
}
