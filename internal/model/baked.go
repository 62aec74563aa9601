package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelbake/internal/cube"
)

// SideSurface is the baked geometry lying flush on one cube side. It is
// the part a chunk mesher may cull when the neighboring voxel covers the
// shared face. Normals are implied by the side and not stored. Tangents,
// when baked, hold 4 floats per vertex (xyz + handedness sign).
type SideSurface struct {
	Positions []mgl32.Vec3
	UVs       []mgl32.Vec2
	Tangents  []float32
	Indices   []int32
}

// InteriorSurface is the baked geometry not flush on any single side.
// It is always rendered, so it carries explicit normals.
type InteriorSurface struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Tangents  []float32
	Indices   []int32
}

// BakedModel is the output of baking one model definition: six side
// buckets plus one interior bucket, along with the scalar attributes
// copied from the definition. It is read-only after a bake and replaced
// wholesale on every re-bake.
type BakedModel struct {
	Sides    [cube.SideCount]SideSurface
	Interior InteriorSurface

	MaterialID        int
	TransparencyIndex int
	Color             mgl32.Vec4
	Empty             bool
}

// Clear resets the record to the empty state.
func (b *BakedModel) Clear() {
	*b = BakedModel{Empty: true}
}

// VertexCount returns the total vertex count across all buckets.
func (b *BakedModel) VertexCount() int {
	n := len(b.Interior.Positions)
	for side := range b.Sides {
		n += len(b.Sides[side].Positions)
	}
	return n
}

// TriangleCount returns the total triangle count across all buckets.
func (b *BakedModel) TriangleCount() int {
	n := len(b.Interior.Indices)
	for side := range b.Sides {
		n += len(b.Sides[side].Indices)
	}
	return n / 3
}
