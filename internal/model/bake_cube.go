package model

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"voxelbake/internal/cube"
)

// uvEpsilon insets tile UVs from the tile border to avoid atlas bleeding
// when sampling with filtering enabled.
const uvEpsilon = 0.001

// quadCornerUVs are the canonical corner UVs of one tile, matching the
// corner order of cube.SideCorners. V starts at the top of the tile, so
// the first (bottom-left) corner gets v near 1.
var quadCornerUVs = [4]mgl32.Vec2{
	{uvEpsilon, 1 - uvEpsilon},
	{1 - uvEpsilon, 1 - uvEpsilon},
	{1 - uvEpsilon, uvEpsilon},
	{uvEpsilon, uvEpsilon},
}

// bakeCubeGeometry fills the six side buckets for the built-in unit-cube
// shape. A cube always has geometry, so the record is unconditionally
// marked non-empty.
func bakeCubeGeometry(m *Model, baked *BakedModel, atlasSize int, bakeTangents bool) {
	if atlasSize <= 0 {
		panic(fmt.Sprintf("invalid atlas size %d", atlasSize))
	}
	scale := 1 / float32(atlasSize)

	for side := cube.Side(0); side < cube.SideCount; side++ {
		s := &baked.Sides[side]

		s.Positions = make([]mgl32.Vec3, 4)
		for i := 0; i < 4; i++ {
			s.Positions[i] = cube.CornerPositions[cube.SideCorners[side][i]]
		}

		s.Indices = make([]int32, 6)
		copy(s.Indices, cube.SideQuadTriangles[:])

		s.UVs = make([]mgl32.Vec2, 4)
		for i := 0; i < 4; i++ {
			s.UVs[i] = m.cubeTiles[side].Add(quadCornerUVs[i]).Mul(scale)
		}

		if bakeTangents {
			s.Tangents = make([]float32, 0, 16)
			for i := 0; i < 4; i++ {
				s.Tangents = append(s.Tangents, cube.SideTangents[side][:]...)
			}
		}
	}

	baked.Empty = false
}
