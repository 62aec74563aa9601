package model

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"voxelbake/internal/cube"
	"voxelbake/internal/logger"
	"voxelbake/internal/vmath"
)

var (
	ErrNonTriangleIndices = errors.New("mesh is empty or does not contain triangles")
	ErrMissingNormals     = errors.New("mesh has no normals")
	ErrIndexOutOfRange    = errors.New("mesh index references a vertex that does not exist")
)

// faceTolerance is the absolute distance from a face plane under which a
// vertex still counts as flush on that face.
const faceTolerance = 0.001

// vertexSideMask returns a 6-bit mask of the cube faces p lies flush
// against. Bit positions follow the cube.Side order.
func vertexSideMask(p mgl32.Vec3) uint8 {
	var mask uint8
	if vmath.EqApprox(p[0], 0, faceTolerance) {
		mask |= 1 << cube.SideNegativeX
	}
	if vmath.EqApprox(p[0], 1, faceTolerance) {
		mask |= 1 << cube.SidePositiveX
	}
	if vmath.EqApprox(p[1], 0, faceTolerance) {
		mask |= 1 << cube.SideNegativeY
	}
	if vmath.EqApprox(p[1], 1, faceTolerance) {
		mask |= 1 << cube.SidePositiveY
	}
	if vmath.EqApprox(p[2], 0, faceTolerance) {
		mask |= 1 << cube.SideNegativeZ
	}
	if vmath.EqApprox(p[2], 1, faceTolerance) {
		mask |= 1 << cube.SidePositiveZ
	}
	return mask
}

// triangleSide classifies a triangle: flush on exactly one side, or
// interior. A triangle pinned to an edge or corner has several bits set
// in the combined mask and deliberately falls through to interior.
func triangleSide(a, b, c mgl32.Vec3) (cube.Side, bool) {
	m := vertexSideMask(a) & vertexSideMask(b) & vertexSideMask(c)
	if m == 0 {
		// At least one vertex is not on any face.
		return 0, false
	}
	for side := cube.Side(0); side < cube.SideCount; side++ {
		if m == 1<<side {
			return side, true
		}
	}
	// The triangle spans more than one face.
	return 0, false
}

// bakeMeshGeometry partitions a custom mesh's triangles into the six
// side buckets and the interior bucket, welding vertices per bucket and
// sourcing or synthesizing tangents.
func bakeMeshGeometry(m *Model, baked *BakedModel, bakeTangents bool) error {
	mesh := m.customMesh
	if mesh == nil {
		// Missing mesh reference is a valid empty state, not an error.
		baked.Empty = true
		return nil
	}

	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrNonTriangleIndices, len(mesh.Indices))
	}
	if len(mesh.Positions) == 0 {
		baked.Empty = true
		return nil
	}
	baked.Empty = false

	if len(mesh.Normals) == 0 {
		return ErrMissingNormals
	}
	for _, idx := range mesh.Indices {
		if idx < 0 || int(idx) >= len(mesh.Positions) {
			return fmt.Errorf("%w: index %d, %d vertices", ErrIndexOutOfRange, idx, len(mesh.Positions))
		}
	}

	uvs := mesh.UVs
	if len(uvs) == 0 {
		// TODO Properly generate UVs when there aren't any.
		logger.Warn("mesh has no UVs, zero-filling them",
			zap.String("model", m.name), zap.Int("id", m.id))
		uvs = make([]mgl32.Vec2, len(mesh.Positions))
	}

	tangentsEmpty := len(mesh.Tangents) == 0
	if tangentsEmpty && bakeTangents {
		logger.Warn("mesh has no tangents, they will be generated; "+
			"consider providing a mesh with tangents, or at least UVs and normals, "+
			"or turn off tangent baking",
			zap.String("model", m.name), zap.Int("id", m.id))
	}

	var addedSideIndices [cube.SideCount]map[int32]int32
	for side := range addedSideIndices {
		addedSideIndices[side] = make(map[int32]int32)
	}
	addedInteriorIndices := make(map[int32]int32)

	for i := 0; i < len(mesh.Indices); i += 3 {
		i0 := mesh.Indices[i]
		i1 := mesh.Indices[i+1]
		i2 := mesh.Indices[i+2]

		p0 := mesh.Positions[i0]
		p1 := mesh.Positions[i1]
		p2 := mesh.Positions[i2]

		var tangent [4]float32
		if tangentsEmpty && bakeTangents {
			// Texture-space basis from the triangle's edges and UV deltas.
			deltaUV1 := uvs[i1].Sub(uvs[i0])
			deltaUV2 := uvs[i2].Sub(uvs[i0])
			deltaPos1 := p1.Sub(p0)
			deltaPos2 := p2.Sub(p0)
			r := 1 / (deltaUV1[0]*deltaUV2[1] - deltaUV1[1]*deltaUV2[0])
			t := deltaPos1.Mul(deltaUV2[1]).Sub(deltaPos2.Mul(deltaUV1[1])).Mul(r)
			bt := deltaPos2.Mul(deltaUV1[0]).Sub(deltaPos1.Mul(deltaUV2[0])).Mul(r)
			tangent[0] = t[0]
			tangent[1] = t[1]
			tangent[2] = t[2]
			if bt.Dot(mesh.Normals[i0].Cross(t)) < 0 {
				tangent[3] = -1
			} else {
				tangent[3] = 1
			}
		}

		// Tangents in the source are stored per triangle: i steps by 3,
		// there are 4 floats per tangent.
		sourceTangentIndex := (i / 3) * 4

		if side, flush := triangleSide(p0, p1, p2); flush {
			s := &baked.Sides[side]
			added := addedSideIndices[side]

			for j := 0; j < 3; j++ {
				src := mesh.Indices[i+j]

				if dst, ok := added[src]; ok {
					// Vertex already welded into this bucket.
					s.Indices = append(s.Indices, dst)
					continue
				}

				dst := int32(len(s.Positions))
				s.Indices = append(s.Indices, dst)
				s.Positions = append(s.Positions, mesh.Positions[src])
				s.UVs = append(s.UVs, uvs[src])
				if bakeTangents {
					if tangentsEmpty {
						s.Tangents = append(s.Tangents, tangent[:]...)
					} else {
						s.Tangents = append(s.Tangents, mesh.Tangents[sourceTangentIndex:sourceTangentIndex+4]...)
					}
				}
				added[src] = dst
			}
		} else {
			in := &baked.Interior

			for j := 0; j < 3; j++ {
				src := mesh.Indices[i+j]

				if dst, ok := addedInteriorIndices[src]; ok {
					in.Indices = append(in.Indices, dst)
					continue
				}

				dst := int32(len(in.Positions))
				in.Indices = append(in.Indices, dst)
				in.Positions = append(in.Positions, mesh.Positions[src])
				in.Normals = append(in.Normals, mesh.Normals[src])
				in.UVs = append(in.UVs, uvs[src])
				if bakeTangents {
					if tangentsEmpty {
						in.Tangents = append(in.Tangents, tangent[:]...)
					} else {
						in.Tangents = append(in.Tangents, mesh.Tangents[sourceTangentIndex:sourceTangentIndex+4]...)
					}
				}
				addedInteriorIndices[src] = dst
			}
		}
	}

	return nil
}
