package mesher

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelbake/internal/cube"
	"voxelbake/internal/library"
	"voxelbake/internal/model"
)

// MeshBuffers are plain attribute slices ready for upload by an external
// renderer. Tangents are present only when the library baked them.
type MeshBuffers struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Tangents  []float32
	Indices   []int32
}

// neighborOffsets maps a side to the voxel offset toward it, in the
// cube.Side order.
var neighborOffsets = [cube.SideCount][3]int{
	cube.SideNegativeX: {-1, 0, 0},
	cube.SidePositiveX: {1, 0, 0},
	cube.SideNegativeY: {0, -1, 0},
	cube.SidePositiveY: {0, 1, 0},
	cube.SideNegativeZ: {0, 0, -1},
	cube.SidePositiveZ: {0, 0, 1},
}

// BuildChunkMesh walks the chunk and emits, per voxel, every side bucket
// whose neighbor does not occlude it, plus the interior bucket
// unconditionally. A neighbor occludes a side when it is opaque
// (transparency index 0) and has flush geometry on the shared face;
// transparent, empty or interior-only neighbors leave the face visible.
func BuildChunkMesh(c *Chunk, lib *library.Library) *MeshBuffers {
	out := &MeshBuffers{}

	for y := 0; y < ChunkSize; y++ {
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				baked := lib.Baked(int(c.Get(x, y, z)))
				if baked == nil || baked.Empty {
					continue
				}
				origin := mgl32.Vec3{float32(x), float32(y), float32(z)}

				for side := cube.Side(0); side < cube.SideCount; side++ {
					o := neighborOffsets[side]
					neighbor := lib.Baked(int(c.Get(x+o[0], y+o[1], z+o[2])))
					if neighbor != nil && !neighbor.Empty &&
						neighbor.TransparencyIndex == 0 &&
						len(neighbor.Sides[side.Opposite()].Positions) > 0 {
						continue
					}
					appendSide(out, &baked.Sides[side], side, origin)
				}

				appendInterior(out, &baked.Interior, origin)
			}
		}
	}

	return out
}

func appendSide(out *MeshBuffers, s *model.SideSurface, side cube.Side, origin mgl32.Vec3) {
	base := int32(len(out.Positions))
	normal := cube.SideNormals[side]

	for _, p := range s.Positions {
		out.Positions = append(out.Positions, origin.Add(p))
		out.Normals = append(out.Normals, normal)
	}
	out.UVs = append(out.UVs, s.UVs...)
	out.Tangents = append(out.Tangents, s.Tangents...)
	for _, idx := range s.Indices {
		out.Indices = append(out.Indices, base+idx)
	}
}

func appendInterior(out *MeshBuffers, in *model.InteriorSurface, origin mgl32.Vec3) {
	base := int32(len(out.Positions))

	for _, p := range in.Positions {
		out.Positions = append(out.Positions, origin.Add(p))
	}
	out.Normals = append(out.Normals, in.Normals...)
	out.UVs = append(out.UVs, in.UVs...)
	out.Tangents = append(out.Tangents, in.Tangents...)
	for _, idx := range in.Indices {
		out.Indices = append(out.Indices, base+idx)
	}
}
