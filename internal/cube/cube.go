// Package cube holds the shared unit-cube face constants used by the
// bakers and the chunk mesher: side enumeration, corner positions, the
// per-side quad layout and the per-side tangent table.
package cube

import "github.com/go-gl/mathgl/mgl32"

// Side identifies one of the six axis-aligned faces of a unit voxel.
// The numeric order is load-bearing: it is the bucket order of baked
// geometry and the bit position in flush-face masks.
type Side int

const (
	SideNegativeX Side = iota
	SidePositiveX
	SideNegativeY
	SidePositiveY
	SideNegativeZ
	SidePositiveZ
	SideCount
)

// Named aliases matching the authoring-facing side names.
const (
	SideLeft   = SideNegativeX
	SideRight  = SidePositiveX
	SideBottom = SideNegativeY
	SideTop    = SidePositiveY
	SideBack   = SideNegativeZ
	SideFront  = SidePositiveZ
)

var sideNames = [SideCount]string{"left", "right", "bottom", "top", "back", "front"}

func (s Side) String() string {
	if s < 0 || s >= SideCount {
		return "invalid"
	}
	return sideNames[s]
}

// SideFromName maps an authoring name to a Side. Returns SideCount for
// unknown names.
func SideFromName(name string) Side {
	for s, n := range sideNames {
		if n == name {
			return Side(s)
		}
	}
	return SideCount
}

// Opposite returns the side facing the other way.
func (s Side) Opposite() Side {
	return s ^ 1
}

// CornerPositions are the 8 corners of the unit cube. The bottom quad
// (y=0) comes first, winding counter-clockwise seen from below the -Z
// edge, then the top quad in the same order.
var CornerPositions = [8]mgl32.Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// SideCorners lists, per side, the 4 corner indices into CornerPositions
// in counter-clockwise order seen from outside the cube, starting at the
// corner that receives the bottom-left of the face's texture tile.
var SideCorners = [SideCount][4]int{
	SideNegativeX: {0, 4, 7, 3},
	SidePositiveX: {5, 1, 2, 6},
	SideNegativeY: {0, 1, 5, 4},
	SidePositiveY: {7, 6, 2, 3},
	SideNegativeZ: {1, 0, 3, 2},
	SidePositiveZ: {4, 5, 6, 7},
}

// SideQuadTriangles is the fixed two-triangle split of a side quad,
// indexing into that side's 4 corners. Shared by every side so all cube
// models wind identically.
var SideQuadTriangles = [6]int32{0, 1, 2, 0, 2, 3}

// SideNormals are the outward unit normals per side.
var SideNormals = [SideCount]mgl32.Vec3{
	SideNegativeX: {-1, 0, 0},
	SidePositiveX: {1, 0, 0},
	SideNegativeY: {0, -1, 0},
	SidePositiveY: {0, 1, 0},
	SideNegativeZ: {0, 0, -1},
	SidePositiveZ: {0, 0, 1},
}

// SideTangents are the fixed per-side tangents (xyz + handedness sign),
// pointing along the +U direction of the face's texture tile.
var SideTangents = [SideCount][4]float32{
	SideNegativeX: {0, 0, 1, 1},
	SidePositiveX: {0, 0, -1, 1},
	SideNegativeY: {1, 0, 0, 1},
	SidePositiveY: {1, 0, 0, 1},
	SideNegativeZ: {-1, 0, 0, 1},
	SidePositiveZ: {1, 0, 0, 1},
}
