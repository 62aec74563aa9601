// Package vmath adds the vector operations mgl32 is missing.
//
// Everything here is deliberately float32: baking tolerances must not
// change with whatever precision the host application renders at.
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EqApprox reports whether a and b are within an absolute tolerance.
func EqApprox(a, b, tolerance float32) bool {
	d := a - b
	return d >= -tolerance && d <= tolerance
}

// SafeNormalize normalizes v, mapping the zero vector to the zero vector
// instead of NaN.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	lsq := v.LenSqr()
	if lsq == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / float32(math.Sqrt(float64(lsq))))
}

// MulElem3 multiplies a and b per axis.
func MulElem3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivElem3 divides a by b per axis.
func DivElem3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// MulElem2 multiplies a and b per axis.
func MulElem2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a[0] * b[0], a[1] * b[1]}
}

// DivElem2 divides a by b per axis.
func DivElem2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a[0] / b[0], a[1] / b[1]}
}

// Min3 returns the per-axis minimum of a and b.
func Min3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// Max3 returns the per-axis maximum of a and b.
func Max3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// Min2 returns the per-axis minimum of a and b.
func Min2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{min(a[0], b[0]), min(a[1], b[1])}
}

// Max2 returns the per-axis maximum of a and b.
func Max2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{max(a[0], b[0]), max(a[1], b[1])}
}

// Floor3 applies math.Floor per axis.
func Floor3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Floor(float64(v[0]))),
		float32(math.Floor(float64(v[1]))),
		float32(math.Floor(float64(v[2]))),
	}
}

// Ceil3 applies math.Ceil per axis.
func Ceil3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Ceil(float64(v[0]))),
		float32(math.Ceil(float64(v[1]))),
		float32(math.Ceil(float64(v[2]))),
	}
}

// Lerp2 interpolates between a and b. t is not clamped, so values outside
// [0,1] extrapolate.
func Lerp2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Lerp3 interpolates between a and b. t is not clamped.
func Lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Trilerp interpolates over the 8 corner values of a unit cube.
// Corner order: (0,0,0) (1,0,0) (1,1,0) (0,1,0) (0,0,1) (1,0,1) (1,1,1)
// (0,1,1), matching cube.CornerPositions. p is not clamped.
func Trilerp(c [8]float32, p mgl32.Vec3) float32 {
	x00 := c[0] + (c[1]-c[0])*p[0]
	x10 := c[3] + (c[2]-c[3])*p[0]
	x01 := c[4] + (c[5]-c[4])*p[0]
	x11 := c[7] + (c[6]-c[7])*p[0]
	y0 := x00 + (x10-x00)*p[1]
	y1 := x01 + (x11-x01)*p[1]
	return y0 + (y1-y0)*p[2]
}

// Box is an axis-aligned box in the voxel's local space.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// UnitBox returns the full [0,1]^3 box.
func UnitBox() Box {
	return Box{Max: mgl32.Vec3{1, 1, 1}}
}
