// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// vec32.go adds 32-bit float vectors alongside the package's existing
// float64 V3. These back the mesh-slicing kernel, which operates on
// single-precision vertex positions (see meshslice.Vertex), while V3
// continues to back physics.Shape's double-precision transforms.

// Vec2 is a 2 element single precision vector, used for UV coordinates
// and 2D projections of a cutting plane's basis.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3 element single precision vector, used for positions and
// normals.
type Vec3 struct {
	X, Y, Z float32
}

// SubVec2 returns lhs - rhs.
func SubVec2(lhs, rhs Vec2) Vec2 { return Vec2{lhs.X - rhs.X, lhs.Y - rhs.Y} }

// DivVec2 returns lhs / rhs, component-wise.
func DivVec2(lhs, rhs Vec2) Vec2 { return Vec2{lhs.X / rhs.X, lhs.Y / rhs.Y} }

// SubVec3 returns lhs - rhs.
func SubVec3(lhs, rhs Vec3) Vec3 { return Vec3{lhs.X - rhs.X, lhs.Y - rhs.Y, lhs.Z - rhs.Z} }

// DotVec3 returns the dot product of lhs and rhs.
func DotVec3(lhs, rhs Vec3) float32 { return lhs.X*rhs.X + lhs.Y*rhs.Y + lhs.Z*rhs.Z }

// CrossVec3 returns the cross product lhs x rhs.
func CrossVec3(lhs, rhs Vec3) Vec3 {
	return Vec3{
		lhs.Y*rhs.Z - lhs.Z*rhs.Y,
		lhs.Z*rhs.X - lhs.X*rhs.Z,
		lhs.X*rhs.Y - lhs.Y*rhs.X,
	}
}

// NegateVec3 returns -v.
func NegateVec3(v Vec3) Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// MagnitudeSqVec3 returns the squared length of v.
func MagnitudeSqVec3(v Vec3) float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// MagnitudeVec3 returns the length of v.
func MagnitudeVec3(v Vec3) float32 { return float32(math.Sqrt(float64(MagnitudeSqVec3(v)))) }

// NormalizeVec3 returns v scaled to unit length. The zero vector is
// returned unchanged, matching V3.Unit's zero-length guard.
func NormalizeVec3(v Vec3) Vec3 {
	mag := MagnitudeVec3(v)
	if mag == 0 {
		return v
	}
	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}
}

// LerpVec3 returns the point on the segment a-b at parameter t.
func LerpVec3(a, b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// LerpVec2 returns the point on the segment a-b at parameter t.
func LerpVec2(a, b Vec2, t float32) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}
