// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import "github.com/gazed/meshslice/math/lin"

// epsilon governs both plane-side classification and edge-intersection
// acceptance. It is tuned for unit-scale meshes; very large or very
// small meshes may need a different tolerance, but this package fixes
// a single value the way a collision epsilon is fixed for a physics
// solver tuned to one scale.
const epsilon float32 = 1e-7

// Side is the ternary classification of a point against a Plane.
type Side uint8

// On means the point lies within epsilon of the plane.
const (
	Above Side = iota // the side the plane's normal points toward.
	Below             // the side against the plane's normal.
	On                // within epsilon of the plane.
)

// Plane is an oriented plane {p : dot(normal, p) = dist}. The side the
// normal points toward is considered Above.
type Plane struct {
	normal lin.Vec3
	dist   float32
}

// NewPlane creates a plane from a unit normal and a signed distance
// from the origin.
func NewPlane(normal lin.Vec3, dist float32) Plane {
	return Plane{normal: normal, dist: dist}
}

// PlaneFromPosNormal creates a plane through pos, oriented by normal.
func PlaneFromPosNormal(pos, normal lin.Vec3) Plane {
	return Plane{normal: normal, dist: lin.DotVec3(normal, pos)}
}

// PlaneFromSpanningVectors derives a plane from three points. The
// normal is normalize(cross(b-a, c-a)) and dist = -dot(normal, a), so
// the plane contains -a, -b and -c; it contains a, b and c themselves
// only when their plane passes through the origin (dist is then 0).
func PlaneFromSpanningVectors(a, b, c lin.Vec3) Plane {
	normal := lin.NormalizeVec3(lin.CrossVec3(lin.SubVec3(b, a), lin.SubVec3(c, a)))
	return Plane{normal: normal, dist: -lin.DotVec3(normal, a)}
}

// Normal returns the plane's unit normal.
func (p Plane) Normal() lin.Vec3 { return p.normal }

// Dist returns the plane's signed distance from the origin.
func (p Plane) Dist() float32 { return p.dist }

// ClassifySide returns Above, Below, or On for the given point. A NaN
// point fails both the Above and Below comparisons and classifies as
// On, which is the graceful degradation spec.md §7 requires rather
// than a panic.
func (p Plane) ClassifySide(point lin.Vec3) Side {
	r := lin.DotVec3(p.normal, point) - p.dist
	switch {
	case r > epsilon:
		return Above
	case r < -epsilon:
		return Below
	default:
		return On
	}
}
