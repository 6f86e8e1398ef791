// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import (
	"math"
	"sort"

	"github.com/gazed/meshslice/math/lin"
)

// TextureBounds maps the [0,1]x[0,1] UV space the triangulator computes
// into a user-supplied texture region, e.g. one tile of a texture
// atlas (see package atlas).
type TextureBounds struct {
	XMin, YMin, XMax, YMax float32
}

// DefaultTextureBounds is the (0,0,1,1) identity mapping.
func DefaultTextureBounds() TextureBounds {
	return TextureBounds{XMin: 0, YMin: 0, XMax: 1, YMax: 1}
}

// NewTextureBounds builds a TextureBounds from explicit corners. No
// ordering is enforced beyond user intent, per spec.md §3.
func NewTextureBounds(xMin, yMin, xMax, yMax float32) TextureBounds {
	return TextureBounds{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// mapUnit remaps a point already in [0,1]x[0,1] into this rectangle.
func (tb TextureBounds) mapUnit(u lin.Vec2) lin.Vec2 {
	return lin.Vec2{
		X: u.X*(tb.XMax-tb.XMin) + tb.XMin,
		Y: u.Y*(tb.YMax-tb.YMin) + tb.YMin,
	}
}

// capPoint pairs a cross-section vertex with its 2D projection in the
// cutting plane's basis.
type capPoint[V Vertex[V]] struct {
	vertex V
	p2d    lin.Vec2
}

// planeBasis returns an orthonormal (U, V) basis for the plane with
// the given normal, per spec.md §4.4.1: try cross(N, (1,1,0)) first,
// falling back to cross(N, (0,1,1)) when N was colinear with the first
// reference vector (their cross product then fails the "normal float"
// test — NaN, zero, or subnormal).
func planeBasis(normal lin.Vec3) (u, v lin.Vec3) {
	u = lin.NormalizeVec3(lin.CrossVec3(normal, lin.Vec3{X: 1, Y: 1, Z: 0}))
	if !isNormalFloat(u.X + u.Y + u.Z) {
		u = lin.NormalizeVec3(lin.CrossVec3(normal, lin.Vec3{X: 0, Y: 1, Z: 1}))
	}
	v = lin.CrossVec3(u, normal)
	return u, v
}

// isNormalFloat reports whether f is finite, non-zero, and not
// subnormal — Rust's f32::is_normal, which spec.md §4.4.1 calls out by
// name as the basis-degeneracy test.
func isNormalFloat(f float32) bool {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) || f == 0 {
		return false
	}
	return math.Abs(float64(f)) >= 0x1p-126 // smallest positive float32 normal
}

// boundingBox2D is the axis-aligned extent of a set of 2D points.
type boundingBox2D struct {
	x, y, width, height float32
}

// projectToPlane projects each vertex into the plane's 2D basis and
// tracks the resulting bounding box.
func projectToPlane[V Vertex[V]](plane Plane, vertices []V) (boundingBox2D, []capPoint[V]) {
	u, v := planeBasis(plane.Normal())
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -float32(math.MaxFloat32), -float32(math.MaxFloat32)

	mapped := make([]capPoint[V], len(vertices))
	for i, vert := range vertices {
		p2d := lin.Vec2{X: lin.DotVec3(vert.Pos(), u), Y: lin.DotVec3(vert.Pos(), v)}
		mapped[i] = capPoint[V]{vertex: vert, p2d: p2d}
		minX = float32(math.Min(float64(minX), float64(p2d.X)))
		minY = float32(math.Min(float64(minY), float64(p2d.Y)))
		maxX = float32(math.Max(float64(maxX), float64(p2d.X)))
		maxY = float32(math.Max(float64(maxY), float64(p2d.Y)))
	}
	return boundingBox2D{x: minX, y: minY, width: maxX - minX, height: maxY - minY}, mapped
}

// cross2D is the 2D cross product's z-component, used by monotoneChain
// to tell a left turn from a right turn.
func cross2D(a, b, c lin.Vec2) float32 {
	return (a.X-b.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-b.Y)
}

// monotoneChain computes the convex hull of the given points using
// Andrew's monotone chain algorithm (spec.md §4.4.2): sort
// lexicographically by (x, y), build a lower chain and an upper chain,
// each popping while the last turn is a right turn or colinear, then
// splice the two chains together, dropping their shared endpoints.
func monotoneChain[V Vertex[V]](points []capPoint[V]) []capPoint[V] {
	sorted := make([]capPoint[V], len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].p2d, sorted[j].p2d
		if a.X != b.X {
			return lessOrNaN(a.X, b.X)
		}
		return lessOrNaN(a.Y, b.Y)
	})

	lower := make([]capPoint[V], 0, len(sorted))
	for _, pt := range sorted {
		for len(lower) >= 2 && cross2D(lower[len(lower)-2].p2d, lower[len(lower)-1].p2d, pt.p2d) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}

	upper := make([]capPoint[V], 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		pt := sorted[i]
		for len(upper) >= 2 && cross2D(upper[len(upper)-2].p2d, upper[len(upper)-1].p2d, pt.p2d) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}

	// Each chain includes both its endpoints; the last point of one
	// chain duplicates the first point of the other, so only the first
	// len-1 points of each are kept.
	hull := make([]capPoint[V], 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// lessOrNaN is a < comparison that treats an incomparable (NaN) pair as
// equal rather than panicking or producing an inconsistent order —
// spec.md §4.4.2's "NaN comparisons fall back to equality".
func lessOrNaN(a, b float32) bool {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	return a < b
}

// twoSidedTriangulate fans the convex hull of vertices into triangles
// filling the cut polygon, emitting both orientations in one pass
// (spec.md §9 strategy ii): an upper cap whose vertices carry +normal,
// wound as the fan comes out of the hull (CCW in the (U, V) basis, so
// its face points along -normal, out of the upper piece), and a lower
// cap whose vertices carry -normal, with each triangle's winding
// reversed (its face points along +normal, out of the lower piece).
// Returns (nil, nil) if fewer than 3 cap points were gathered.
func twoSidedTriangulate[V Vertex[V]](vertices []V, plane Plane, tb TextureBounds) (upperCap, lowerCap []Triangle[V]) {
	if len(vertices) < 3 {
		return nil, nil
	}

	normal := plane.Normal()
	bb, mapped := projectToPlane(plane, vertices)
	hull := monotoneChain(mapped)
	if len(hull) < 3 {
		return nil, nil
	}

	uv := func(p2d lin.Vec2) lin.Vec2 {
		unit := lin.DivVec2(lin.SubVec2(p2d, lin.Vec2{X: bb.x, Y: bb.y}), lin.Vec2{X: bb.width, Y: bb.height})
		return tb.mapUnit(unit)
	}

	apex := hull[len(hull)-1]
	hull = hull[:len(hull)-1]

	upperApex := apex.vertex.NewVertex(apex.vertex.Pos(), uv(apex.p2d), normal)
	lowerApex := apex.vertex.NewVertex(apex.vertex.Pos(), uv(apex.p2d), lin.NegateVec3(normal))

	upperCap = make([]Triangle[V], 0, len(hull)-1)
	lowerCap = make([]Triangle[V], 0, len(hull)-1)
	for i := 0; i < len(hull)-1; i++ {
		a, b := hull[i], hull[i+1]
		ua := a.vertex.NewVertex(a.vertex.Pos(), uv(a.p2d), normal)
		ub := b.vertex.NewVertex(b.vertex.Pos(), uv(b.p2d), normal)
		upperCap = append(upperCap, Triangle[V]{A: ua, B: ub, C: upperApex})

		la := a.vertex.NewVertex(a.vertex.Pos(), uv(a.p2d), lin.NegateVec3(normal))
		lb := b.vertex.NewVertex(b.vertex.Pos(), uv(b.p2d), lin.NegateVec3(normal))
		lowerCap = append(lowerCap, reverseWinding(Triangle[V]{A: la, B: lb, C: lowerApex}))
	}
	return upperCap, lowerCap
}
