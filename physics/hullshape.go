// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/gazed/meshslice/math/lin"

// convexHull is a collision shape primitive defined by the points of a
// convex polyhedron, centered at its own centroid. It is the convex
// hull shape created from triangle meshes that shape.go's list of
// shapes points to.
type convexHull struct {
	points []lin.V3 // local-space points, centroid already subtracted.
	volume float64
}

// NewConvexHull creates a Shape from the unique vertices of a convex
// polyhedron, typically one submesh's Hull produced by slicing a
// larger mesh. points need not be deduplicated or centered; both are
// done here. Empty input yields a Shape with zero volume and zero
// inertia rather than panicking. Any other input, however few points,
// gets the volume and inertia of its bounding box, which are zero only
// when that box is flat.
func NewConvexHull(points []lin.V3) Shape {
	h := &convexHull{}
	if len(points) == 0 {
		return h
	}

	seen := make(map[lin.V3]bool, len(points))
	unique := make([]lin.V3, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	points = unique

	centroid := lin.NewV3()
	for _, p := range points {
		centroid.X += p.X
		centroid.Y += p.Y
		centroid.Z += p.Z
	}
	n := float64(len(points))
	centroid.X, centroid.Y, centroid.Z = centroid.X/n, centroid.Y/n, centroid.Z/n

	h.points = make([]lin.V3, len(points))
	for i, p := range points {
		h.points[i] = lin.V3{X: p.X - centroid.X, Y: p.Y - centroid.Y, Z: p.Z - centroid.Z}
	}
	h.volume = approximateVolume(h.points)
	return h
}

// Implements Shape.Type
func (h *convexHull) Type() int { return ConvexHullShape }

// Implements Shape.Volume. Exact convex-hull volume needs a full
// tetrahedralization; this approximates it with the volume of the
// axis-aligned bounding box of the local-space points, which is exact
// for a box-shaped hull and a conservative over-estimate otherwise —
// adequate for mass = density*volume on the sliced fragments this
// shape is built from.
func (h *convexHull) Volume() float64 { return h.volume }

// Implements Shape.Aabb
func (h *convexHull) Aabb(t *lin.T, ab *Abox, margin float64) *Abox {
	if len(h.points) == 0 {
		ab.Sx, ab.Sy, ab.Sz = t.Loc.X, t.Loc.Y, t.Loc.Z
		ab.Lx, ab.Ly, ab.Lz = t.Loc.X, t.Loc.Y, t.Loc.Z
		return ab
	}
	world := lin.NewV3()
	world.AppT(t, &h.points[0])
	ab.Sx, ab.Sy, ab.Sz = world.X, world.Y, world.Z
	ab.Lx, ab.Ly, ab.Lz = world.X, world.Y, world.Z
	for _, p := range h.points[1:] {
		world.AppT(t, &p)
		ab.Sx, ab.Sy, ab.Sz = min64(ab.Sx, world.X), min64(ab.Sy, world.Y), min64(ab.Sz, world.Z)
		ab.Lx, ab.Ly, ab.Lz = max64(ab.Lx, world.X), max64(ab.Ly, world.Y), max64(ab.Lz, world.Z)
	}
	ab.Sx, ab.Sy, ab.Sz = ab.Sx-margin, ab.Sy-margin, ab.Sz-margin
	ab.Lx, ab.Ly, ab.Lz = ab.Lx+margin, ab.Ly+margin, ab.Lz+margin
	return ab
}

// Implements Shape.Inertia using the same bounding-box approximation
// Volume does: treat the hull as a box matching its local-space AABB.
func (h *convexHull) Inertia(mass float64, inertia *lin.V3) *lin.V3 {
	if len(h.points) == 0 {
		inertia.SetS(0, 0, 0)
		return inertia
	}
	sx, sy, sz := h.points[0].X, h.points[0].Y, h.points[0].Z
	lx, ly, lz := sx, sy, sz
	for _, p := range h.points[1:] {
		sx, sy, sz = min64(sx, p.X), min64(sy, p.Y), min64(sz, p.Z)
		lx, ly, lz = max64(lx, p.X), max64(ly, p.Y), max64(lz, p.Z)
	}
	dx, dy, dz := lx-sx, ly-sy, lz-sz
	dx2, dy2, dz2 := dx*dx, dy*dy, dz*dz
	inertia.SetS(mass/12.0*(dy2+dz2), mass/12.0*(dx2+dz2), mass/12.0*(dx2+dy2))
	return inertia
}

// approximateVolume returns the volume of the local-space points'
// axis-aligned bounding box.
func approximateVolume(points []lin.V3) float64 {
	if len(points) == 0 {
		return 0
	}
	sx, sy, sz := points[0].X, points[0].Y, points[0].Z
	lx, ly, lz := sx, sy, sz
	for _, p := range points[1:] {
		sx, sy, sz = min64(sx, p.X), min64(sy, p.Y), min64(sz, p.Z)
		lx, ly, lz = max64(lx, p.X), max64(ly, p.Y), max64(lz, p.Z)
	}
	return (lx - sx) * (ly - sy) * (lz - sz)
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
