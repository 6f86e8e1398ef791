// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import "github.com/gazed/meshslice/math/lin"

// nearlyEqual reports whether two positions are within epsilon of each
// other, component-wise — the same tolerance plane classification uses.
func nearlyEqual(a, b lin.Vec3) bool {
	return abs32(a.X-b.X) < epsilon && abs32(a.Y-b.Y) < epsilon && abs32(a.Z-b.Z) < epsilon
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// SubMesh is one side of a sliced mesh: the triangles the cut
// inherited from the source mesh (Hull), and the new triangles
// capping the cut (CrossSection). Concatenating Hull and CrossSection
// yields a closed, watertight mesh (spec.md §4.5, §8 mass-conservation
// property).
type SubMesh[V Vertex[V]] struct {
	Hull         []Triangle[V]
	CrossSection []Triangle[V]
}

// Slice cuts triangles against plane, returning the submesh Above the
// plane and the submesh Below it. The second return is false if plane
// does not actually separate triangles into two non-empty pieces — per
// spec.md §4.5, a plane that misses the mesh entirely, or that only
// grazes it without producing geometry on both sides, is reported as a
// no-op rather than as a degenerate one-sided result.
func Slice[V Vertex[V]](triangles []Triangle[V], plane Plane, tb TextureBounds) (upper, lower SubMesh[V], ok bool) {
	var crossPoints []V

	for _, t := range triangles {
		split, cut := splitTriangle(plane, t)
		if cut {
			upper.Hull = append(upper.Hull, split.Upper...)
			lower.Hull = append(lower.Hull, split.Lower...)
			crossPoints = append(crossPoints, split.Points[0], split.Points[1])
			continue
		}
		routeWholeTriangle(plane, t, &upper, &lower)
	}

	if len(upper.Hull) == 0 || len(lower.Hull) == 0 {
		return SubMesh[V]{}, SubMesh[V]{}, false
	}

	upperCap, lowerCap := twoSidedTriangulate(dedupeCrossPoints(crossPoints), plane, tb)
	upper.CrossSection = upperCap
	lower.CrossSection = lowerCap

	return upper, lower, true
}

// routeWholeTriangle assigns a triangle that splitTriangle declined to
// cut (entirely on one side, or touching the plane without crossing
// it) to Above or Below, by the first vertex whose classification is
// not On — per spec.md §4.5, a triangle classified entirely On
// defaults to Above rather than being dropped.
func routeWholeTriangle[V Vertex[V]](plane Plane, t Triangle[V], upper, lower *SubMesh[V]) {
	side := plane.ClassifySide(t.A.Pos())
	if side == On {
		side = plane.ClassifySide(t.B.Pos())
	}
	if side == On {
		side = plane.ClassifySide(t.C.Pos())
	}
	if side == Below {
		lower.Hull = append(lower.Hull, t)
		return
	}
	upper.Hull = append(upper.Hull, t)
}

// dedupeCrossPoints collapses cross-section points that coincide
// within epsilon, since adjacent split triangles each contribute the
// shared edge-plane intersection independently (spec.md §4.4: the
// triangulator's input points come from many triangles' Points pairs,
// but the hull it builds is of the distinct points among them).
func dedupeCrossPoints[V Vertex[V]](points []V) []V {
	deduped := make([]V, 0, len(points))
	for _, p := range points {
		duplicate := false
		for _, d := range deduped {
			if nearlyEqual(p.Pos(), d.Pos()) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			deduped = append(deduped, p)
		}
	}
	return deduped
}
