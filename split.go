// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import (
	"log/slog"

	"github.com/gazed/meshslice/math/lin"
)

// TriangleSplit is the result of cutting one triangle against a plane:
// 2 or 3 child triangles, tagged by which side of the split they fall
// on, plus the two points where the plane meets the triangle: two new
// edge points, or, when the cut passes through a vertex, one new edge
// point and that vertex (spec.md §4.3 — these feed the cross-section
// triangulator).
type TriangleSplit[V Vertex[V]] struct {
	Upper, Lower []Triangle[V]
	Points       [2]V
}

// splitTriangle classifies a, b, c against plane and, if the plane
// actually crosses the triangle, returns the split. It returns
// (zero, false) for every early-exit case in spec.md §4.3: triangle
// entirely on one side (or coplanar), exactly two vertices On, or one
// vertex On with the other two on the same side.
func splitTriangle[V Vertex[V]](plane Plane, t Triangle[V]) (TriangleSplit[V], bool) {
	sa := plane.ClassifySide(t.A.Pos())
	sb := plane.ClassifySide(t.B.Pos())
	sc := plane.ClassifySide(t.C.Pos())

	if sa == sb && sb == sc {
		return TriangleSplit[V]{}, false
	}
	if (sa == On && sb == On) || (sb == On && sc == On) || (sc == On && sa == On) {
		return TriangleSplit[V]{}, false
	}
	if (sa == On && sb != On && sb == sc) ||
		(sb == On && sa != On && sa == sc) ||
		(sc == On && sa != On && sa == sb) {
		return TriangleSplit[V]{}, false
	}

	// Case A: exactly one vertex On, the other two on opposite sides.
	// The plane enters at the On vertex and exits through the opposite
	// edge, producing 2 children.
	if sa == On {
		return splitAtVertex(plane, t.A, t.B, t.C, sb)
	}
	if sb == On {
		return splitAtVertex(plane, t.B, t.C, t.A, sc)
	}
	if sc == On {
		return splitAtVertex(plane, t.C, t.A, t.B, sa)
	}

	// Case B: all three strictly off-plane, one alone on its side. The
	// plane cuts two edges; the minority vertex becomes 1 child, the
	// majority pair becomes a quad split into 2 children by a diagonal
	// from the majority vertex adjacent to the minority vertex.
	if sa != sb {
		if sa == sc {
			return splitMinorityB(plane, t.A, t.B, t.C, sa)
		}
		return splitMinorityA(plane, t.A, t.B, t.C, sa)
	}
	return splitMinorityC(plane, t.A, t.B, t.C, sa)
}

// splitAtVertex handles Case A, called with the On vertex always in the
// "a" position (the caller passes its actual a/b/c rotated so that
// holds) and sideB carrying the classification of whichever original
// vertex landed in the "b" position here.
func splitAtVertex[V Vertex[V]](plane Plane, a, b, c V, sideB Side) (TriangleSplit[V], bool) {
	ip, ok := intersectEdge(plane, b, c)
	if !ok {
		return TriangleSplit[V]{}, false
	}
	childNearB := Triangle[V]{A: a, B: b, C: ip}
	childNearC := Triangle[V]{A: a, B: ip, C: c}
	split := TriangleSplit[V]{Points: [2]V{ip, a}}
	if sideB == Above {
		split.Upper = []Triangle[V]{childNearB}
		split.Lower = []Triangle[V]{childNearC}
	} else {
		split.Lower = []Triangle[V]{childNearB}
		split.Upper = []Triangle[V]{childNearC}
	}
	return split, true
}

// splitMinorityA handles Case B where vertex a is the minority vertex:
// edges ab and ac are cut.
func splitMinorityA[V Vertex[V]](plane Plane, a, b, c V, sideA Side) (TriangleSplit[V], bool) {
	ip, ok := intersectEdge(plane, a, b)
	if !ok {
		return TriangleSplit[V]{}, false
	}
	ip2, ok := intersectEdge(plane, a, c)
	if !ok {
		return TriangleSplit[V]{}, false
	}
	lone := Triangle[V]{A: a, B: ip, C: ip2}
	quad1 := Triangle[V]{A: ip, B: b, C: c}
	quad2 := Triangle[V]{A: ip, B: c, C: ip2}
	split := TriangleSplit[V]{Points: [2]V{ip, ip2}}
	if sideA == Above {
		split.Upper = []Triangle[V]{lone}
		split.Lower = []Triangle[V]{quad1, quad2}
	} else {
		split.Lower = []Triangle[V]{lone}
		split.Upper = []Triangle[V]{quad1, quad2}
	}
	return split, true
}

// splitMinorityB handles Case B where vertex b is the minority vertex:
// edges ab and bc are cut.
func splitMinorityB[V Vertex[V]](plane Plane, a, b, c V, sideA Side) (TriangleSplit[V], bool) {
	ip, ok := intersectEdge(plane, a, b)
	if !ok {
		return TriangleSplit[V]{}, false
	}
	ip2, ok := intersectEdge(plane, b, c)
	if !ok {
		return TriangleSplit[V]{}, false
	}
	lone := Triangle[V]{A: ip, B: b, C: ip2}
	quad1 := Triangle[V]{A: a, B: ip, C: ip2}
	quad2 := Triangle[V]{A: a, B: ip2, C: c}
	split := TriangleSplit[V]{Points: [2]V{ip, ip2}}
	// sideA is a and c's shared (majority) side; the lone triangle
	// wraps minority vertex b, which is always on the opposite side.
	if sideA == Above {
		split.Lower = []Triangle[V]{lone}
		split.Upper = []Triangle[V]{quad1, quad2}
	} else {
		split.Upper = []Triangle[V]{lone}
		split.Lower = []Triangle[V]{quad1, quad2}
	}
	return split, true
}

// splitMinorityC handles Case B where vertex c is the minority vertex:
// edges ac and bc are cut.
func splitMinorityC[V Vertex[V]](plane Plane, a, b, c V, sideA Side) (TriangleSplit[V], bool) {
	ip, ok := intersectEdge(plane, a, c)
	if !ok {
		return TriangleSplit[V]{}, false
	}
	ip2, ok := intersectEdge(plane, b, c)
	if !ok {
		return TriangleSplit[V]{}, false
	}
	lone := Triangle[V]{A: ip, B: ip2, C: c}
	quad1 := Triangle[V]{A: a, B: ip2, C: ip}
	quad2 := Triangle[V]{A: a, B: b, C: ip2}
	split := TriangleSplit[V]{Points: [2]V{ip, ip2}}
	// sideA is a and b's shared (majority) side; the lone triangle
	// wraps minority vertex c, which is always on the opposite side.
	if sideA == Above {
		split.Lower = []Triangle[V]{lone}
		split.Upper = []Triangle[V]{quad1, quad2}
	} else {
		split.Upper = []Triangle[V]{lone}
		split.Lower = []Triangle[V]{quad1, quad2}
	}
	return split, true
}

// intersectEdge finds where edge a-b crosses plane (spec.md §4.3.1).
// line = b.Pos() - a.Pos(); ln = dot(plane.normal, line). A zero ln
// means the edge is parallel to the plane: no intersection. Otherwise
// t = (plane.dist - dot(plane.normal, a.Pos())) / ln, accepted only in
// [-epsilon, 1+epsilon] — outside that window the caller's side
// classification disagreed with the edge/plane math, and this is
// treated as "no intersection" rather than extrapolated.
func intersectEdge[V Vertex[V]](plane Plane, a, b V) (V, bool) {
	var zero V
	line := lin.SubVec3(b.Pos(), a.Pos())
	ln := lin.DotVec3(plane.Normal(), line)
	if ln == 0 {
		slog.Debug("meshslice: edge parallel to cutting plane, discarding", "a", a.Pos(), "b", b.Pos())
		return zero, false
	}
	t := (plane.Dist() - lin.DotVec3(plane.Normal(), a.Pos())) / ln
	if t < -epsilon || t > 1+epsilon {
		slog.Debug("meshslice: edge/plane intersection outside epsilon window, discarding",
			"a", a.Pos(), "b", b.Pos(), "t", t)
		return zero, false
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.NewInterpolated(a, b, t), true
}
