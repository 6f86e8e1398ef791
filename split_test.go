// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import (
	"testing"

	"github.com/gazed/meshslice/math/lin"
)

func TestSplitTriangleEntirelyAbove(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	tri := Triangle[tv]{A: tv{0, 1, 0}, B: tv{1, 1, 0}, C: tv{0, 2, 0}}
	if _, cut := splitTriangle(p, tri); cut {
		t.Error("a triangle entirely above the plane should not be cut")
	}
}

func TestSplitTriangleMinorityA(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	// a is below (y=-1), b and c are above (y=1).
	tri := Triangle[tv]{A: tv{0, -1, 0}, B: tv{1, 1, 0}, C: tv{-1, 1, 0}}
	split, cut := splitTriangle(p, tri)
	if !cut {
		t.Fatal("expected a cut")
	}
	if len(split.Lower) != 1 || len(split.Upper) != 2 {
		t.Fatalf("got %d lower / %d upper, want 1 lower / 2 upper", len(split.Lower), len(split.Upper))
	}
	for _, child := range append(append([]Triangle[tv]{}, split.Lower...), split.Upper...) {
		for _, v := range []tv{child.A, child.B, child.C} {
			side := p.ClassifySide(v.Pos())
			if side == Below && len(split.Lower) == 0 {
				t.Errorf("unexpected below vertex %+v", v)
			}
		}
	}
	for _, ip := range split.Points {
		if p.ClassifySide(ip.Pos()) != On {
			t.Errorf("intersection point %+v should classify On", ip)
		}
	}
}

func TestSplitTriangleOneVertexOn(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	// a is on the plane, b above, c below.
	tri := Triangle[tv]{A: tv{0, 0, 0}, B: tv{1, 1, 0}, C: tv{-1, -1, 0}}
	split, cut := splitTriangle(p, tri)
	if !cut {
		t.Fatal("expected a cut")
	}
	if len(split.Upper) != 1 || len(split.Lower) != 1 {
		t.Fatalf("got %d upper / %d lower, want 1 / 1", len(split.Upper), len(split.Lower))
	}
}

func TestSplitTriangleTwoVerticesOn(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	// a and b lie on the plane; the edge a-b is tangent, not crossing.
	tri := Triangle[tv]{A: tv{0, 0, 0}, B: tv{1, 0, 0}, C: tv{0, 1, 0}}
	if _, cut := splitTriangle(p, tri); cut {
		t.Error("a triangle tangent to the plane along one edge should not be cut")
	}
}

func TestSplitMinorityBDirect(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	// b is the minority vertex (below); a and c are above.
	a, b, c := tv{-1, 1, 0}, tv{0, -1, 0}, tv{1, 1, 0}
	split, ok := splitMinorityB(p, a, b, c, Above)
	if !ok {
		t.Fatal("expected a cut")
	}
	if len(split.Lower) != 1 || len(split.Upper) != 2 {
		t.Fatalf("got %d lower / %d upper, want 1 lower / 2 upper", len(split.Lower), len(split.Upper))
	}
	for _, v := range []tv{split.Lower[0].A, split.Lower[0].B, split.Lower[0].C} {
		if v == b {
			continue
		}
		if p.ClassifySide(v.Pos()) != On {
			t.Errorf("lone triangle vertex %+v should be the minority vertex or an On intersection point", v)
		}
	}
	for _, ip := range split.Points {
		if p.ClassifySide(ip.Pos()) != On {
			t.Errorf("intersection point %+v should classify On", ip)
		}
	}
}

func TestSplitMinorityCDirect(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	// c is the minority vertex (below); a and b are above.
	a, b, c := tv{-1, 1, 0}, tv{1, 1, 0}, tv{0, -1, 0}
	split, ok := splitMinorityC(p, a, b, c, Above)
	if !ok {
		t.Fatal("expected a cut")
	}
	if len(split.Lower) != 1 || len(split.Upper) != 2 {
		t.Fatalf("got %d lower / %d upper, want 1 lower / 2 upper", len(split.Lower), len(split.Upper))
	}
	for _, v := range []tv{split.Lower[0].A, split.Lower[0].B, split.Lower[0].C} {
		if v == c {
			continue
		}
		if p.ClassifySide(v.Pos()) != On {
			t.Errorf("lone triangle vertex %+v should be the minority vertex or an On intersection point", v)
		}
	}
	for _, ip := range split.Points {
		if p.ClassifySide(ip.Pos()) != On {
			t.Errorf("intersection point %+v should classify On", ip)
		}
	}
}

func TestIntersectEdgeMidpoint(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	a, b := tv{0, -1, 0}, tv{0, 1, 0}
	ip, ok := intersectEdge(p, a, b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if ip.y != 0 {
		t.Errorf("intersection y = %v, want 0", ip.y)
	}
}

func TestIntersectEdgeParallel(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	a, b := tv{0, 1, 0}, tv{1, 1, 0} // both above, edge parallel to plane
	if _, ok := intersectEdge(p, a, b); ok {
		t.Error("an edge parallel to the plane should not intersect it")
	}
}
