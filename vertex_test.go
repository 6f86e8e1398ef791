// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import (
	"testing"

	"github.com/gazed/meshslice/math/lin"
)

type tv struct{ x, y, z float32 }

func (v tv) Pos() lin.Vec3 { return lin.Vec3{X: v.x, Y: v.y, Z: v.z} }

func (v tv) NewInterpolated(a, b tv, t float32) tv {
	p := lin.LerpVec3(a.Pos(), b.Pos(), t)
	return tv{p.X, p.Y, p.Z}
}

func (v tv) NewVertex(pos lin.Vec3, uv lin.Vec2, normal lin.Vec3) tv {
	return tv{pos.X, pos.Y, pos.Z}
}

func TestReverseWinding(t *testing.T) {
	tri := Triangle[tv]{A: tv{0, 0, 0}, B: tv{1, 0, 0}, C: tv{0, 1, 0}}
	r := reverseWinding(tri)
	if r.A != tri.A || r.B != tri.C || r.C != tri.B {
		t.Errorf("reverseWinding swapped wrong vertices: got %+v", r)
	}
}

func TestVertexToTriangleRoundTrip(t *testing.T) {
	verts := []tv{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 1}, {0, 0, 1}}
	tris := VertexToTriangle(verts)
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	back := TriangleToVertex(tris)
	if len(back) != len(verts) {
		t.Fatalf("got %d vertices back, want %d", len(back), len(verts))
	}
	for i := range verts {
		if back[i] != verts[i] {
			t.Errorf("vertex %d: got %+v, want %+v", i, back[i], verts[i])
		}
	}
}

func TestVertexToTrianglePanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("VertexToTriangle should panic on a non-multiple-of-3 length")
		}
	}()
	VertexToTriangle([]tv{{0, 0, 0}, {1, 0, 0}})
}
