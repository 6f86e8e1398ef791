// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/gazed/meshslice"
	"github.com/gazed/meshslice/math/lin"
)

// hv is the minimal meshslice.Vertex a physics test needs: position only.
type hv struct{ x, y, z float32 }

func (v hv) Pos() lin.Vec3 { return lin.Vec3{X: v.x, Y: v.y, Z: v.z} }

func (v hv) NewInterpolated(a, b hv, t float32) hv {
	p := lin.LerpVec3(a.Pos(), b.Pos(), t)
	return hv{p.X, p.Y, p.Z}
}

func (v hv) NewVertex(pos lin.Vec3, uv lin.Vec2, normal lin.Vec3) hv {
	return hv{pos.X, pos.Y, pos.Z}
}

func unitCubeHv() []meshslice.Triangle[hv] {
	corner := func(x, y, z float32) hv { return hv{x, y, z} }
	v := [8]hv{
		corner(-1, +1, +1), corner(-1, -1, +1),
		corner(-1, +1, -1), corner(-1, -1, -1),
		corner(+1, +1, +1), corner(+1, -1, +1),
		corner(+1, +1, -1), corner(+1, -1, -1),
	}
	idx := [][3]int{
		{4, 2, 0}, {4, 6, 2}, // top
		{2, 7, 3}, {2, 6, 7}, // back
		{6, 5, 7}, {6, 4, 5}, // right
		{1, 7, 5}, {1, 3, 7}, // bottom
		{0, 3, 1}, {0, 2, 3}, // left
		{4, 1, 5}, {4, 0, 1}, // front
	}
	triangles := make([]meshslice.Triangle[hv], len(idx))
	for i, tri := range idx {
		triangles[i] = meshslice.Triangle[hv]{A: v[tri[0]], B: v[tri[1]], C: v[tri[2]]}
	}
	return triangles
}

// hullPoints collects every float32 hull vertex position of sub,
// repeats included (NewConvexHull removes them), as float64 lin.V3
// points, the precision NewConvexHull takes.
func hullPoints(sub meshslice.SubMesh[hv]) []lin.V3 {
	points := make([]lin.V3, 0, len(sub.Hull)*3)
	for _, tri := range sub.Hull {
		for _, v := range []hv{tri.A, tri.B, tri.C} {
			p := v.Pos()
			points = append(points, lin.V3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)})
		}
	}
	return points
}

// TestConvexHullFromSlicedMesh bridges the kernel's float32 output to
// the physics package's float64 collision shapes: slice a cube, take
// the upper half's hull vertices, and build a simulatable convex hull
// from them.
func TestConvexHullFromSlicedMesh(t *testing.T) {
	cube := unitCubeHv()
	plane := meshslice.NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 0)
	upper, _, ok := meshslice.Slice(cube, plane, meshslice.DefaultTextureBounds())
	if !ok {
		t.Fatal("expected the cut to succeed")
	}

	hull := Shape(NewConvexHull(hullPoints(upper)))
	if hull.Type() != ConvexHullShape {
		t.Errorf("expected ConvexHullShape, got %d", hull.Type())
	}
	if hull.Volume() <= 0 {
		t.Errorf("expected a positive approximate volume, got %f", hull.Volume())
	}

	ab := hull.Aabb(lin.NewT().SetI(), &Abox{}, 0)
	if !ab.Overlaps(&Abox{Sx: -1, Sy: 0, Sz: -1, Lx: 1, Ly: 1, Lz: 1}) {
		t.Error("upper-half hull's Aabb should overlap the cube's upper octant")
	}
}
