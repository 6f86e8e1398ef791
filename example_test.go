// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice_test

// example_test.go demonstrates end-to-end usage: build a small mesh,
// cut it with a plane, and inspect the resulting pieces. Unlike the
// crate this kernel is modeled on, there is no glTF export here —
// exporting a scene graph is outside the kernel's scope; the point is
// the Slice call and its result, not a file format.

import (
	"fmt"

	"github.com/gazed/meshslice"
	"github.com/gazed/meshslice/math/lin"
)

// demoVertex is the minimal meshslice.Vertex implementation an
// application needs: a position, a UV, and a normal.
type demoVertex struct {
	pos    lin.Vec3
	uv     lin.Vec2
	normal lin.Vec3
}

func (v demoVertex) Pos() lin.Vec3 { return v.pos }

func (v demoVertex) NewInterpolated(a, b demoVertex, t float32) demoVertex {
	return demoVertex{
		pos:    lin.LerpVec3(a.pos, b.pos, t),
		uv:     lin.LerpVec2(a.uv, b.uv, t),
		normal: lin.NormalizeVec3(lin.LerpVec3(a.normal, b.normal, t)),
	}
}

func (v demoVertex) NewVertex(pos lin.Vec3, uv lin.Vec2, normal lin.Vec3) demoVertex {
	return demoVertex{pos: pos, uv: uv, normal: normal}
}

// cubeTriangles builds a unit cube centered at the origin, the same
// vertex layout as a Blender-exported OBJ cube: 8 corners, 12
// triangles, two per face.
func cubeTriangles() []meshslice.Triangle[demoVertex] {
	corner := func(x, y, z float32) demoVertex {
		return demoVertex{pos: lin.Vec3{X: x, Y: y, Z: z}}
	}
	v := [8]demoVertex{
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
	triangles := make([]meshslice.Triangle[demoVertex], len(idx))
	for i, tri := range idx {
		triangles[i] = meshslice.Triangle[demoVertex]{A: v[tri[0]], B: v[tri[1]], C: v[tri[2]]}
	}
	return triangles
}

// Example slices a unit cube in half through its horizontal midplane
// and reports, for each side, whether it got both hull and cap
// triangles.
func Example() {
	cube := cubeTriangles()
	plane := meshslice.PlaneFromPosNormal(lin.Vec3{}, lin.Vec3{X: 0, Y: 1, Z: 0})

	upper, lower, ok := meshslice.Slice(cube, plane, meshslice.DefaultTextureBounds())
	if !ok {
		fmt.Println("plane did not separate the mesh")
		return
	}

	fmt.Println(len(upper.Hull) > 0 && len(upper.CrossSection) > 0)
	fmt.Println(len(lower.Hull) > 0 && len(lower.CrossSection) > 0)
	// Output:
	// true
	// true
}
