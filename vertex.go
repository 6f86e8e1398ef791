// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import "github.com/gazed/meshslice/math/lin"

// Vertex is the capability set the kernel needs from a caller-supplied
// vertex type V. It is the generic-type-parameter form of the
// capability set spec.md §9 describes ("a capability set passed to the
// core... via generics/templates"). V is self-referential (Vertex[V])
// so that NewInterpolated/NewVertex hand back the caller's own concrete
// type rather than an opaque interface value; the receiver of those
// two methods carries no meaning of its own and exists only because Go
// has no free-standing associated functions — callers are expected to
// ignore it, the way `V::new_interpolated` ignores `self` in the
// original Rust trait.
type Vertex[V any] interface {
	// Pos returns the vertex position. Pure, idempotent.
	Pos() lin.Vec3

	// NewInterpolated builds a vertex on the segment a-b at parameter
	// t: its position must equal a.Pos() + t*(b.Pos()-a.Pos()), with
	// every other attribute linearly blended the same way. Called once
	// per triangle edge the cutting plane crosses.
	NewInterpolated(a, b V, t float32) V

	// NewVertex builds a cap vertex with an explicit position, UV, and
	// normal. Called twice per cross-section vertex, once per side,
	// with opposing normals.
	NewVertex(pos lin.Vec3, uv lin.Vec2, normal lin.Vec3) V
}

// Triangle is an ordered triple of vertices. Winding follows the
// right-hand rule about a->b->c and defines the outward face.
type Triangle[V Vertex[V]] struct {
	A, B, C V
}

// reverseWinding swaps b and c, flipping the triangle's outward face.
// Named to match the "reverse then flip normals" cap strategy noted in
// original_source/src/triangle.rs, even though triangulate.go takes
// the single-pass strategy (spec.md §9 strategy ii) that builds both
// windings directly instead of deriving one from the other by calling
// this on a live cap triangle.
func reverseWinding[V Vertex[V]](t Triangle[V]) Triangle[V] {
	t.B, t.C = t.C, t.B
	return t
}

// VertexToTriangle groups a flat vertex stream into triangles, three
// vertices at a time — spec.md §6's vertex_to_triangle helper. Per
// spec.md §6 an incomplete final triangle is a caller bug; this panics
// rather than silently truncating.
func VertexToTriangle[V Vertex[V]](vertices []V) []Triangle[V] {
	if len(vertices)%3 != 0 {
		panic("meshslice: vertex stream length is not a multiple of 3")
	}
	triangles := make([]Triangle[V], 0, len(vertices)/3)
	for i := 0; i < len(vertices); i += 3 {
		triangles = append(triangles, Triangle[V]{A: vertices[i], B: vertices[i+1], C: vertices[i+2]})
	}
	return triangles
}

// TriangleToVertex flattens triangles back into a vertex stream, three
// vertices per triangle, in A, B, C order — spec.md §6's
// triangle_to_vertex helper.
func TriangleToVertex[V Vertex[V]](triangles []Triangle[V]) []V {
	vertices := make([]V, 0, len(triangles)*3)
	for _, tr := range triangles {
		vertices = append(vertices, tr.A, tr.B, tr.C)
	}
	return vertices
}
