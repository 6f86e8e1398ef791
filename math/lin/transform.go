// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// T is a location and rotation, the minimal transform physics.Shape's
// Aabb signature needs to place a shape's local-space geometry into
// world space.
type T struct {
	Loc *V3 // Location (translation, origin).
	Rot *Q  // Rotation (direction, orientation).
}

// SetI updates transform t to be the identity transform.
// The updated transform t is returned.
func (t *T) SetI() *T {
	t.Loc.SetS(0, 0, 0)
	t.Rot.Set(QI)
	return t
}

// AppS applies transform t, rotation then translation, to input scalar
// vector (x,y,z) returning the transformed scalar vector (vx,vy,vz).
func (t *T) AppS(x, y, z float64) (vx, vy, vz float64) {
	vx, vy, vz = MultSQ(x, y, z, t.Rot)             // apply rotation.
	return vx + t.Loc.X, vy + t.Loc.Y, vz + t.Loc.Z // apply translation.
}

// ============================================================================
// convenience functions for allocating transforms. Nothing else should allocate.

// NewT creates and returns a transform at the origin with no rotation.
func NewT() *T {
	return &T{&V3{}, &Q{0, 0, 0, 1}}
}
