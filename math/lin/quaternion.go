// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Quaternion deals with quaternion math specifically for linear algebra rotations.
// For a nice explanation of quaternions see http://3dgep.com/?p=1815

// Unit length quaternions represent an angle of rotation and an
// direction/orientation and are used to track/manipulate 3D object rotations.
// Quaternions behave nicely for mathematical operations other than they are
// not commutative.
type Q struct {
	X float64 // X component of direction vector.
	Y float64 // Y component of direction vector.
	Z float64 // Z component of direction vector.
	W float64 // Angle of rotation.
}

// QI provides a reference identity quaternion that can be used
// in calculations. It should never be changed.
var QI = &Q{0, 0, 0, 1}

// Eq (==) returns true if each element in the quaternion q has the same value
// as the corresponding element in quaternion r.
func (q *Q) Eq(r *Q) bool {
	return q.W == r.W && q.Z == r.Z && q.Y == r.Y && q.X == r.X
}

// Set (=) assigns all the elements values from quaternion r to the corresponding
// element values in quaternion q. The updated quaternion q is returned.
func (q *Q) Set(r *Q) *Q {
	q.X, q.Y, q.Z, q.W = r.X, r.Y, r.Z, r.W
	return q
}
