// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshslice

import (
	"testing"

	"github.com/gazed/meshslice/math/lin"
)

func TestClassifySide(t *testing.T) {
	p := NewPlane(lin.Vec3{X: 0, Y: 1, Z: 0}, 1)

	tests := []struct {
		point lin.Vec3
		want  Side
	}{
		{lin.Vec3{X: 0, Y: 2, Z: 0}, Above},
		{lin.Vec3{X: 0, Y: 0, Z: 0}, Below},
		{lin.Vec3{X: 5, Y: 1, Z: -5}, On},
		{lin.Vec3{X: 0, Y: 1 + epsilon/2, Z: 0}, On},
	}
	for _, tt := range tests {
		if got := p.ClassifySide(tt.point); got != tt.want {
			t.Errorf("ClassifySide(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestPlaneFromPosNormal(t *testing.T) {
	p := PlaneFromPosNormal(lin.Vec3{X: 0, Y: 3, Z: 0}, lin.Vec3{X: 0, Y: 1, Z: 0})
	if p.ClassifySide(lin.Vec3{X: 0, Y: 3, Z: 0}) != On {
		t.Error("plane's defining point should classify as On")
	}
	if p.ClassifySide(lin.Vec3{X: 0, Y: 10, Z: 0}) != Above {
		t.Error("point above the plane along its normal should classify as Above")
	}
}

func TestPlaneFromSpanningVectors(t *testing.T) {
	a := lin.Vec3{X: 0, Y: 0, Z: 0}
	b := lin.Vec3{X: 1, Y: 0, Z: 0}
	c := lin.Vec3{X: 0, Y: 0, Z: 1}
	p := PlaneFromSpanningVectors(a, b, c)

	for _, pt := range []lin.Vec3{a, b, c} {
		if p.ClassifySide(pt) != On {
			t.Errorf("spanning point %v should classify as On, got %v", pt, p.ClassifySide(pt))
		}
	}
	if p.ClassifySide(lin.Vec3{X: 0, Y: -1, Z: 0}) != Above {
		t.Error("point above the a-b-c winding should classify as Above")
	}
}
