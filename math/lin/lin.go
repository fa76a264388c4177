// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the scalar and vector math the path tracer's
// hot path is built on: camera ray generation, AABB slab tests, sphere
// intersection, and material scattering. Everything here is float64.
// There is no matrix or quaternion support — the renderer never needs
// a general 3D transform, only an orthonormal camera basis and
// per-ray vector algebra.
package lin

import "math"

// Various scalar constants shared by the camera and shading code.
const (
	PI   float64 = math.Pi
	PIx2 float64 = PI * 2

	// Epsilon is used to distinguish when a float is close enough to a
	// number that the difference doesn't matter for shading purposes.
	Epsilon float64 = 0.000001
)

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * PIx2 / 360.0 }

// AeqZ (~=) almost-equals-zero returns true if x is close enough to
// zero that it makes no difference.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if the difference between a and
// b is so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Lerp returns the linear interpolation of a to b by the given ratio.
func Lerp(a, b, ratio float64) float64 { return (b-a)*ratio + a }

// Clamp returns s bounded to the range [lb, ub].
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}
