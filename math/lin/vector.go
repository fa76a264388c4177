// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs the 3 element vector math needed by the renderer:
// points, directions, and colors are all a Vec3.

import (
	"math"
	"math/rand"
)

// Vec3 is a 3 element vector holding a point, direction, or color.
// Unlike this package's historical V3/V4 types, Vec3 is a plain value
// type: every operation returns a new Vec3 rather than mutating the
// receiver, which keeps the shading and traversal code built on top of
// it free of aliasing surprises.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the additive identity vector.
var Zero = Vec3{0, 0, 0}

// White is full-intensity white: the identity for multiplicative
// attenuation and the sky gradient's straight-down anchor.
var White = Vec3{1, 1, 1}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add (+) returns v + a.
func (v Vec3) Add(a Vec3) Vec3 { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns v - a.
func (v Vec3) Sub(a Vec3) Vec3 { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul (*) returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MulV (*) returns the pointwise (Hadamard) product of v and a, used to
// apply a color attenuation to a throughput.
func (v Vec3) MulV(a Vec3) Vec3 { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Div (/) returns v with each element divided by s.
func (v Vec3) Div(s float64) Vec3 { return v.Mul(1 / s) }

// Neg (-v) returns the additive inverse of v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and a.
func (v Vec3) Dot(a Vec3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the vector perpendicular to both v and a.
func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		X: v.Y*a.Z - v.Z*a.Y,
		Y: v.Z*a.X - v.X*a.Z,
		Z: v.X*a.Y - v.Y*a.X,
	}
}

// LenSqr returns the squared length of v. Cheaper than Len when only
// used for comparison.
func (v Vec3) LenSqr() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.LenSqr()) }

// Unit returns v scaled to length 1. The caller must ensure v is
// non-zero; a zero-length v would divide by zero.
func (v Vec3) Unit() Vec3 { return v.Mul(1 / v.Len()) }

// NearZero reports whether every component of v is close enough to
// zero that it should be treated as a degenerate direction (used after
// a Lambertian scatter produces a cancellation with the normal).
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Lerp returns the linear interpolation between v and a by t.
func (v Vec3) Lerp(a Vec3, t float64) Vec3 { return v.Add(a.Sub(v).Mul(t)) }

// At returns the i'th component (0=X, 1=Y, 2=Z). Used by the AABB slab
// test and BVH axis-sort code that iterate axes by index.
func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// RandomVec3 returns a vector with each component drawn uniformly from
// [min, max).
func RandomVec3(rng *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*rng.Float64(),
		Y: min + span*rng.Float64(),
		Z: min + span*rng.Float64(),
	}
}

// RandomUnitSphere returns a vector distributed inside the unit ball,
// found by rejection sampling the enclosing cube.
func RandomUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3(rng, -1, 1)
		if p.LenSqr() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a vector uniformly distributed on the unit
// sphere's surface.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomUnitSphere(rng).Unit()
}

// RandomUnitDisk returns a vector distributed inside the unit disk in
// the Z=0 plane, used for depth-of-field lens sampling.
func RandomUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}
		if p.LenSqr() < 1 {
			return p
		}
	}
}
