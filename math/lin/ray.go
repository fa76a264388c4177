// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

// Ray is a parametric ray origin + t*direction, carrying the shutter
// time the ray was sampled at and a precomputed inverse direction so
// the BVH's slab test never divides. Direction need not be unit length
// while traversing the BVH — materials normalize it themselves when
// they need to.
//
// Invariant: whenever Dir is mutated, InvDir must be refreshed (via
// SetDir) before the ray is handed back to the BVH.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	InvDir Vec3
	Time   float64
}

// NewRay returns a ray with InvDir derived from dir.
func NewRay(origin, dir Vec3, time float64) Ray {
	return Ray{Origin: origin, Dir: dir, InvDir: invert(dir), Time: time}
}

// SetDir overwrites the ray's direction and refreshes InvDir to match.
// Used by material scatter to turn an incoming ray into the outgoing
// scattered ray without re-deriving InvDir by hand at every call site.
func (r *Ray) SetDir(dir Vec3) {
	r.Dir = dir
	r.InvDir = invert(dir)
}

// At returns the point the ray reaches at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

func invert(d Vec3) Vec3 {
	return Vec3{X: 1 / d.X, Y: 1 / d.Y, Z: 1 / d.Z}
}
