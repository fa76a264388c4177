// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package prim

import (
	"math"

	"pathtracer/material"
	"pathtracer/math/lin"
)

// Sphere is a static analytic sphere. A negative Radius flips the
// normal inward, producing a hollow interior — used to build a glass
// bubble out of two nested Dielectric spheres.
type Sphere struct {
	Center lin.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere returns a sphere primitive.
func NewSphere(center lin.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit implements Primitive via the analytic quadratic root test.
func (s *Sphere) Hit(r lin.Ray, rec *HitRecord) bool {
	return sphereHit(r, s.Center, s.Radius, rec, s)
}

// sphereHit is shared by Sphere and MovingSphere once the center at
// the ray's time is resolved.
func sphereHit(r lin.Ray, center lin.Vec3, radius float64, rec *HitRecord, p Primitive) bool {
	oc := r.Origin.Sub(center)
	a := r.Dir.Dot(r.Dir)
	b := r.Dir.Dot(oc)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - a*c
	if disc < 0 {
		return false
	}
	sqrtd := math.Sqrt(disc)

	root := (-b - sqrtd) / a
	if root < rec.TMin || root > rec.TMax {
		root = (-b + sqrtd) / a
		if root < rec.TMin || root > rec.TMax {
			return false
		}
	}
	rec.TMax = root
	rec.Prim = p
	return true
}

// NormalAt implements Primitive.
func (s *Sphere) NormalAt(p lin.Vec3, time float64) lin.Vec3 {
	return p.Sub(s.Center).Div(s.Radius)
}

// UVAt implements Primitive using the spec's spherical mapping:
// longitude from atan2(-z, x), latitude from acos(-y), both taken on
// the unit outward normal.
func (s *Sphere) UVAt(p lin.Vec3, time float64) (u, v float64) {
	return sphereUV(s.NormalAt(p, time))
}

func sphereUV(n lin.Vec3) (u, v float64) {
	u = (math.Atan2(-n.Z, n.X) + lin.PI) / lin.PIx2
	v = math.Acos(-n.Y) / lin.PI
	return u, v
}

// BoundingBox implements Primitive. A negative radius still yields a
// valid box since its magnitude, not its sign, sets the extent.
func (s *Sphere) BoundingBox(t0, t1 float64) lin.AABB {
	r := math.Abs(s.Radius)
	rv := lin.NewVec3(r, r, r)
	return lin.NewAABB(s.Center.Sub(rv), s.Center.Add(rv))
}

// Material implements Primitive.
func (s *Sphere) Material() material.Material { return s.Mat }
