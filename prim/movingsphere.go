// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package prim

import (
	"math"

	"pathtracer/material"
	"pathtracer/math/lin"
)

// MovingSphere linearly interpolates its center between Center0 at
// Time0 and Center1 at Time1; evaluating outside [Time0, Time1]
// extrapolates rather than clamping.
type MovingSphere struct {
	Center0, Center1 lin.Vec3
	Time0, Time1     float64
	Radius           float64
	Mat              material.Material
}

// NewMovingSphere returns a sphere that moves linearly over the
// shutter interval [time0, time1].
func NewMovingSphere(center0, center1 lin.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Mat: mat}
}

// CenterAt returns the sphere's center at the given ray time.
func (s *MovingSphere) CenterAt(time float64) lin.Vec3 {
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(t))
}

// Hit implements Primitive: resolve the center at the ray's time,
// then run the same quadratic test a static sphere uses.
func (s *MovingSphere) Hit(r lin.Ray, rec *HitRecord) bool {
	return sphereHit(r, s.CenterAt(r.Time), s.Radius, rec, s)
}

// NormalAt implements Primitive.
func (s *MovingSphere) NormalAt(p lin.Vec3, time float64) lin.Vec3 {
	return p.Sub(s.CenterAt(time)).Div(s.Radius)
}

// UVAt implements Primitive.
func (s *MovingSphere) UVAt(p lin.Vec3, time float64) (u, v float64) {
	return sphereUV(s.NormalAt(p, time))
}

// BoundingBox implements Primitive: the union of the box at Time0 and
// the box at Time1, covering every position in between since the
// center moves linearly.
func (s *MovingSphere) BoundingBox(t0, t1 float64) lin.AABB {
	r := math.Abs(s.Radius)
	rv := lin.NewVec3(r, r, r)
	box0 := lin.NewAABB(s.CenterAt(t0).Sub(rv), s.CenterAt(t0).Add(rv))
	box1 := lin.NewAABB(s.CenterAt(t1).Sub(rv), s.CenterAt(t1).Add(rv))
	return lin.Surrounding(box0, box1)
}

// Material implements Primitive.
func (s *MovingSphere) Material() material.Material { return s.Mat }
