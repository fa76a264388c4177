// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"math"
	"math/rand"

	"pathtracer/math/lin"
)

// Camera generates primary rays with depth-of-field and motion blur.
// Its orthonormal basis and derived scale factors are computed once
// at construction, never recomputed per ray.
type Camera struct {
	origin             lin.Vec3
	forward, right, up lin.Vec3
	invWidth, invHeight float64
	aspectRatio        float64
	fovScale           float64
	focusDist          float64
	aperture           float64
	time0, time1       float64
}

// CameraSettings groups the Camera construction parameters that
// aren't the eye/lookat points or the shutter interval.
type CameraSettings struct {
	ViewWidth, ViewHeight int
	VFov                  float64 // vertical field of view, in degrees
	FocusDist             float64
	Aperture              float64
}

// NewCamera builds a camera looking from origin at lookat. The world
// up reference is fixed at (0,1,0): the horizon always stays level.
func NewCamera(origin, lookat lin.Vec3, cs CameraSettings, time0, time1 float64) *Camera {
	forward := lookat.Sub(origin).Unit()
	right := forward.Cross(lin.NewVec3(0, 1, 0)).Unit()
	up := right.Cross(forward).Unit()

	return &Camera{
		origin:      origin,
		forward:     forward,
		right:       right,
		up:          up,
		invWidth:    1 / float64(cs.ViewWidth),
		invHeight:   1 / float64(cs.ViewHeight),
		aspectRatio: float64(cs.ViewWidth) / float64(cs.ViewHeight),
		fovScale:    math.Tan(cs.VFov * math.Pi / 360),
		focusDist:   cs.FocusDist,
		aperture:    cs.Aperture,
		time0:       time0,
		time1:       time1,
	}
}

// RayToPixel draws one stratified sample through pixel (px, py): it
// jitters within the pixel, applies the lens disk offset for depth of
// field, and samples a shutter time uniformly in [time0, time1] for
// motion blur.
func (c *Camera) RayToPixel(px, py int, rng *rand.Rand) lin.Ray {
	offx, offy := rng.Float64(), rng.Float64()
	ndcX := (float64(px) + offx) * c.invWidth
	ndcY := (float64(py) + offy) * c.invHeight

	camX := (2*ndcX - 1) * c.aspectRatio * c.fovScale
	camY := (1 - 2*ndcY) * c.fovScale

	rd := lin.RandomUnitDisk(rng).Mul(c.aperture / 2)
	offset := c.right.Mul(rd.X).Add(c.up.Mul(rd.Y))

	dir := c.forward.Add(c.right.Mul(camX)).Add(c.up.Mul(camY)).Mul(c.focusDist).Sub(offset)

	time := c.time0 + (c.time1-c.time0)*rng.Float64()
	return lin.NewRay(c.origin.Add(offset), dir, time)
}
