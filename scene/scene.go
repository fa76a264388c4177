// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene owns the camera, the flattened BVH, and the
// background gradient that together make up a fully built scene —
// the renderer's only input. Everything a Scene holds is immutable
// once Build returns; only the framebuffer changes during rendering.
package scene

import (
	"fmt"
	"math"
	"math/rand"

	"pathtracer/math/lin"
	"pathtracer/prim"
)

// Shutter is the time interval [Time0, Time1] per-ray sample times are
// drawn from for motion blur, and the interval a moving primitive's
// bounding box is computed over.
type Shutter struct {
	Time0, Time1 float64
}

// Scene aggregates everything the renderer reads: the camera, the
// linear BVH over the scene's primitives, and the skybox color.
type Scene struct {
	Camera *Camera
	BVH    *prim.LinearBVH
	Sky    lin.Vec3
}

// SkyColor returns the background radiance for a ray escaping the
// scene in direction d: a gradient from white straight down to the
// scene's skybox color straight up, by the vertical component of the
// normalized direction (the horizon gets the midpoint of the two).
func (s *Scene) SkyColor(d lin.Vec3) lin.Vec3 {
	t := 0.5 * (d.Unit().Y + 1)
	return lin.White.Lerp(s.Sky, t)
}

// Build validates a scene configuration and constructs it: the camera
// basis, the BVH over primitives, and the sky gradient. Every
// precondition is checked here so the render path itself never needs
// to handle a configuration error.
func Build(eye, lookat lin.Vec3, cs CameraSettings, shutter Shutter, sky lin.Vec3, primitives []prim.Primitive, rng *rand.Rand) (*Scene, error) {
	if len(primitives) == 0 {
		return nil, fmt.Errorf("scene: build: empty primitive set")
	}
	if !finite(eye) || !finite(lookat) {
		return nil, fmt.Errorf("scene: build: non-finite camera eye/lookat")
	}
	if eye == lookat {
		return nil, fmt.Errorf("scene: build: camera eye and lookat must differ")
	}
	if forward := lookat.Sub(eye).Unit(); lin.AeqZ(forward.Cross(lin.NewVec3(0, 1, 0)).LenSqr()) {
		return nil, fmt.Errorf("scene: build: camera look direction parallel to world up")
	}
	if !isFinite(cs.VFov) || !isFinite(cs.FocusDist) || !isFinite(cs.Aperture) {
		return nil, fmt.Errorf("scene: build: non-finite camera parameter")
	}
	if cs.Aperture <= 0 {
		return nil, fmt.Errorf("scene: build: aperture must be > 0, got %v", cs.Aperture)
	}
	if cs.FocusDist <= 0 {
		return nil, fmt.Errorf("scene: build: focus_dist must be > 0, got %v", cs.FocusDist)
	}
	if cs.ViewWidth <= 0 || cs.ViewHeight <= 0 {
		return nil, fmt.Errorf("scene: build: view dimensions must be positive, got %dx%d", cs.ViewWidth, cs.ViewHeight)
	}
	if !isFinite(shutter.Time0) || !isFinite(shutter.Time1) {
		return nil, fmt.Errorf("scene: build: non-finite shutter interval")
	}
	if shutter.Time1 < shutter.Time0 {
		return nil, fmt.Errorf("scene: build: shutter time1 < time0")
	}
	for i, p := range primitives {
		if ms, ok := p.(*prim.MovingSphere); ok && ms.Time1 == ms.Time0 {
			return nil, fmt.Errorf("scene: build: primitive %d: moving sphere time1 must differ from time0, got %v", i, ms.Time0)
		}
	}

	cam := NewCamera(eye, lookat, cs, shutter.Time0, shutter.Time1)
	bvh := prim.BuildLinearBVH(rng, primitives, shutter.Time0, shutter.Time1)

	return &Scene{Camera: cam, BVH: bvh, Sky: sky}, nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func finite(v lin.Vec3) bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }
