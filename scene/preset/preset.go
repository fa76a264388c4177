// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package preset builds the scenes used to exercise the renderer
// end-to-end: an empty-sky scene, a single ground sphere, the
// canonical three-sphere arrangement, a motion-blur pair, a dense
// 22x22 grid for BVH stress testing, and a Perlin-textured sphere.
package preset

import (
	"math/rand"

	"pathtracer/material"
	"pathtracer/math/lin"
	"pathtracer/prim"
	"pathtracer/scene"
	"pathtracer/texture"
)

var skyColor = lin.NewVec3(0.5, 0.7, 1.0)

func baseCameraSettings(width, height int, vfov, focusDist, aperture float64) scene.CameraSettings {
	return scene.CameraSettings{ViewWidth: width, ViewHeight: height, VFov: vfov, FocusDist: focusDist, Aperture: aperture}
}

// EmptySky is scene #1: nothing to hit but the background gradient.
// scene.Build rejects a literally empty primitive set (see §7 of the
// error handling design), so this places one sphere far enough behind
// the camera that no ray the 2x2 frustum can generate ever reaches it
// — every ray escapes to the sky exactly as an empty scene would.
func EmptySky(rng *rand.Rand) (*scene.Scene, error) {
	decoy := prim.NewSphere(lin.NewVec3(0, 0, 1e6), 1, material.NewLambertian(texture.NewSolid(lin.Zero)))
	cs := baseCameraSettings(2, 2, 90, 1, 0.0001)
	return scene.Build(lin.Zero, lin.NewVec3(0, 0, -1), cs, scene.Shutter{Time0: 0, Time1: 0}, skyColor, []prim.Primitive{decoy}, rng)
}

// GroundPlane is scene #2: a single huge Lambertian sphere standing in
// for an infinite ground plane.
func GroundPlane(rng *rand.Rand) (*scene.Scene, error) {
	ground := prim.NewSphere(lin.NewVec3(0, -1000, 0), 1000, material.NewLambertian(texture.NewSolid(lin.NewVec3(0.5, 0.5, 0.5))))
	cs := baseCameraSettings(100, 100, 20, lin.NewVec3(0, 1, 3).Sub(lin.Zero).Len(), 0.1)
	return scene.Build(lin.NewVec3(0, 1, 3), lin.Zero, cs, scene.Shutter{Time0: 0, Time1: 0}, skyColor, []prim.Primitive{ground}, rng)
}

// ThreeSphere is scene #3, the book's canonical arrangement: a
// Lambertian ground, a Lambertian center sphere, a hollow dielectric
// on the left (two nested spheres, the inner with a negative radius),
// and a metal sphere on the right.
func ThreeSphere(width, height int, rng *rand.Rand) (*scene.Scene, error) {
	ground := prim.NewSphere(lin.NewVec3(0, -1000, 0), 1000, material.NewLambertian(texture.NewSolid(lin.NewVec3(0.8, 0.8, 0))))
	center := prim.NewSphere(lin.NewVec3(0, 0, -1), 0.5, material.NewLambertian(texture.NewSolid(lin.NewVec3(0.1, 0.2, 0.5))))
	glass := prim.NewSphere(lin.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5))
	hollow := prim.NewSphere(lin.NewVec3(-1, 0, -1), -0.45, material.NewDielectric(1.5))
	metal := prim.NewSphere(lin.NewVec3(1, 0, -1), 0.5, material.NewMetal(texture.NewSolid(lin.NewVec3(0.8, 0.6, 0.2)), 0))

	eye := lin.NewVec3(-2, 2, 1)
	lookAt := lin.NewVec3(0, 0, -1)
	cs := baseCameraSettings(width, height, 20, lookAt.Sub(eye).Len(), 0.05)
	prims := []prim.Primitive{ground, center, glass, hollow, metal}
	return scene.Build(eye, lookAt, cs, scene.Shutter{Time0: 0, Time1: 0}, skyColor, prims, rng)
}

// MotionBlur is scene #4: a single Lambertian sphere sweeping from
// (0,0,-1) to (0.5,0,-1) over the shutter, alongside a ground plane so
// the background outside the smear has something to match the
// empty-scene sky values against.
func MotionBlur(width, height int, rng *rand.Rand) (*scene.Scene, error) {
	ground := prim.NewSphere(lin.NewVec3(0, -1000, 0), 1000, material.NewLambertian(texture.NewSolid(lin.NewVec3(0.5, 0.5, 0.5))))
	moving := prim.NewMovingSphere(lin.NewVec3(0, 0, -1), lin.NewVec3(0.5, 0, -1), 0, 1, 0.5, material.NewLambertian(texture.NewSolid(lin.NewVec3(0.1, 0.2, 0.5))))

	eye := lin.NewVec3(-2, 2, 1)
	lookAt := lin.NewVec3(0, 0, -1)
	cs := baseCameraSettings(width, height, 20, lookAt.Sub(eye).Len(), 0.05)
	return scene.Build(eye, lookAt, cs, scene.Shutter{Time0: 0, Time1: 1}, skyColor, []prim.Primitive{ground, moving}, rng)
}

// BVHStress is scene #5: the book's 22x22 grid of small random spheres
// (484 candidate positions, minus any too close to the big metal
// sphere) around the canonical three big ones and a ground sphere,
// enough primitives to force multiple BVH levels.
func BVHStress(width, height int, rng *rand.Rand) (*scene.Scene, error) {
	ground := prim.NewSphere(lin.NewVec3(0, -1000, 0), 1000, material.NewLambertian(texture.NewSolid(lin.NewVec3(0.5, 0.5, 0.5))))
	prims := []prim.Primitive{ground}

	avoid := lin.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := lin.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(avoid).Len() <= 0.9 {
				continue
			}
			choice := rng.Float64()
			var mat material.Material
			switch {
			case choice < 0.8:
				albedo := lin.RandomVec3(rng, 0, 1).MulV(lin.RandomVec3(rng, 0, 1))
				mat = material.NewLambertian(texture.NewSolid(albedo))
			case choice < 0.95:
				albedo := lin.RandomVec3(rng, 0.5, 1)
				mat = material.NewMetal(texture.NewSolid(albedo), rng.Float64()/2)
			default:
				mat = material.NewDielectric(1.5)
			}
			prims = append(prims, prim.NewSphere(center, 0.2, mat))
		}
	}

	glass := prim.NewSphere(lin.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5))
	diffuse := prim.NewSphere(lin.NewVec3(-4, 1, 0), 1, material.NewLambertian(texture.NewSolid(lin.NewVec3(0.4, 0.2, 0.1))))
	metal := prim.NewSphere(lin.NewVec3(4, 1, 0), 1, material.NewMetal(texture.NewSolid(lin.NewVec3(0.7, 0.6, 0.5)), 0))
	prims = append(prims, glass, diffuse, metal)

	eye := lin.NewVec3(13, 2, 3)
	lookAt := lin.Zero
	cs := baseCameraSettings(width, height, 20, 10, 0.1)
	return scene.Build(eye, lookAt, cs, scene.Shutter{Time0: 0, Time1: 0}, skyColor, prims, rng)
}

// PerlinSphere is scene #6: a large sphere textured with Perlin
// turbulence, and a ground plane sharing the same texture.
func PerlinSphere(width, height int, rng *rand.Rand) (*scene.Scene, error) {
	noise := texture.NewPerlin(rng, 4)
	ground := prim.NewSphere(lin.NewVec3(0, -1000, 0), 1000, material.NewLambertian(noise))
	ball := prim.NewSphere(lin.NewVec3(0, 2, 0), 2, material.NewLambertian(noise))

	eye := lin.NewVec3(13, 2, 3)
	lookAt := lin.Zero
	cs := baseCameraSettings(width, height, 20, 10, 0.0001)
	return scene.Build(eye, lookAt, cs, scene.Shutter{Time0: 0, Time1: 0}, skyColor, []prim.Primitive{ground, ball}, rng)
}
