// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package config

import (
	"math/rand"

	"pathtracer/prim"
	"pathtracer/scene"
)

// BuildScene decodes and resolves a scene YAML document into a fully
// built scene.Scene, using rng for BVH axis selection and Perlin
// table generation.
func BuildScene(data []byte, rng *rand.Rand) (*scene.Scene, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return BuildSceneFromDocument(doc, rng)
}

// BuildSceneFromDocument resolves an already-decoded Document into a
// fully built scene.Scene, for callers that also need the document's
// own fields (e.g. its width/height) without decoding the YAML twice.
func BuildSceneFromDocument(doc Document, rng *rand.Rand) (*scene.Scene, error) {
	prims := make([]prim.Primitive, 0, len(doc.Primitives))
	for i := range doc.Primitives {
		p, err := doc.Primitives[i].Build(rng)
		if err != nil {
			return nil, err
		}
		prims = append(prims, p)
	}

	cs := scene.CameraSettings{
		ViewWidth:  doc.Width,
		ViewHeight: doc.Height,
		VFov:       doc.Camera.VFov,
		FocusDist:  doc.Camera.FocusDist,
		Aperture:   doc.Camera.Aperture,
	}
	shutter := scene.Shutter{Time0: doc.Shutter.Time0, Time1: doc.Shutter.Time1}

	return scene.Build(doc.Camera.Eye.ToVec3(), doc.Camera.LookAt.ToVec3(), cs, shutter, doc.Sky.ToVec3(), prims, rng)
}
