// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package preset

import (
	"math/rand"
	"testing"
)

func TestAllPresetsBuild(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := EmptySky(rng); err != nil {
		t.Errorf("EmptySky: %v", err)
	}
	if _, err := GroundPlane(rng); err != nil {
		t.Errorf("GroundPlane: %v", err)
	}
	if _, err := ThreeSphere(100, 100, rng); err != nil {
		t.Errorf("ThreeSphere: %v", err)
	}
	if _, err := MotionBlur(100, 100, rng); err != nil {
		t.Errorf("MotionBlur: %v", err)
	}
	if _, err := BVHStress(100, 100, rng); err != nil {
		t.Errorf("BVHStress: %v", err)
	}
	if _, err := PerlinSphere(100, 100, rng); err != nil {
		t.Errorf("PerlinSphere: %v", err)
	}
}
