// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestSelectPresetKnownNames(t *testing.T) {
	names := []string{"empty-sky", "ground-plane", "three-sphere", "motion-blur", "bvh-stress", "perlin", "unknown-falls-back"}
	for _, name := range names {
		sc, _, _, err := selectPreset(name, 20, 20, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Errorf("selectPreset(%q): %v", name, err)
		}
		if sc == nil {
			t.Errorf("selectPreset(%q) returned nil scene", name)
		}
	}
}

func TestSelectPresetFixedSizePresetsOverrideDimensions(t *testing.T) {
	_, w, h, err := selectPreset("empty-sky", 400, 225, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("selectPreset(empty-sky): %v", err)
	}
	if w != 2 || h != 2 {
		t.Errorf("empty-sky dims = %dx%d, want 2x2 regardless of requested 400x225", w, h)
	}

	_, w, h, err = selectPreset("ground-plane", 400, 225, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("selectPreset(ground-plane): %v", err)
	}
	if w != 100 || h != 100 {
		t.Errorf("ground-plane dims = %dx%d, want 100x100 regardless of requested 400x225", w, h)
	}

	_, w, h, err = selectPreset("three-sphere", 400, 225, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("selectPreset(three-sphere): %v", err)
	}
	if w != 400 || h != 225 {
		t.Errorf("three-sphere dims = %dx%d, want the requested 400x225", w, h)
	}
}

const sampleConfigYAML = `
camera:
  eye: [0, 1, 3]
  look_at: [0, 0, 0]
  vfov: 40
  focus_dist: 10
  aperture: 0.1
shutter:
  time0: 0
  time1: 0
sky: [0.5, 0.7, 1.0]
width: 32
height: 18
primitives:
  - kind: sphere
    center: [0, -1000, 0]
    radius: 1000
    material:
      kind: lambertian
      albedo:
        kind: solid
        color: [0.5, 0.5, 0.5]
`

func TestLoadConfigSceneUsesDocumentDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(sampleConfigYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	sc, width, height, err := loadConfigScene(path, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("loadConfigScene: %v", err)
	}
	if sc == nil {
		t.Fatal("loadConfigScene returned nil scene")
	}
	if width != 32 || height != 18 {
		t.Errorf("dimensions = %dx%d, want 32x18", width, height)
	}
}

func TestLoadConfigSceneRejectsMissingFile(t *testing.T) {
	if _, _, _, err := loadConfigScene(filepath.Join(t.TempDir(), "missing.yaml"), rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestWritePNGProducesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	fb := make([]byte, 3*4*4)
	for i := range fb {
		fb[i] = byte(i)
	}
	if err := writePNG(path, 4, 4, fb); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty PNG")
	}
}
