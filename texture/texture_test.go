// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"math/rand"
	"testing"

	"pathtracer/math/lin"
)

func TestSolidValueConstant(t *testing.T) {
	s := NewSolid(lin.NewVec3(0.1, 0.2, 0.3))
	got := s.Value(0, 0, lin.NewVec3(5, 5, 5))
	if got != (lin.Vec3{X: 0.1, Y: 0.2, Z: 0.3}) {
		t.Errorf("Solid.Value = %v", got)
	}
}

func TestCheckerAlternates(t *testing.T) {
	odd := NewSolid(lin.NewVec3(0, 0, 0))
	even := NewSolid(lin.NewVec3(1, 1, 1))
	c := NewChecker(odd, even)

	// sin(10*0.05)*sin(10*0.05)*sin(10*0.05) > 0 -> even branch.
	got := c.Value(0, 0, lin.NewVec3(0.05, 0.05, 0.05))
	if got != (lin.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Checker near origin = %v, want even color", got)
	}
}

func TestPerlinDeterministicForSeed(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(7)), 4)
	b := NewPerlin(rand.New(rand.NewSource(7)), 4)
	p := lin.NewVec3(1.3, -2.7, 0.4)
	va := a.Value(0, 0, p)
	vb := b.Value(0, 0, p)
	if va != vb {
		t.Errorf("same seed produced different Perlin values: %v vs %v", va, vb)
	}
}

func TestPerlinValueInUnitRange(t *testing.T) {
	pt := NewPerlin(rand.New(rand.NewSource(1)), 4)
	for i := 0; i < 200; i++ {
		p := lin.NewVec3(float64(i)*0.13, float64(i)*0.07, float64(i)*0.21)
		v := pt.Value(0, 0, p)
		if v.X < 0 || v.X > 1 {
			t.Fatalf("Perlin color component out of [0,1]: %v", v)
		}
	}
}

func TestTurbulenceBounded(t *testing.T) {
	n := newPerlinNoise(rand.New(rand.NewSource(2)))
	for i := 0; i < 200; i++ {
		p := lin.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*0.53)
		tb := n.turbulence(p, 7)
		if tb < 0 || tb >= 2 {
			t.Fatalf("turbulence out of bounds: %v", tb)
		}
	}
}

func TestImageNearestLookup(t *testing.T) {
	// 2x1 image: left texel red, right texel blue.
	rgb := []byte{255, 0, 0, 0, 0, 255}
	img := NewImage(2, 1, rgb)

	left := img.Value(0.1, 0.5, lin.Zero)
	if left.X != 1 || left.Y != 0 || left.Z != 0 {
		t.Errorf("left texel = %v, want red", left)
	}
	right := img.Value(0.9, 0.5, lin.Zero)
	if right.X != 0 || right.Z != 1 {
		t.Errorf("right texel = %v, want blue", right)
	}
}

func TestImageClampsOutOfRangeUV(t *testing.T) {
	rgb := []byte{10, 20, 30}
	img := NewImage(1, 1, rgb)
	got := img.Value(-5, 5, lin.Zero)
	want := lin.Vec3{X: 10.0 / 255, Y: 20.0 / 255, Z: 30.0 / 255}
	if got != want {
		t.Errorf("out-of-range UV = %v, want %v", got, want)
	}
}
