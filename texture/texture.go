// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package texture provides the color lookups a material samples at a
// hit point: solid colors, a 3D checker pattern, Perlin-noise
// turbulence, and decoded bitmaps. A Texture is a small closed set of
// variants dispatched through an interface rather than an open plugin
// registry — Checker is the only variant that nests children, so the
// set stays a tree of known shapes.
package texture

import (
	"math"
	"math/rand"

	"pathtracer/math/lin"
)

// Texture returns the color visible at a hit point, given its UV
// coordinates and the point itself (Perlin and Checker both sample
// world-space position rather than UV).
type Texture interface {
	Value(u, v float64, p lin.Vec3) lin.Vec3
}

// Solid is a texture returning the same color everywhere.
type Solid struct {
	Color lin.Vec3
}

// NewSolid returns a Solid texture of the given color.
func NewSolid(c lin.Vec3) *Solid { return &Solid{Color: c} }

// Value implements Texture.
func (s *Solid) Value(u, v float64, p lin.Vec3) lin.Vec3 { return s.Color }

// Checker alternates between two child textures based on the sign of
// a 3D sine pattern, independent of surface UV — it gives a sphere a
// checkerboard that looks right from any angle.
type Checker struct {
	Odd, Even Texture
}

// NewChecker returns a checker pattern between two child textures.
func NewChecker(odd, even Texture) *Checker { return &Checker{Odd: odd, Even: even} }

// Value implements Texture.
func (c *Checker) Value(u, v float64, p lin.Vec3) lin.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// Perlin is a turbulent-noise texture: a marbled gray-scale pattern
// driven by Perlin turbulence along the sample point.
type Perlin struct {
	noise *perlinNoise
	Scale float64
}

// NewPerlin returns a Perlin texture seeded from rng, at the given
// world-space scale.
func NewPerlin(rng *rand.Rand, scale float64) *Perlin {
	return &Perlin{noise: newPerlinNoise(rng), Scale: scale}
}

// Value implements Texture.
func (pt *Perlin) Value(u, v float64, p lin.Vec3) lin.Vec3 {
	c := 0.5 * (1 + math.Sin(pt.Scale*p.Z+10*pt.noise.turbulence(p, 7)))
	return lin.Vec3{X: c, Y: c, Z: c}
}

// Image is a texture backed by a decoded RGB bitmap. It looks up the
// nearest texel for a UV coordinate; no bilinear filtering.
type Image struct {
	Width, Height int
	RGB           []byte // width*height*3, row-major, top row first
}

// NewImage returns an Image texture over the given decoded bitmap.
// Width and height must be positive and RGB must hold exactly
// width*height*3 bytes; texture/bitmap's DecodePNG and DecodeBMP
// produce bitmaps that satisfy this.
func NewImage(width, height int, rgb []byte) *Image {
	return &Image{Width: width, Height: height, RGB: rgb}
}

// Value implements Texture. v is flipped (image rows run top-down,
// texture v runs bottom-up) before the nearest-neighbor lookup.
func (img *Image) Value(u, v float64, p lin.Vec3) lin.Vec3 {
	u = lin.Clamp(u, 0, 1)
	v = 1 - lin.Clamp(v, 0, 1)

	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}

	const colorScale = 1.0 / 255.0
	off := 3 * (j*img.Width + i)
	return lin.Vec3{
		X: float64(img.RGB[off]) * colorScale,
		Y: float64(img.RGB[off+1]) * colorScale,
		Z: float64(img.RGB[off+2]) * colorScale,
	}
}
