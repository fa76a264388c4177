// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package bitmap decodes PNG and BMP files into the raw RGB byte
// arrays texture.Image consumes. Decoding lives firmly outside the
// render core: the spec treats image I/O as an external collaborator,
// consumed only as a decoded width x height x 3 array.
package bitmap

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// Decoded holds an RGB bitmap ready to back a texture.Image.
type Decoded struct {
	Width, Height int
	RGB           []byte
}

// DecodePNG reads a PNG image and converts it to 8-bit RGB.
func DecodePNG(r io.Reader) (Decoded, error) {
	img, err := png.Decode(r)
	if err != nil {
		return Decoded{}, fmt.Errorf("bitmap: decode png: %w", err)
	}
	return toRGB(img)
}

// DecodeBMP reads a BMP image and converts it to 8-bit RGB.
func DecodeBMP(r io.Reader) (Decoded, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return Decoded{}, fmt.Errorf("bitmap: decode bmp: %w", err)
	}
	return toRGB(img)
}

// toRGB flattens any image.Image into row-major, top-row-first RGB
// bytes, dropping alpha. A zero-dimension image is rejected with an
// error, so it never reaches a texture.
func toRGB(img image.Image) (Decoded, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Decoded{}, fmt.Errorf("bitmap: zero-dimension image (%dx%d)", w, h)
	}

	out := make([]byte, w*h*3)
	off := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			out[off] = byte(r >> 8)
			out[off+1] = byte(g >> 8)
			out[off+2] = byte(bl >> 8)
			off += 3
		}
	}
	return Decoded{Width: w, Height: h, RGB: out}, nil
}
