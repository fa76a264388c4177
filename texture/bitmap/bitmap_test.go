// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func checkerboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})
	return img
}

func TestDecodePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checkerboard()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if got.Width != 2 || got.Height != 2 {
		t.Fatalf("dims = %dx%d", got.Width, got.Height)
	}
	if got.RGB[0] != 255 || got.RGB[1] != 0 || got.RGB[2] != 0 {
		t.Errorf("top-left texel = %v, want red", got.RGB[0:3])
	}
}

func TestDecodeBMPRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, checkerboard()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeBMP(&buf)
	if err != nil {
		t.Fatalf("DecodeBMP: %v", err)
	}
	if got.Width != 2 || got.Height != 2 {
		t.Fatalf("dims = %dx%d", got.Width, got.Height)
	}
	if len(got.RGB) != 12 {
		t.Fatalf("len(RGB) = %d, want 12", len(got.RGB))
	}
}

func TestDecodePNGRejectsGarbage(t *testing.T) {
	if _, err := DecodePNG(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Error("expected an error decoding garbage bytes")
	}
}
