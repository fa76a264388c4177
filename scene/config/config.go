// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package config decodes a YAML scene description into the plain
// values scene.Build needs, plus the framebuffer width and height; it
// carries no renderer Options (samples, bounces). It is the only
// place a scene's numbers are ever parsed from text.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pathtracer/material"
	"pathtracer/math/lin"
	"pathtracer/prim"
	"pathtracer/texture"
	"pathtracer/texture/bitmap"
)

// Vec3 is the YAML-friendly [x, y, z] form of lin.Vec3.
type Vec3 [3]float64

// ToVec3 converts the decoded triple to a lin.Vec3.
func (v Vec3) ToVec3() lin.Vec3 { return lin.NewVec3(v[0], v[1], v[2]) }

// Camera mirrors scene.CameraSettings plus the eye/lookat points a
// scene.Build call also needs.
type Camera struct {
	Eye       Vec3    `yaml:"eye"`
	LookAt    Vec3    `yaml:"look_at"`
	VFov      float64 `yaml:"vfov"`
	FocusDist float64 `yaml:"focus_dist"`
	Aperture  float64 `yaml:"aperture"`
}

// Shutter mirrors scene.Shutter.
type Shutter struct {
	Time0 float64 `yaml:"time0"`
	Time1 float64 `yaml:"time1"`
}

// Texture is a tagged-union YAML node for the four texture kinds.
// Only the fields belonging to Kind are read (Odd and Even for a
// checker, Color for solid, Scale for perlin, Path for bitmap).
type Texture struct {
	Kind  string   `yaml:"kind"` // "solid", "checker", "perlin", "bitmap"
	Color Vec3     `yaml:"color,omitempty"`
	Odd   *Texture `yaml:"odd,omitempty"`
	Even  *Texture `yaml:"even,omitempty"`
	Scale float64  `yaml:"scale,omitempty"`
	Path  string   `yaml:"path,omitempty"`
}

// Build resolves a Texture node into a texture.Texture, recursing into
// Checker's children. rng supplies the Perlin noise tables.
func (t *Texture) Build(rng *rand.Rand) (texture.Texture, error) {
	switch t.Kind {
	case "solid":
		return texture.NewSolid(t.Color.ToVec3()), nil
	case "checker":
		if t.Odd == nil || t.Even == nil {
			return nil, fmt.Errorf("config: checker texture missing odd/even child")
		}
		odd, err := t.Odd.Build(rng)
		if err != nil {
			return nil, err
		}
		even, err := t.Even.Build(rng)
		if err != nil {
			return nil, err
		}
		return texture.NewChecker(odd, even), nil
	case "perlin":
		return texture.NewPerlin(rng, t.Scale), nil
	case "bitmap":
		return t.buildBitmap()
	default:
		return nil, fmt.Errorf("config: unknown texture kind %q", t.Kind)
	}
}

// buildBitmap decodes the PNG or BMP file at t.Path (chosen by
// extension) into a texture.Image.
func (t *Texture) buildBitmap() (texture.Texture, error) {
	if t.Path == "" {
		return nil, fmt.Errorf("config: bitmap texture missing path")
	}
	f, err := os.Open(t.Path)
	if err != nil {
		return nil, fmt.Errorf("config: bitmap texture: %w", err)
	}
	defer f.Close()

	var decoded bitmap.Decoded
	switch ext := strings.ToLower(filepath.Ext(t.Path)); ext {
	case ".png":
		decoded, err = bitmap.DecodePNG(f)
	case ".bmp":
		decoded, err = bitmap.DecodeBMP(f)
	default:
		return nil, fmt.Errorf("config: bitmap texture: unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: bitmap texture: %w", err)
	}
	return texture.NewImage(decoded.Width, decoded.Height, decoded.RGB), nil
}

// Material is a tagged-union YAML node for the three material kinds.
type Material struct {
	Kind   string  `yaml:"kind"` // "lambertian", "metal", "dielectric"
	Albedo Texture `yaml:"albedo,omitempty"`
	Fuzz   float64 `yaml:"fuzz,omitempty"`
	IR     float64 `yaml:"ir,omitempty"`
}

// Build resolves a Material node into a material.Material.
func (m *Material) Build(rng *rand.Rand) (material.Material, error) {
	switch m.Kind {
	case "lambertian":
		alb, err := m.Albedo.Build(rng)
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(alb), nil
	case "metal":
		alb, err := m.Albedo.Build(rng)
		if err != nil {
			return nil, err
		}
		return material.NewMetal(alb, m.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(m.IR), nil
	default:
		return nil, fmt.Errorf("config: unknown material kind %q", m.Kind)
	}
}

// Primitive is a tagged-union YAML node for sphere/moving-sphere.
type Primitive struct {
	Kind     string   `yaml:"kind"` // "sphere", "moving_sphere"
	Center   Vec3     `yaml:"center,omitempty"`
	Center0  Vec3     `yaml:"center0,omitempty"`
	Center1  Vec3     `yaml:"center1,omitempty"`
	Time0    float64  `yaml:"time0,omitempty"`
	Time1    float64  `yaml:"time1,omitempty"`
	Radius   float64  `yaml:"radius"`
	Material Material `yaml:"material"`
}

// Build resolves a Primitive node into a prim.Primitive.
func (p *Primitive) Build(rng *rand.Rand) (prim.Primitive, error) {
	mat, err := p.Material.Build(rng)
	if err != nil {
		return nil, err
	}
	switch p.Kind {
	case "sphere":
		return prim.NewSphere(p.Center.ToVec3(), p.Radius, mat), nil
	case "moving_sphere":
		if p.Time1 == p.Time0 {
			return nil, fmt.Errorf("config: moving_sphere time1 must differ from time0, got %v", p.Time0)
		}
		return prim.NewMovingSphere(p.Center0.ToVec3(), p.Center1.ToVec3(), p.Time0, p.Time1, p.Radius, mat), nil
	default:
		return nil, fmt.Errorf("config: unknown primitive kind %q", p.Kind)
	}
}

// Document is the top-level shape of a scene YAML file.
type Document struct {
	Camera     Camera      `yaml:"camera"`
	Shutter    Shutter     `yaml:"shutter"`
	Sky        Vec3        `yaml:"sky"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Primitives []Primitive `yaml:"primitives"`
}

// Decode parses a scene YAML document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("config: decode scene: %w", err)
	}
	return doc, nil
}
