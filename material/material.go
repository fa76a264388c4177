// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package material implements the three surface scatter laws the
// renderer's bounce loop dispatches on: diffuse (Lambertian),
// specular with roughness (Metal), and refractive (Dielectric). Each
// is a small, closed, concrete type behind the Material interface —
// there is no user-extensible material plugin mechanism.
package material

import (
	"math"
	"math/rand"

	"pathtracer/math/lin"
	"pathtracer/texture"
)

// Material scatters an incoming ray off a surface hit. r is the
// incoming ray, overwritten in place (via SetDir, which refreshes
// r.InvDir) with the scattered ray on a non-absorbed result. n is
// the outward unit surface normal; u, v, p are the hit's texture
// coordinates and world-space position. The bool return reports
// whether the ray was absorbed (scattered rays with this true carry
// no further light).
type Material interface {
	Scatter(r *lin.Ray, n lin.Vec3, u, v float64, p lin.Vec3, rng *rand.Rand) (absorbed bool, attenuation lin.Vec3)
}

// Lambertian is a perfectly diffuse surface: it scatters around the
// normal with a cosine-weighted distribution, by offsetting the normal
// with a random unit vector rather than taking a uniform hemisphere
// sample.
type Lambertian struct {
	Albedo texture.Texture
}

// NewLambertian returns a diffuse material with the given albedo texture.
func NewLambertian(albedo texture.Texture) *Lambertian { return &Lambertian{Albedo: albedo} }

// Scatter implements Material.
func (m *Lambertian) Scatter(r *lin.Ray, n lin.Vec3, u, v float64, p lin.Vec3, rng *rand.Rand) (bool, lin.Vec3) {
	r.SetDir(lambertianDirection(n, lin.RandomUnitVector(rng)))
	return false, m.Albedo.Value(u, v, p)
}

// lambertianDirection offsets the normal by a random unit vector,
// substituting the normal itself when the offset nearly cancels it —
// the degenerate case that would otherwise scatter a near-zero ray.
func lambertianDirection(n, offset lin.Vec3) lin.Vec3 {
	dir := n.Add(offset)
	if dir.NearZero() {
		return n
	}
	return dir
}

// Metal is a specular reflector perturbed by an isotropic fuzz radius.
// A ray whose fuzzed reflection dips below the surface is absorbed.
type Metal struct {
	Albedo texture.Texture
	Fuzz   float64 // clamped to [0, 1] at construction
}

// NewMetal returns a reflective material. fuzz is clamped to [0, 1].
func NewMetal(albedo texture.Texture, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: lin.Clamp(fuzz, 0, 1)}
}

// Scatter implements Material.
func (m *Metal) Scatter(r *lin.Ray, n lin.Vec3, u, v float64, p lin.Vec3, rng *rand.Rand) (bool, lin.Vec3) {
	d := r.Dir.Unit()
	reflected := reflect(d, n)
	scattered := reflected.Add(lin.RandomUnitSphere(rng).Mul(m.Fuzz))
	r.SetDir(scattered)
	absorbed := scattered.Dot(n) < 0
	return absorbed, m.Albedo.Value(u, v, p)
}

func reflect(d, n lin.Vec3) lin.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

// Dielectric is a transparent refractive surface (glass, water) that
// never absorbs; its attenuation is always white. A negative-radius
// Dielectric sphere nested inside a positive-radius one produces a
// hollow bubble.
type Dielectric struct {
	IR float64 // index of refraction, > 0
}

// NewDielectric returns a refractive material with the given index of
// refraction.
func NewDielectric(ir float64) *Dielectric { return &Dielectric{IR: ir} }

// Scatter implements Material.
func (m *Dielectric) Scatter(r *lin.Ray, n lin.Vec3, u, v float64, p lin.Vec3, rng *rand.Rand) (bool, lin.Vec3) {
	d := r.Dir.Unit()

	cosThetaI := lin.Clamp(d.Dot(n), -1, 1)
	eta := m.IR
	normal := n
	if cosThetaI < 0 {
		// entering the medium
		cosThetaI = -cosThetaI
		eta = 1 / eta
	} else {
		// exiting the medium
		normal = n.Neg()
	}

	sinThetaTSq := eta * eta * (1 - cosThetaI*cosThetaI)
	cosThetaT := math.Sqrt(math.Max(0, 1-sinThetaTSq))

	var scattered lin.Vec3
	if sinThetaTSq > 1 || schlick(eta, cosThetaI) > rng.Float64() {
		scattered = reflect(d, normal)
	} else {
		scattered = refract(d, normal, eta, cosThetaI, cosThetaT)
	}
	r.SetDir(scattered)
	return false, lin.White
}

// refract implements Snell's law given the already-resolved angle
// cosines, avoiding a second trip through the surface normal sign
// logic Scatter already worked out.
func refract(d, n lin.Vec3, eta, cosThetaI, cosThetaT float64) lin.Vec3 {
	return d.Mul(eta).Add(n.Mul(eta*cosThetaI - cosThetaT))
}

// schlick is the Schlick approximation to Fresnel reflectance.
func schlick(eta, cosTheta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
