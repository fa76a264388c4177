// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package texture

import (
	"math"
	"math/rand"

	"pathtracer/math/lin"
)

const perlinPoints = 256

// perlinNoise holds the fixed tables classic 3D Perlin noise is built
// from: one table of random unit vectors, indexed by three permuted
// coordinates (one permutation table per axis), generated once at
// construction from a seeded PRNG and never touched again.
type perlinNoise struct {
	vectors [perlinPoints]lin.Vec3
	permX   [perlinPoints]int
	permY   [perlinPoints]int
	permZ   [perlinPoints]int
}

// newPerlinNoise builds the permutation and gradient tables using rng.
func newPerlinNoise(rng *rand.Rand) *perlinNoise {
	n := &perlinNoise{}
	for i := range n.vectors {
		n.vectors[i] = lin.RandomVec3(rng, -1, 1).Unit()
	}
	perlinPermute(rng, &n.permX)
	perlinPermute(rng, &n.permY)
	perlinPermute(rng, &n.permZ)
	return n
}

// perlinPermute fills p with 0..perlinPoints-1 in a random order,
// generated by a Fisher-Yates-style reorder: repeatedly pick a
// remaining index and move it into the next output slot.
func perlinPermute(rng *rand.Rand, p *[perlinPoints]int) {
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		target := rng.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
}

// noise returns the raw Perlin noise value at p, in roughly [-1, 1],
// using trilinear interpolation of the 8 surrounding lattice points'
// gradient vectors (the classic "Perlin improved" smoothstep-weighted
// dot product, without the improved-noise fade curve).
func (n *perlinNoise) noise(p lin.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var corners [2][2][2]lin.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := n.permX[(i+di)&255] ^ n.permY[(j+dj)&255] ^ n.permZ[(k+dk)&255]
				corners[di][dj][dk] = n.vectors[idx]
			}
		}
	}
	return trilinearInterp(corners, u, v, w)
}

func trilinearInterp(c [2][2][2]lin.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := lin.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turbulence sums successively halved, successively doubled-frequency
// noise octaves — fractal Brownian motion over the base noise
// function. |turbulence(p, depth)| is bounded by the sum of the
// geometric series 2^-k for k in [0, depth), which is strictly less
// than 2 for any depth.
func (n *perlinNoise) turbulence(p lin.Vec3, depth int) float64 {
	var accum float64
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * n.noise(temp)
		weight *= 0.5
		temp = temp.Mul(2)
	}
	return math.Abs(accum)
}
