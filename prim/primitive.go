// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package prim implements the scene's analytic geometry — spheres and
// moving spheres — and the bounding volume hierarchy built over them.
// Primitive is a small closed interface, not an open registry: the
// renderer never needs to add primitive kinds at runtime.
package prim

import (
	"math"

	"pathtracer/material"
	"pathtracer/math/lin"
)

// HitRecord is the mutable traversal record threaded through a BVH
// walk. TMin is the shadow-acne bias and is never touched by a
// primitive's Hit; TMax narrows to the closest accepted root so far,
// and Prim records which primitive produced it. It lives on the trace
// stack and is reset once per bounce — never heap-allocated.
type HitRecord struct {
	TMin, TMax float64
	Prim       Primitive
}

// NewHitRecord returns a record initialized to the spec's defaults:
// a small positive TMin to avoid shadow acne, TMax at infinity, and no
// hit yet.
func NewHitRecord() HitRecord {
	return HitRecord{TMin: 0.001, TMax: math.Inf(1), Prim: nil}
}

// Primitive is a piece of scene geometry: it can test itself against a
// ray (tightening rec on a closer hit), report a bounding box over a
// shutter interval, and answer the normal/UV/material queries the
// shading loop needs once the closest hit across the whole scene is
// known.
type Primitive interface {
	// Hit tests r against the primitive. If it intersects within
	// [rec.TMin, rec.TMax], rec.TMax and rec.Prim are updated and true
	// is returned; otherwise rec is left untouched and false is
	// returned.
	Hit(r lin.Ray, rec *HitRecord) bool

	// BoundingBox returns the AABB enclosing the primitive over the
	// shutter interval [t0, t1].
	BoundingBox(t0, t1 float64) lin.AABB

	// NormalAt returns the outward unit normal at world point p, given
	// the ray time the hit occurred at (only moving spheres use time).
	NormalAt(p lin.Vec3, time float64) lin.Vec3

	// UVAt returns the (u, v) texture coordinates of world point p.
	UVAt(p lin.Vec3, time float64) (u, v float64)

	// Material returns the primitive's surface material.
	Material() material.Material
}
