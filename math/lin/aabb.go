// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

import "math"

// AABB is an axis-aligned bounding box used to prune ray/primitive
// tests during BVH traversal and to decide split axes while building
// the tree.
type AABB struct {
	Min, Max Vec3
}

// NewAABB returns the box spanning min to max. Callers must ensure
// min.At(i) <= max.At(i) for every axis.
func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// Hit runs the slab test: for each axis, intersect the ray with the
// pair of planes bounding that axis and narrow [tMin, tMax] to the
// overlap. The box is missed as soon as the interval inverts.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for a := 0; a < 3; a++ {
		invD := r.InvDir.At(a)
		t0 := (b.Min.At(a) - r.Origin.At(a)) * invD
		t1 := (b.Max.At(a) - r.Origin.At(a)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Surrounding returns the smallest box containing both a and b, used
// while building a BVH inner node from its two children's boxes.
func Surrounding(a, b AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(a.Min.X, b.Min.X),
			Y: math.Min(a.Min.Y, b.Min.Y),
			Z: math.Min(a.Min.Z, b.Min.Z),
		},
		Max: Vec3{
			X: math.Max(a.Max.X, b.Max.X),
			Y: math.Max(a.Max.Y, b.Max.Y),
			Z: math.Max(a.Max.Z, b.Max.Z),
		},
	}
}
