// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package prim

import (
	"math/rand"
	"sort"

	"pathtracer/math/lin"
)

// bvhTree is the construction-time shape of the bounding volume
// hierarchy: a binary tree whose leaves hold one primitive and whose
// inner nodes hold two children plus their surrounding box. It is
// only ever walked once, during flatten — production traversal always
// runs over the LinearBVH instead.
type bvhTree struct {
	leaf        Primitive // non-nil at a leaf
	left, right *bvhTree  // non-nil at an inner node
	box         lin.AABB
}

// buildBVH builds a tree over objs by recursively splitting on a
// randomly chosen axis at the median of each half's bounding-box
// minimum. The random axis choice is acceptable given the small scene
// sizes this renderer targets; a deterministic surface-area heuristic
// is not required for correctness, only for traversal speed at a
// scale this package doesn't target. boxes holds each entry in objs'
// precomputed bounding box, computed once by the caller and threaded
// through the recursion so no primitive's box is ever computed twice.
func buildBVH(rng *rand.Rand, objs []Primitive, boxes []lin.AABB) *bvhTree {
	if len(objs) == 1 {
		return &bvhTree{leaf: objs[0], box: boxes[0]}
	}

	axis := rng.Intn(3)
	sort.Sort(&byAxisMin{objs: objs, boxes: boxes, axis: axis})

	mid := len(objs) / 2
	left := buildBVH(rng, objs[:mid], boxes[:mid])
	right := buildBVH(rng, objs[mid:], boxes[mid:])
	return &bvhTree{left: left, right: right, box: lin.Surrounding(left.box, right.box)}
}

// byAxisMin sorts a slice of primitives by their precomputed bounding
// box's minimum on one axis, keeping each box paired with its
// primitive so buildBVH's median split never recomputes a box it
// already has.
type byAxisMin struct {
	objs  []Primitive
	boxes []lin.AABB
	axis  int
}

func (b *byAxisMin) Len() int      { return len(b.objs) }
func (b *byAxisMin) Swap(i, j int) { b.objs[i], b.objs[j] = b.objs[j], b.objs[i]; b.boxes[i], b.boxes[j] = b.boxes[j], b.boxes[i] }
func (b *byAxisMin) Less(i, j int) bool {
	return b.boxes[i].Min.At(b.axis) < b.boxes[j].Min.At(b.axis)
}

// size returns the number of entries the tree flattens to: one per
// leaf, one per inner node.
func (n *bvhTree) size() int {
	if n.leaf != nil {
		return 1
	}
	return 1 + n.left.size() + n.right.size()
}

// linearEntry is one slot of a flattened BVH: either an inner node
// (Prim is nil, Box/Skip are meaningful) or a leaf (Prim is set).
type linearEntry struct {
	Box  lin.AABB
	Skip int // entries between this inner node and the end of its right subtree
	Prim Primitive
}

// LinearBVH is the cache-friendly flattened traversal layout built
// once from a bvhTree via flatten. It is read-only and safe to share
// across every rendering worker.
type LinearBVH struct {
	entries []linearEntry
}

// BuildLinearBVH constructs a BVH over objs and immediately flattens
// it. objs must be non-empty. t0, t1 bound the shutter interval used
// only to compute bounding boxes — moving primitives may fall outside
// [t0, t1] at render time, but their box still encloses every
// position the shutter interval can produce.
func BuildLinearBVH(rng *rand.Rand, objs []Primitive, t0, t1 float64) *LinearBVH {
	objs = append([]Primitive(nil), objs...)
	boxes := make([]lin.AABB, len(objs))
	for i, o := range objs {
		boxes[i] = o.BoundingBox(t0, t1)
	}
	tree := buildBVH(rng, objs, boxes)
	lb := &LinearBVH{entries: make([]linearEntry, 0, tree.size())}
	lb.flatten(tree)
	return lb
}

// flatten walks the tree in pre-order, recording each inner node's
// skip-count as the total size of its two subtrees — the distance to
// advance past both children on a miss.
func (lb *LinearBVH) flatten(n *bvhTree) {
	if n.leaf != nil {
		lb.entries = append(lb.entries, linearEntry{Prim: n.leaf})
		return
	}
	skipIdx := len(lb.entries)
	lb.entries = append(lb.entries, linearEntry{Box: n.box})
	lb.flatten(n.left)
	lb.flatten(n.right)
	lb.entries[skipIdx].Skip = len(lb.entries) - skipIdx - 1
}

// Hit iteratively walks the flat array, testing inner-node boxes and
// advancing by skip+1 on a miss (skipping both children in one step)
// or by 1 on a hit; leaves run the primitive's own intersection test.
// Traversal never allocates.
func (lb *LinearBVH) Hit(r lin.Ray, rec *HitRecord) bool {
	hitAny := false
	for ix := 0; ix < len(lb.entries); {
		e := &lb.entries[ix]
		if e.Prim != nil {
			if e.Prim.Hit(r, rec) {
				hitAny = true
			}
			ix++
			continue
		}
		if !e.Box.Hit(r, rec.TMin, rec.TMax) {
			ix += e.Skip + 1
			continue
		}
		ix++
	}
	return hitAny
}
