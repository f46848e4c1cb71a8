package geometry

import (
	"sort"

	"github.com/geomray/go-ray-geometry/pkg/core"
)

// BVHNode is an interior node of the bounding volume hierarchy. It is
// itself a Hittable, so a built tree drops into a scene anywhere a shape
// can. Left and right own their subtrees; the node box is the
// precomputed union of both and is used only to prune traversal.
type BVHNode struct {
	left, right core.Hittable
	box         core.AABB
}

// NewBVH builds a BVH over the given shapes. Construction is a one-time
// recursive median split: each node picks a uniformly random axis from
// the sampler, sorts its sub-range by bounding-box minimum corner along
// that axis, and recurses on the two halves. The input slice is copied,
// so the caller's ordering is untouched.
//
// Shapes inside a BVH must be bounded. One that reports no box is an
// invariant violation: it is reported through the logger and given a
// degenerate zero box so the build can proceed.
func NewBVH(shapes []core.Hittable, time0, time1 float64, sampler core.Sampler, logger core.Logger) *BVHNode {
	shapesCopy := make([]core.Hittable, len(shapes))
	copy(shapesCopy, shapes)
	return newBVHNode(shapesCopy, time0, time1, sampler, logger)
}

func newBVHNode(shapes []core.Hittable, time0, time1 float64, sampler core.Sampler, logger core.Logger) *BVHNode {
	node := &BVHNode{}
	axis := sampler.IntRange(0, 2)
	less := boxCompare(axis, time0, time1, logger)

	switch len(shapes) {
	case 1:
		// Duplicate the lone shape so every node stays binary
		node.left = shapes[0]
		node.right = shapes[0]
	case 2:
		if less(shapes[0], shapes[1]) {
			node.left = shapes[0]
			node.right = shapes[1]
		} else {
			node.left = shapes[1]
			node.right = shapes[0]
		}
	default:
		sort.Slice(shapes, func(i, j int) bool {
			return less(shapes[i], shapes[j])
		})
		mid := len(shapes) / 2
		node.left = newBVHNode(shapes[:mid], time0, time1, sampler, logger)
		node.right = newBVHNode(shapes[mid:], time0, time1, sampler, logger)
	}

	boxLeft, okLeft := node.left.BoundingBox(time0, time1)
	boxRight, okRight := node.right.BoundingBox(time0, time1)
	if !okLeft || !okRight {
		logger.Printf("bvh: unbounded shape in node, substituting degenerate box")
	}
	node.box = core.SurroundingBox(boxLeft, boxRight)

	return node
}

// boxCompare returns an ordering of two shapes by the minimum corner of
// their bounding boxes along the given axis. An unbounded shape here is
// a contract violation; it is reported and sorted with a zero box rather
// than crashing the build.
func boxCompare(axis int, time0, time1 float64, logger core.Logger) func(a, b core.Hittable) bool {
	return func(a, b core.Hittable) bool {
		boxA, okA := a.BoundingBox(time0, time1)
		boxB, okB := b.BoundingBox(time0, time1)
		if !okA || !okB {
			logger.Printf("bvh: unbounded shape in comparator, substituting degenerate box")
		}
		return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
	}
}

// Hit prunes on the node box, then narrows the right child's range by
// the left child's hit. The net effect is the nearer of the two
// children's hits without comparing both unconditionally.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftRec, hitLeft := n.left.Hit(ray, tMin, tMax)

	rightMax := tMax
	if hitLeft {
		rightMax = leftRec.T
	}
	if rightRec, hitRight := n.right.Hit(ray, tMin, rightMax); hitRight {
		return rightRec, true
	}

	return leftRec, hitLeft
}

// BoundingBox returns the precomputed union of the subtree's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.box, true
}

// BVHStats summarizes the structure of a built tree
type BVHStats struct {
	Nodes    int // Interior BVH nodes
	Leaves   int // Non-BVH children (shapes, possibly counted twice when duplicated)
	MaxDepth int
}

// Stats walks the tree and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	collectStats(n, 0, &stats)
	return stats
}

func collectStats(h core.Hittable, depth int, stats *BVHStats) {
	node, isNode := h.(*BVHNode)
	if !isNode {
		stats.Leaves++
		return
	}

	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	collectStats(node.left, depth+1, stats)
	collectStats(node.right, depth+1, stats)
}
