package quadtree

import (
	"math"
	"sort"
)

// bulkInsert implements spec.md §4.5: Morton-sort the items, then
// recursively quarter the sorted array to build a balanced subtree rooted
// at id in one pass. Items already in a leaf id's bucket are folded into the
// batch. If id is no longer a leaf (items forwarded out of a sibling's
// subtree can subdivide it before its own turn), the batch is inserted one
// item at a time instead.
func (t *Tree[T, Q, P]) bulkInsert(id nodeID, handleIDs []int32) {
	if len(handleIDs) == 0 {
		return
	}
	nd := t.n(id)
	if nd.isLeaf() && len(nd.items) > 0 {
		handleIDs = append(append([]int32(nil), nd.items...), handleIDs...)
		nd.items = nil
	}

	if len(handleIDs) <= t.cfg.BulkLeafCutoff || degenerate(nd.rect, t.cfg.MinSubdivideArea) || !nd.isLeaf() {
		for _, itemID := range handleIDs {
			t.insert(id, itemID)
		}
		return
	}

	var policy P
	points := make([]PointF, len(handleIDs))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, itemID := range handleIDs {
		p := policy.MortonPoint(t.h(itemID).item)
		points[i] = p
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	extentX, extentY := maxX-minX, maxY-minY

	order := make([]int, len(handleIDs))
	codes := make([]uint32, len(handleIDs))
	for i := range order {
		order[i] = i
		codes[i] = mortonCode(points[i], minX, minY, extentX, extentY, t.cfg.MortonQuantisation)
	}
	sort.SliceStable(order, func(a, b int) bool { return codes[order[a]] < codes[order[b]] })

	sorted := make([]int32, len(handleIDs))
	sortedPoints := make([]PointF, len(handleIDs))
	for i, idx := range order {
		sorted[i] = handleIDs[idx]
		sortedPoints[i] = points[idx]
	}

	n := len(sorted)
	q0, q1, q2 := n/4, n/2, (3*n)/4
	quarters := [4][]int32{sorted[:q0], sorted[q0:q1], sorted[q1:q2], sorted[q2:]}

	midX, midY := nd.rect.midpoint()
	splitX, splitY := midX, midY
	if mid := sortedPoints[q1]; mid.X > nd.rect.Left() && mid.X < nd.rect.Right() &&
		mid.Y > nd.rect.Top() && mid.Y < nd.rect.Bottom() {
		splitX, splitY = mid.X, mid.Y
	}

	// All four children exist before any recursion: an item that does not
	// fit its quarter's child is forwarded back up to id and placed by
	// destinationFor, which reads every child.
	for q := 0; q <= quadBR; q++ {
		nd.children[q] = t.allocNode(nd.rect.quarter(q, splitX, splitY), id)
	}
	for q := 0; q <= quadBR; q++ {
		t.bulkInsert(nd.children[q], quarters[q])
	}
}

// mortonCode quantises p to integers in [0, quant] along each axis
// (relative to the batch's bounding box) and interleaves their bits into a
// single 32-bit Z-order key (spec.md §4.5, §6; quantisation scaffolding
// grounded on bmharper-flatbush-go's min/max scan + 16-bit scaling, the bit
// interleave itself the textbook Morton expand-by-2 trick).
func mortonCode(p PointF, minX, minY, extentX, extentY float64, quant uint32) uint32 {
	qx := quantiseAxis(p.X, minX, extentX, quant)
	qy := quantiseAxis(p.Y, minY, extentY, quant)
	return spreadBits(qx) | (spreadBits(qy) << 1)
}

func quantiseAxis(v, min, extent float64, quant uint32) uint32 {
	if extent <= 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		return 0
	}
	frac := (v - min) / extent
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return uint32(frac * float64(quant))
}

// spreadBits interleaves the low 16 bits of x with zero bits, i.e.
// 0babcdefgh -> 0b0a0b0c0d0e0f0g0h, the standard Z-order bit-expansion used
// to build a Morton code from two axis values.
func spreadBits(x uint32) uint32 {
	x &= 0x0000ffff
	x = (x | (x << 8)) & 0x00ff00ff
	x = (x | (x << 4)) & 0x0f0f0f0f
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}
