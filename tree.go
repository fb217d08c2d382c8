package quadtree

import "github.com/pkg/errors"

// Tree is the facade of spec.md §3/§4.2: a root node plus a hash index from
// item identity to its handle, so Remove and Move can locate an item in
// O(1) without a tree walk. T, Q and P are fixed together at construction
// (see NewRectTree, NewPointTree, NewPointInvTree, or NewTree for a custom
// Policy); T must be comparable because it doubles as the identity-index
// key, which in practice means T should be a pointer type so identity is
// pointer identity and geometry can be mutated in place ahead of Move.
type Tree[T comparable, Q any, P Policy[T, Q]] struct {
	cfg Config

	nodes     []*node[T]
	freeNodes []nodeID
	root      nodeID

	handles     []*handle[T]
	freeHandles []int32

	index map[T]int32
}

// NewTree builds an empty Tree over rootRect with a custom Policy. cfg may
// be nil, meaning DefaultConfig().
func NewTree[T comparable, Q any, P Policy[T, Q]](rootRect Rect, cfg *Config) *Tree[T, Q, P] {
	t := &Tree[T, Q, P]{
		cfg:   resolveConfig(cfg),
		index: make(map[T]int32),
	}
	t.nodes = append(t.nodes, newNode[T](rootRect, noNode))
	t.root = 0
	return t
}

// NewRectTree builds a Tree indexing axis-aligned rectangle items.
func NewRectTree[V any](rootRect Rect, cfg *Config) *Tree[*RectItem[V], Rect, RectPolicy[V]] {
	return NewTree[*RectItem[V], Rect, RectPolicy[V]](rootRect, cfg)
}

// NewPointTree builds a Tree indexing point items queried by rectangle.
func NewPointTree[V any](rootRect Rect, cfg *Config) *Tree[*PointItem[V], Rect, PointPolicy[V]] {
	return NewTree[*PointItem[V], Rect, PointPolicy[V]](rootRect, cfg)
}

// NewPointInvTree builds a Tree indexing points queried by an arbitrary
// caller-supplied predicate instead of a rectangle (see PointInvPolicy's
// doc comment for the traversal caveat this implies).
func NewPointInvTree[V any](rootRect Rect, cfg *Config) *Tree[*PointInvItem[V], PointInvQuery[V], PointInvPolicy[V]] {
	return NewTree[*PointInvItem[V], PointInvQuery[V], PointInvPolicy[V]](rootRect, cfg)
}

// Add inserts item and returns a handle to it (spec.md §4.2). Insert is
// total: an item whose geometry lies outside the root is still accepted
// and retained at the root (I4).
func (t *Tree[T, Q, P]) Add(item T) *Handle[T] {
	id := t.allocHandle(item, t.root)
	t.index[item] = id
	t.insert(t.root, id)
	return &Handle[T]{item: item}
}

// AddRange is equivalent to calling Add for each item in order.
func (t *Tree[T, Q, P]) AddRange(items []T) {
	for _, item := range items {
		t.Add(item)
	}
}

// AddBulk adds items to the root subtree, laid out via the Morton-sort bulk
// loader of spec.md §4.5. It requires the root to be a
// leaf (no children yet); a root that already has a bucket is allowed and
// its existing items are merged into the batch. Calling AddBulk against an
// already-subdivided root is a programmer error (ErrBulkLoadOnNonLeaf).
func (t *Tree[T, Q, P]) AddBulk(items []T) error {
	rootNode := t.n(t.root)
	if !rootNode.isLeaf() {
		return errors.WithStack(ErrBulkLoadOnNonLeaf)
	}

	existing := rootNode.items
	rootNode.items = nil

	handleIDs := make([]int32, 0, len(existing)+len(items))
	handleIDs = append(handleIDs, existing...)
	for _, item := range items {
		id := t.allocHandle(item, t.root)
		t.index[item] = id
		handleIDs = append(handleIDs, id)
	}

	t.bulkInsert(t.root, handleIDs)
	return nil
}

// Remove deletes item from the tree, reporting whether it was present
// (spec.md §7: absence is soft, never an error).
func (t *Tree[T, Q, P]) Remove(item T) bool {
	id, ok := t.index[item]
	if !ok {
		return false
	}
	t.delete(id, true)
	delete(t.index, item)
	t.freeHandleSlot(id)
	return true
}

// Move re-homes item after the caller has mutated its geometry in place
// (spec.md §4.2, §4.3 Relocate). A no-op if item is not in the tree.
func (t *Tree[T, Q, P]) Move(item T) {
	id, ok := t.index[item]
	if !ok {
		return
	}
	t.relocate(id)
}

// Contains reports whether item is currently indexed.
func (t *Tree[T, Q, P]) Contains(item T) bool {
	_, ok := t.index[item]
	return ok
}

// Count returns the number of items currently indexed.
func (t *Tree[T, Q, P]) Count() int {
	return len(t.index)
}

// Clear empties the tree back to a single empty root, discarding every
// node and the identity index (spec.md §4.2).
func (t *Tree[T, Q, P]) Clear() {
	rootRect := t.n(t.root).rect
	t.nodes = []*node[T]{newNode[T](rootRect, noNode)}
	t.freeNodes = nil
	t.root = 0
	t.handles = nil
	t.freeHandles = nil
	t.index = make(map[T]int32)
}

// GetObjects runs the hoisting traversal of spec.md §4.6 and returns every
// matching item as a slice.
func (t *Tree[T, Q, P]) GetObjects(q Q) []T {
	var out []T
	t.queryNode(t.root, q, func(item T) { out = append(out, item) })
	return out
}

// GetObjectsInto runs the same traversal as GetObjects but calls put for
// each hit instead of allocating a result slice, so a caller can reuse an
// output container across repeated queries (spec.md §5).
func (t *Tree[T, Q, P]) GetObjectsInto(q Q, put func(T)) {
	t.queryNode(t.root, q, put)
}

// GetAllObjects visits every item in the tree exactly once, in an
// unspecified but deterministic order.
func (t *Tree[T, Q, P]) GetAllObjects(put func(T)) {
	t.emitSubtree(t.root, put)
}

// EnumObjects returns a lazy enumerator over the same result set as
// GetObjects, suitable for early termination: a caller that stops calling
// Next partway through never pays for the unvisited remainder.
func (t *Tree[T, Q, P]) EnumObjects(q Q) *Enumerator[T, Q, P] {
	return newEnumerator(t, q)
}

// Stats is a point-in-time snapshot of the tree's shape. It is purely
// observational: nothing on the Insert/Move/Query path consults it, so it
// cannot be responsible for any incidental allocation spec.md §5 forbids
// there — Stats walks the tree only when called.
type Stats struct {
	NodeCount int
	MaxDepth  int
	ItemCount int
}

// Stats walks the whole tree and reports its current shape.
func (t *Tree[T, Q, P]) Stats() Stats {
	var s Stats
	t.statsWalk(t.root, 1, &s)
	return s
}

func (t *Tree[T, Q, P]) statsWalk(id nodeID, depth int, s *Stats) {
	if id == noNode {
		return
	}
	nd := t.n(id)
	s.NodeCount++
	s.ItemCount += len(nd.items)
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	for q := 0; q <= quadBR; q++ {
		t.statsWalk(nd.children[q], depth+1, s)
	}
}
