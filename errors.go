package quadtree

import "github.com/pkg/errors"

// ErrBulkLoadOnNonLeaf is raised when AddBulk is called against a subtree
// that already has children, or a non-empty bucket combined with children
// (spec.md §7, §4.5's precondition). It is a programmer error: the caller
// is expected to bulk-load only into a Tree whose root is still a leaf.
var ErrBulkLoadOnNonLeaf = errors.New("quadtree: AddBulk requires a leaf subtree")
