package quadtree

import "github.com/juju/loggo"

// logger traces structural decisions that are normal but worth seeing in a
// diagnostic log: refusing to subdivide a degenerate-area node, and the
// optional sparse-rebuild heuristic firing or being skipped. Neither
// condition is an error, so neither is ever logged above Debug.
var logger = loggo.GetLogger("quadtree")
