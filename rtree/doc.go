/*
Package rtree implements an in-memory, two-dimensional R-tree spatial
index. Entries are axis-aligned rectangles carrying an opaque payload;
the tree supports point and rectangle queries against them.

Two insertion strategies are available at construction time: Guttman's
original R-tree (least-area-enlargement leaf choice, quadratic split) and
the R*-tree (least-overlap/area-enlargement leaf choice, axis/index split,
and forced reinsertion). Both share the same adjust-tree pass that
refits bounding rectangles and propagates splits upward.

The package performs no I/O, no logging, and no locking: mutation
(Insert) is not safe for concurrent use, but concurrent read-only queries
against an unmutated tree are. There is no deletion.
*/
package rtree
