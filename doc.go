/*

Overview

This package is a GO implementation of an ordered, in-memory set of
half-open intervals [min, max) backed by a self-balancing AVL tree.

The defining property of the set is that it never stores two intersecting
or touching intervals: adding an interval that overlaps or is adjacent to
stored intervals merges them all into a single maximal interval, and
removing a region clips, splits, or deletes the stored intervals it
crosses.  The tree is augmented so that every node caches pointers to the
minimum and maximum nodes of its subtree, which makes subtree extents
readable in O(1) and keeps the search, merge, and subtraction paths
O(log n).

Features

Briefly, the supported operations are:

- Merging insertion (Add, AddAll)
- Region subtraction with interval splitting (Remove, RemoveAll)
- Point and interval membership (Contains, ContainsInterval)
- Intersection testing (Intersects)
- Complement of a probe against the stored coverage (Difference)
- Ordered navigation (First, Last, Lower, Higher, Floor, Ceiling,
  PollFirst, PollLast)
- In-order iteration with removal, fail-fast against foreign mutation

Files

- interval.go    The Interval value type and its endpoint arithmetic
- node.go        Tree nodes, extent caches, in-order walks
- avl.go         Rotations, rebalancing, recursive insert and delete
- set.go         The IntervalSet engine
- navigator.go   Ordered navigation and the unimplemented sub-views
- iterator.go    The fail-fast iterator
- concurrent.go  The reader-writer locked wrapper

The base IntervalSet is not safe for concurrent use; wrap it in (or
construct directly) a ConcurrentIntervalSet when multiple goroutines
share one set.

*/

package intervalset
