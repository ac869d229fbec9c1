package intervalset

// node is a tree node.  Besides the AVL links it caches pointers to the
// leftmost and rightmost descendants of its subtree (minNode, maxNode) so
// that subtree extents are readable in O(1), and carries its subtree size
// and height for O(1) Size and balance checks.
//
// The stored interval is replaced in place during merges and clips: a
// node's identity persists while its key changes.  The extent caches hold
// node pointers, not values, so a key rewrite needs no cache fixup.
type node[T any] struct {
	key     Interval[T]
	parent  *node[T]
	left    *node[T]
	right   *node[T]
	size    int
	height  int
	minNode *node[T]
	maxNode *node[T]
}

func newNode[T any](key Interval[T]) *node[T] {
	n := &node[T]{key: key, size: 1}
	n.minNode = n
	n.maxNode = n
	return n
}

// nodeHeight of an absent child is -1; a leaf is 0.
func nodeHeight[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func subtreeSize[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// update recomputes height, size, and the extent caches from the current
// children.  When a side is empty the node is its own extent on that side.
func (n *node[T]) update() {
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
	n.size = 1 + subtreeSize(n.left) + subtreeSize(n.right)
	if n.left != nil {
		n.minNode = n.left.minNode
	} else {
		n.minNode = n
	}
	if n.right != nil {
		n.maxNode = n.right.maxNode
	} else {
		n.maxNode = n
	}
}

// setLeft attaches c (which may be nil) as the left child and refreshes
// the local caches.
func (n *node[T]) setLeft(c *node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
	n.update()
}

// setRight attaches c (which may be nil) as the right child and refreshes
// the local caches.
func (n *node[T]) setRight(c *node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
	n.update()
}

// prev returns the in-order predecessor: the left subtree's cached maximum
// when there is one, otherwise the first ancestor reached from a right
// child.
func (n *node[T]) prev() *node[T] {
	if n.left != nil {
		return n.left.maxNode
	}
	c := n
	for p := c.parent; p != nil; c, p = p, p.parent {
		if p.right == c {
			return p
		}
	}
	return nil
}

// next is the mirror of prev.
func (n *node[T]) next() *node[T] {
	if n.right != nil {
		return n.right.minNode
	}
	c := n
	for p := c.parent; p != nil; c, p = p, p.parent {
		if p.left == c {
			return p
		}
	}
	return nil
}

// clone deep-copies the subtree rooted at n, attaching it under parent.
func (n *node[T]) clone(parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	m := &node[T]{key: n.key, parent: parent, size: n.size, height: n.height}
	m.left = n.left.clone(m)
	m.right = n.right.clone(m)
	if m.left != nil {
		m.minNode = m.left.minNode
	} else {
		m.minNode = m
	}
	if m.right != nil {
		m.maxNode = m.right.maxNode
	} else {
		m.maxNode = m
	}
	return m
}
