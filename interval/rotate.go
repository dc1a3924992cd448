package interval

// height returns the height of the subtree rooted at n, 0 for an empty one.
func height[T comparable](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.height
}

// fixHeight recomputes the cached height of n from its children.
func (n *node[T]) fixHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// heightDiff returns the height of the left subtree minus the height of the
// right subtree.
func (n *node[T]) heightDiff() int {
	return height(n.left) - height(n.right)
}

// rotate performs a single rebalancing step at n if its subtrees differ in
// height by more than one.
//
// When the left side is too tall, the last run of the left subtree is
// detached and moved up into n. The run n previously held is moved into the
// detached node, which becomes the new right child above the old right
// subtree. The right-heavy case mirrors this with the first run of the right
// subtree. The sequence of runs is unchanged either way.
//
// There is no double rotation, so a single step may leave the subtree
// unbalanced.
func (n *node[T]) rotate() {
	diff := n.heightDiff()

	if diff >= -1 && diff <= 1 {
		return
	}

	n.push()

	var moved *node[T]

	if diff > 1 {
		n.left, moved = n.left.detachLast()
		moved.right = n.right
		n.right = moved
	} else {
		n.right, moved = n.right.detachFirst()
		moved.left = n.left
		n.left = moved
	}

	n.value, moved.value = moved.value, n.value
	n.start, moved.start = moved.start, n.start
	n.count, moved.count = moved.count, n.count

	moved.fixHeight()
	n.fixHeight()
}

// detachLast unlinks the last run of the subtree rooted at n. It returns the
// remaining subtree and the detached node, which is left without children.
func (n *node[T]) detachLast() (*node[T], *node[T]) {
	n.push()

	if n.right == nil {
		rest := n.left
		n.left = nil

		return rest, n
	}

	var last *node[T]

	n.right, last = n.right.detachLast()
	n.fixHeight()

	return n, last
}

// detachFirst unlinks the first run of the subtree rooted at n. It returns the
// remaining subtree and the detached node, which is left without children.
func (n *node[T]) detachFirst() (*node[T], *node[T]) {
	n.push()

	if n.left == nil {
		rest := n.right
		n.right = nil

		return rest, n
	}

	var first *node[T]

	n.left, first = n.left.detachFirst()
	n.fixHeight()

	return n, first
}
