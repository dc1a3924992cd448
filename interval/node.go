package interval

// node is a single run in the interval tree.
//
// It covers the half-open range [start, start+count), all of which holds
// value. Every index in the left subtree is less than start, and every index
// in the right subtree is at least start+count.
type node[T comparable] struct {
	value T
	start int
	count int

	// height is the cached height of the subtree rooted at this node. A leaf
	// has height 1.
	height int

	// pending is a start shift that has been applied to this node but not yet
	// to its children. It is pushed down lazily on mutating descent.
	pending int

	left  *node[T]
	right *node[T]
}

// newNode creates a leaf covering [start, start+count).
func newNode[T comparable](value T, start, count int) *node[T] {
	return &node[T]{
		value:  value,
		start:  start,
		count:  count,
		height: 1,
	}
}

// end returns the first index after this node's run.
func (n *node[T]) end() int {
	return n.start + n.count
}

// shift moves the whole subtree rooted at n right by delta positions.
//
// Only n itself is updated eagerly, the children inherit the shift through
// pending.
func shift[T comparable](n *node[T], delta int) {
	if n == nil {
		return
	}

	n.start += delta
	n.pending += delta
}

// push hands any pending shift down to the children.
func (n *node[T]) push() {
	if n.pending == 0 {
		return
	}

	shift(n.left, n.pending)
	shift(n.right, n.pending)

	n.pending = 0
}

// get returns the value stored at index.
//
// Pending shifts are accumulated on the way down rather than pushed, so the
// lookup never mutates the tree.
func (n *node[T]) get(index int) (T, bool) {
	offset := 0

	for current := n; current != nil; {
		start := current.start + offset

		switch {
		case index < start:
			offset += current.pending
			current = current.left
		case index >= start+current.count:
			offset += current.pending
			current = current.right
		default:
			return current.value, true
		}
	}

	var zero T

	return zero, false
}

// set overwrites the value at index, splitting the landing node if the value
// differs. It reports false when index is not covered by the subtree.
func (n *node[T]) set(index int, value T) bool {
	n.push()

	switch {
	case index < n.start:
		if n.left == nil || !n.left.set(index, value) {
			return false
		}
	case index >= n.end():
		if n.right == nil || !n.right.set(index, value) {
			return false
		}
	default:
		if value == n.value {
			return true
		}

		n.split(index, value, 0)
	}

	n.fixHeight()

	return true
}

// split carves index out of the run so that n holds value at index alone.
//
// The indices of the run before index move into a new left child, which
// adopts the old left subtree. The indices after index move into a new right
// child, which adopts the old right subtree. When grow is 1 the element at
// index is displaced one position right instead of overwritten, so the right
// remainder also covers it.
func (n *node[T]) split(index int, value T, grow int) {
	if rightCount := n.end() - index - 1 + grow; rightCount > 0 {
		remainder := newNode(n.value, index+1, rightCount)
		remainder.right = n.right
		remainder.fixHeight()

		n.right = remainder
	}

	if leftCount := index - n.start; leftCount > 0 {
		remainder := newNode(n.value, n.start, leftCount)
		remainder.left = n.left
		remainder.fixHeight()

		n.left = remainder
	}

	n.value = value
	n.start = index
	n.count = 1

	n.fixHeight()
}

// insert places value at index, shifting every later element one position
// right. It reports false when index is neither covered by the subtree nor
// directly after its last run.
//
// Rotation is attempted at every node on the way back up.
func (n *node[T]) insert(index int, value T) bool {
	n.push()

	switch {
	case index < n.start:
		if n.left == nil || !n.left.insert(index, value) {
			return false
		}

		// The new element landed before this run, so it and everything
		// after it moves right by one.
		n.start++
		n.right.increaseStart()
	case index >= n.end():
		switch {
		case n.right != nil:
			if !n.right.insert(index, value) {
				return false
			}
		case index != n.end():
			return false
		case value == n.value:
			n.count++
		default:
			n.right = newNode(value, index, 1)
		}
	default:
		n.right.increaseStart()

		if value == n.value {
			n.count++
		} else {
			n.split(index, value, 1)
		}
	}

	n.fixHeight()
	n.rotate()

	return true
}

// increaseStart shifts the subtree rooted at n right by a single position.
// It is safe to call on a nil subtree.
func (n *node[T]) increaseStart() {
	shift(n, 1)
}

// walk calls fn for every run of the subtree in index order, with starts
// resolved against any pending shifts. It stops early when fn returns false.
func (n *node[T]) walk(offset int, fn func(value T, start, count int) bool) bool {
	if n == nil {
		return true
	}

	childOffset := offset + n.pending

	return n.left.walk(childOffset, fn) &&
		fn(n.value, n.start+offset, n.count) &&
		n.right.walk(childOffset, fn)
}
