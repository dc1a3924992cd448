package interval

import "fmt"

// Node reexports the internal [node] type.
type Node[T comparable] = node[T]

// NewNode reexports the internal [newNode] constructor.
func NewNode[T comparable](value T, start, count int) *Node[T] {
	return newNode(value, start, count)
}

// Root exposes the root node of the tree.
func (v *Vec[T]) Root() *Node[T] {
	return v.root
}

// Run is a resolved run of the tree, as seen by [Runs].
type Run[T comparable] struct {
	Value T
	Start int
	Count int
}

// Runs returns every run of the subtree rooted at n in index order.
func Runs[T comparable](n *Node[T]) []Run[T] {
	var runs []Run[T]

	n.walk(0, func(value T, start, count int) bool {
		runs = append(runs, Run[T]{Value: value, Start: start, Count: count})

		return true
	})

	return runs
}

// SetChildren attaches children to n and refreshes its cached height.
func (n *node[T]) SetChildren(left, right *Node[T]) {
	n.left = left
	n.right = right
	n.fixHeight()
}

// Height reexports the cached subtree height.
func (n *node[T]) Height() int {
	return height(n)
}

// HeightDiff reexports the internal [heightDiff] method.
func (n *node[T]) HeightDiff() int {
	return n.heightDiff()
}

// Rotate reexports the internal [rotate] method.
func (n *node[T]) Rotate() {
	n.rotate()
}

// IncreaseStart reexports the internal [increaseStart] method.
func (n *node[T]) IncreaseStart() {
	n.increaseStart()
}

// Validate checks the structural invariants of the tree: runs are non-empty
// and cover [0, Len) without gaps or overlaps, cached heights are accurate and
// the root is absent exactly when the Vec is empty.
func (v *Vec[T]) Validate() error {
	if (v.root == nil) != (v.length == 0) {
		return fmt.Errorf("root present: %t, length: %d", v.root != nil, v.length)
	}

	end, _, err := validate(v.root, 0, 0)
	if err != nil {
		return err
	}

	if end != v.length {
		return fmt.Errorf("runs end at %d, length is %d", end, v.length)
	}

	return nil
}

// validate checks the subtree rooted at n, which must begin at from. It
// returns the index after the subtree's last run and the subtree height.
func validate[T comparable](n *node[T], offset, from int) (int, int, error) {
	if n == nil {
		return from, 0, nil
	}

	start := n.start + offset
	childOffset := offset + n.pending

	leftEnd, leftHeight, err := validate(n.left, childOffset, from)
	if err != nil {
		return 0, 0, err
	}

	if start != leftEnd {
		return 0, 0, fmt.Errorf("run at %d follows a subtree ending at %d", start, leftEnd)
	}

	if n.count < 1 {
		return 0, 0, fmt.Errorf("run at %d has count %d", start, n.count)
	}

	end, rightHeight, err := validate(n.right, childOffset, start+n.count)
	if err != nil {
		return 0, 0, err
	}

	if h := 1 + max(leftHeight, rightHeight); h != n.height {
		return 0, 0, fmt.Errorf("run at %d caches height %d, actual %d", start, n.height, h)
	}

	return end, n.height, nil
}
