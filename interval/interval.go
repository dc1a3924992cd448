// Package interval provides a run-length compressed sequence with random
// access.
//
// A [Vec] behaves like a slice that supports indexed reads, overwrites and
// insertions, but adjacent positions holding equal values are stored once as
// a run with a repetition count. Runs live in a binary tree keyed by the
// half-open index range they cover, rebalanced by local rotation after each
// insertion.
//
// A Vec is not safe for concurrent use.
package interval

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every [*OutOfRangeError] through [errors.Is].
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports an index outside the valid range of a [Vec].
type OutOfRangeError struct {
	// Count is the length of the Vec at the time of the failed call.
	Count int

	// Index is the offending index.
	Index int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Count)
}

// Is reports whether target is [ErrOutOfRange].
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Sequence is an indexable sequence of values.
type Sequence[T comparable] interface {
	Len() int
	Get(index int) (T, error)
	Set(index int, value T) error
	Insert(index int, value T) error
	Push(value T)
}

// Vec is a run-length compressed sequence.
//
// The zero value is an empty Vec ready to use.
type Vec[T comparable] struct {
	root   *node[T]
	length int
}

// Ensure that Vec implements the [Sequence] interface.
var _ Sequence[int] = &Vec[int]{}

// New creates an empty Vec. No nodes are allocated until the first value is
// inserted.
func New[T comparable]() *Vec[T] {
	return &Vec[T]{}
}

// Len returns the number of values in the sequence.
func (v *Vec[T]) Len() int {
	return v.length
}

// Get returns the value at index.
func (v *Vec[T]) Get(index int) (T, error) {
	if v.root != nil {
		if value, ok := v.root.get(index); ok {
			return value, nil
		}
	}

	var zero T

	return zero, v.outOfRange(index)
}

// Set overwrites the value at index. The length is unchanged.
func (v *Vec[T]) Set(index int, value T) error {
	if v.root == nil || !v.root.set(index, value) {
		return v.outOfRange(index)
	}

	return nil
}

// Insert places value at index, moving the value previously at index and
// every value after it one position right. An index equal to Len appends.
func (v *Vec[T]) Insert(index int, value T) error {
	switch {
	case v.root == nil && index == 0:
		v.root = newNode(value, 0, 1)
	case v.root == nil || !v.root.insert(index, value):
		return v.outOfRange(index)
	}

	v.length++

	return nil
}

// Push appends value to the end of the sequence.
func (v *Vec[T]) Push(value T) {
	if err := v.Insert(v.length, value); err != nil {
		panic(fmt.Sprintf("interval: append rejected: %v", err))
	}
}

// outOfRange builds the error for a failed access at index.
func (v *Vec[T]) outOfRange(index int) error {
	return &OutOfRangeError{
		Count: v.length,
		Index: index,
	}
}
