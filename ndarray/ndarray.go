// Package ndarray implements the rank-2 and rank-3 contiguous arrays.
package ndarray

import (
	"errors"
	"fmt"
)

// ErrInvalidShape indicates that a requested array extent is non-positive.
var ErrInvalidShape = errors.New("ndarray: shape extents must be > 0")

// Array2 is a rank-2 array of T stored in one contiguous slice.
// Strides are [1, s0]: element (i0, i1) lives at i0 + i1·s0.
type Array2[T any] struct {
	shape  [2]int
	stride [2]int
	data   []T
}

// NewArray2 allocates an s0×s1 array with all elements at T's zero value.
// Returns ErrInvalidShape if any extent is non-positive.
// Complexity: O(s0·s1) time and memory.
func NewArray2[T any](s0, s1 int) (*Array2[T], error) {
	if s0 <= 0 || s1 <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidShape, s0, s1)
	}

	return &Array2[T]{
		shape:  [2]int{s0, s1},
		stride: [2]int{1, s0},
		data:   make([]T, s0*s1),
	}, nil
}

// Shape returns the extent along the given dimension.
func (a *Array2[T]) Shape(dimension int) int { return a.shape[dimension] }

// Stride returns the flat-index stride of the given dimension.
func (a *Array2[T]) Stride(dimension int) int { return a.stride[dimension] }

// offset maps (i0, i1) to the flat index, panicking on out-of-range input.
func (a *Array2[T]) offset(i0, i1 int) int {
	if i0 < 0 || i0 >= a.shape[0] || i1 < 0 || i1 >= a.shape[1] {
		panic(fmt.Sprintf("ndarray: index (%d, %d) out of shape (%d, %d)", i0, i1, a.shape[0], a.shape[1]))
	}

	return i0 + i1*a.stride[1]
}

// At returns the element at (i0, i1).
// Complexity: O(1).
func (a *Array2[T]) At(i0, i1 int) T { return a.data[a.offset(i0, i1)] }

// Set stores value at (i0, i1).
// Complexity: O(1).
func (a *Array2[T]) Set(value T, i0, i1 int) { a.data[a.offset(i0, i1)] = value }

// Array3 is a rank-3 array of T stored in one contiguous slice.
// Strides are [1, s0, s0·s1]: element (i0, i1, i2) lives at
// i0 + i1·s0 + i2·s0·s1.
type Array3[T any] struct {
	shape  [3]int
	stride [3]int
	data   []T
}

// NewArray3 allocates an s0×s1×s2 array with all elements at T's zero value.
// Returns ErrInvalidShape if any extent is non-positive.
// Complexity: O(s0·s1·s2) time and memory.
func NewArray3[T any](s0, s1, s2 int) (*Array3[T], error) {
	if s0 <= 0 || s1 <= 0 || s2 <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidShape, s0, s1, s2)
	}

	return &Array3[T]{
		shape:  [3]int{s0, s1, s2},
		stride: [3]int{1, s0, s0 * s1},
		data:   make([]T, s0*s1*s2),
	}, nil
}

// Shape returns the extent along the given dimension.
func (a *Array3[T]) Shape(dimension int) int { return a.shape[dimension] }

// Stride returns the flat-index stride of the given dimension.
func (a *Array3[T]) Stride(dimension int) int { return a.stride[dimension] }

// offset maps (i0, i1, i2) to the flat index, panicking on out-of-range input.
func (a *Array3[T]) offset(i0, i1, i2 int) int {
	if i0 < 0 || i0 >= a.shape[0] || i1 < 0 || i1 >= a.shape[1] || i2 < 0 || i2 >= a.shape[2] {
		panic(fmt.Sprintf("ndarray: index (%d, %d, %d) out of shape (%d, %d, %d)",
			i0, i1, i2, a.shape[0], a.shape[1], a.shape[2]))
	}

	return i0 + i1*a.stride[1] + i2*a.stride[2]
}

// At returns the element at (i0, i1, i2).
// Complexity: O(1).
func (a *Array3[T]) At(i0, i1, i2 int) T { return a.data[a.offset(i0, i1, i2)] }

// Set stores value at (i0, i1, i2).
// Complexity: O(1).
func (a *Array3[T]) Set(value T, i0, i1, i2 int) { a.data[a.offset(i0, i1, i2)] = value }
