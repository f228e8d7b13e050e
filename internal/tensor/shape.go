package tensor

import "fmt"

// Shape represents the dimensions of a tensor. An empty shape is a scalar.
type Shape []int

// NumElements returns the number of elements a tensor of this shape holds.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides: stride[i] is the product of
// all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting.
//
// Shapes are compared right to left; two dimensions are compatible when they
// are equal or one of them is 1, and missing dimensions count as 1. A scalar
// (empty shape) is compatible with every shape.
//
// Returns the broadcast shape and whether either operand must be expanded.
//
//	(3, 1) + (3, 5) → (3, 5), true
//	()     + (2, 4) → (2, 4), true
//	(3, 5) + (3, 5) → (3, 5), false
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	rank := max(len(a), len(b))
	result := make(Shape, rank)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < rank; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			result[rank-1-i] = aDim
		case aDim == 1:
			result[rank-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[rank-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, rank-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
