// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/activations/internal/tensor"
	"golang.org/x/exp/constraints"
)

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor. Shape{} is a scalar.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation (CPU, WebGPU).
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// ZerosLike creates a zero tensor with the shape and backend of t.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.ZerosLike(t)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Scalar creates a rank-0 tensor that broadcasts against any shape.
//
// Example:
//
//	zero := tensor.Scalar[float32](0, backend)
//	relu := x.Maximum(zero)
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return tensor.Scalar[T, B](value, b)
}

// Randn creates a tensor filled with samples from N(0, 1).
func Randn[T constraints.Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// Rand creates a tensor filled with samples from U(low, high).
func Rand[T constraints.Float, B Backend](shape Shape, low, high T, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, low, high, b)
}

// Linspace creates a 1-D tensor of n evenly spaced values from start to end
// inclusive.
//
// Example:
//
//	xs := tensor.Linspace[float32](-5, 5, 11, backend) // [-5, -4, ..., 5]
func Linspace[T constraints.Float, B Backend](start, end T, n int, b B) *Tensor[T, B] {
	return tensor.Linspace[T, B](start, end, n, b)
}

// FromSlice creates a tensor from a copy of a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Scalar, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Where selects elements from x where cond is true and from y elsewhere.
//
// Example:
//
//	zero := tensor.Scalar[float32](0, backend)
//	leaky := tensor.Where(x.GreaterEqual(zero), x, x.MulScalar(0.01))
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Where(cond, x, y)
}

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules. The flag reports whether any broadcasting
// happens.
//
// Example:
//
//	resultShape, broadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], broadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
