// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API consumed by the activation
// layers.
//
// # Overview
//
// A Tensor[T, B] is a typed, row-major view over a RawTensor that carries
// the backend computing on it. Every operation allocates a new result and
// leaves its operands untouched.
//
// Binary operations follow NumPy broadcasting rules. A rank-0 tensor built
// with Scalar broadcasts against any shape:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{-1, 0, 2}, tensor.Shape{3}, backend)
//	y := x.Maximum(tensor.Scalar[float32](0, backend)) // [0, 0, 2]
//
// # Element Types
//
//   - float32, float64: all math operations
//   - int32, int64, uint8: comparisons and Where
//   - bool: comparison results and Where conditions
package tensor
