// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the activation kernels.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 kernels on chewxy/math32, float64 kernels on math
//   - Scalar scaling through gonum BLAS
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/activations/backend/cpu"
//	    "github.com/born-ml/activations/nn"
//	    "github.com/born-ml/activations/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice([]float32{-1, 0, 1}, tensor.Shape{3}, backend)
//	    y := nn.NewGELU[*cpu.Backend]().Forward(x)
//	}
//
// # Numerics
//
// Sigmoid and LogAddExp never exponentiate a positive argument, so they stay
// finite for every finite input.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
