// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the elementwise activation layers.
//
// # Overview
//
// This package contains:
//   - Stateless activations: Relu, ParametricRelu, LeakyRelu, Elu, Selu,
//     Gelu, FastGelu, Sigmoid, Tanh, HardSigmoid, HardTanh, Softplus
//   - ThresholdedLinearUnit: max(x, t) with a learnable scalar t
//   - Utilities: Sequential, Module interface, Parameter, registry
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
//	    x := tensor.Randn[float32](tensor.Shape{32, 128}, backend)
//
//	    model := nn.NewSequential[*cpu.Backend](
//	        nn.NewThresholdedLinearUnit(backend),
//	        nn.NewGELU[*cpu.Backend](),
//	    )
//	    if err := model.InitWeightsAndState(nn.ShapeDtype{Shape: x.Shape(), DType: tensor.Float32}); err != nil {
//	        log.Fatal(err)
//	    }
//	    y := model.Forward(x)
//	}
//
// # Functional Forms
//
// Each activation is also a generic function over float32 and float64:
//
//	x64, _ := tensor.FromSlice([]float64{-1, 0, 1}, tensor.Shape{3}, backend)
//	y64 := nn.SoftplusFunc(x64)
//
// # State
//
// Stateless layers have no parameters and an empty state dict. The
// ThresholdedLinearUnit starts uninitialized; InitWeightsAndState binds its
// zero weight once, and Forward panics before that.
package nn
