// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/activations/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Every operation is elementwise and returns a freshly allocated tensor.
//
// Implementations:
//   - backend/cpu: Pure Go, float32 and float64
//   - backend/webgpu: WGSL compute shaders for float32 (windows)
//
// Example:
//
//	import (
//	    "github.com/born-ml/activations/tensor"
//	    "github.com/born-ml/activations/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := x.AddScalar(1) // Uses backend.AddScalar under the hood
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor       // Element-wise addition.
	Mul(a, b *RawTensor) *RawTensor       // Element-wise multiplication.
	Maximum(a, b *RawTensor) *RawTensor   // Element-wise maximum, NaN propagates.
	Minimum(a, b *RawTensor) *RawTensor   // Element-wise minimum, NaN propagates.
	LogAddExp(a, b *RawTensor) *RawTensor // log(exp(a) + exp(b)) without overflow.

	// Scalar operations. The scalar has the tensor's Go element type.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor     // Exponential.
	Expm1(x *RawTensor) *RawTensor   // exp(x) - 1, accurate near zero.
	Tanh(x *RawTensor) *RawTensor    // Hyperbolic tangent.
	Erf(x *RawTensor) *RawTensor     // Gauss error function.
	Sigmoid(x *RawTensor) *RawTensor // Logistic function without overflow.

	// Comparison operations (element-wise, return bool tensor).
	Greater(a, b *RawTensor) *RawTensor      // a > b.
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b.

	// Conditional element selection with broadcasting.
	Where(condition, x, y *RawTensor) *RawTensor

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "WebGPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
