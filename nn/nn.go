// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/activations/internal/nn"
	"github.com/born-ml/activations/internal/tensor"
	"golang.org/x/exp/constraints"
)

// Module interface defines the common interface for all layers.
type Module[B tensor.Backend] = nn.Module[B]

// Initializer is implemented by layers that bind weights from an input
// signature.
type Initializer = nn.Initializer

// ShapeDtype describes the signature of a layer input.
type ShapeDtype = nn.ShapeDtype

// Parameter represents a trainable parameter.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Errors

var (
	// ErrUnknownActivation is returned by NewActivation for unknown names.
	ErrUnknownActivation = nn.ErrUnknownActivation

	// ErrNotInitialized is returned when state is loaded into an
	// uninitialized layer.
	ErrNotInitialized = nn.ErrNotInitialized
)

// Stateless layers

// Fn is a named stateless layer wrapping a tensor function.
type Fn[B tensor.Backend] = nn.Fn[B]

// NewFn creates a named stateless layer around f.
//
// Example:
//
//	square := nn.NewFn("Square", func(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
//	    return x.Mul(x)
//	})
func NewFn[B tensor.Backend](name string, f func(*tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]) *Fn[B] {
	return nn.NewFn(name, f)
}

// Default activation parameters.
const (
	DefaultParametricReLUSlope = nn.DefaultParametricReLUSlope
	DefaultLeakyReLUSlope      = nn.DefaultLeakyReLUSlope
	DefaultELUAlpha            = nn.DefaultELUAlpha
)

// SELUConfig holds the Selu constants.
type SELUConfig = nn.SELUConfig

// DefaultSELUConfig returns the standard self-normalizing constants.
func DefaultSELUConfig() SELUConfig {
	return nn.DefaultSELUConfig()
}

// NewReLU creates the Relu layer: max(x, 0).
//
// Example:
//
//	relu := nn.NewReLU[*cpu.Backend]()
func NewReLU[B tensor.Backend]() *Fn[B] {
	return nn.NewReLU[B]()
}

// NewParametricReLU creates the ParametricRelu layer: max(a*x, 0).
func NewParametricReLU[B tensor.Backend](a float32) *Fn[B] {
	return nn.NewParametricReLU[B](a)
}

// NewLeakyReLU creates the LeakyRelu layer with negative slope a.
//
// Example:
//
//	leaky := nn.NewLeakyReLU[*cpu.Backend](nn.DefaultLeakyReLUSlope)
func NewLeakyReLU[B tensor.Backend](a float32) *Fn[B] {
	return nn.NewLeakyReLU[B](a)
}

// NewELU creates the Elu layer with saturation a.
func NewELU[B tensor.Backend](a float32) *Fn[B] {
	return nn.NewELU[B](a)
}

// NewSELU creates the Selu layer.
func NewSELU[B tensor.Backend](cfg SELUConfig) *Fn[B] {
	return nn.NewSELU[B](cfg)
}

// NewGELU creates the exact Gelu layer.
func NewGELU[B tensor.Backend]() *Fn[B] {
	return nn.NewGELU[B]()
}

// NewFastGELU creates the tanh-approximated FastGelu layer.
func NewFastGELU[B tensor.Backend]() *Fn[B] {
	return nn.NewFastGELU[B]()
}

// NewSigmoid creates the Sigmoid layer.
func NewSigmoid[B tensor.Backend]() *Fn[B] {
	return nn.NewSigmoid[B]()
}

// NewTanh creates the Tanh layer.
func NewTanh[B tensor.Backend]() *Fn[B] {
	return nn.NewTanh[B]()
}

// NewHardSigmoid creates the HardSigmoid layer: clamp(1+x, 0, 1).
func NewHardSigmoid[B tensor.Backend]() *Fn[B] {
	return nn.NewHardSigmoid[B]()
}

// NewHardTanh creates the HardTanh layer: clamp(x, -1, 1).
func NewHardTanh[B tensor.Backend]() *Fn[B] {
	return nn.NewHardTanh[B]()
}

// NewSoftplus creates the Softplus layer: log(1 + exp(x)).
func NewSoftplus[B tensor.Backend]() *Fn[B] {
	return nn.NewSoftplus[B]()
}

// Stateful layers

// ThresholdedLinearUnit computes max(x, t) with a learnable scalar t.
type ThresholdedLinearUnit[B tensor.Backend] = nn.ThresholdedLinearUnit[B]

// NewThresholdedLinearUnit creates an uninitialized layer bound to backend.
//
// Example:
//
//	tlu := nn.NewThresholdedLinearUnit(backend)
//	err := tlu.InitWeightsAndState(nn.ShapeDtype{Shape: x.Shape(), DType: tensor.Float32})
func NewThresholdedLinearUnit[B tensor.Backend](backend B) *ThresholdedLinearUnit[B] {
	return nn.NewThresholdedLinearUnit(backend)
}

// Containers

// Sequential chains layers.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Registry

// Names returns the display name of every activation.
func Names() []string {
	return nn.Names()
}

// NewActivation builds the activation called name with default parameters.
//
// Example:
//
//	layer, err := nn.NewActivation("Softplus", cpu.New())
func NewActivation[B tensor.Backend](name string, backend B) (Module[B], error) {
	return nn.NewActivation(name, backend)
}

// Functional forms

// ReLUFunc computes max(x, 0).
func ReLUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.ReLUFunc(x)
}

// ParametricReLUFunc computes max(a*x, 0).
func ParametricReLUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], a T) *tensor.Tensor[T, B] {
	return nn.ParametricReLUFunc(x, a)
}

// LeakyReLUFunc computes x where x >= 0 and a*x elsewhere.
func LeakyReLUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], a T) *tensor.Tensor[T, B] {
	return nn.LeakyReLUFunc(x, a)
}

// ELUFunc computes x where x > 0 and a*(exp(x)-1) elsewhere.
func ELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], a T) *tensor.Tensor[T, B] {
	return nn.ELUFunc(x, a)
}

// SELUFunc computes the scaled exponential linear unit.
func SELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], cfg SELUConfig) *tensor.Tensor[T, B] {
	return nn.SELUFunc(x, cfg)
}

// GELUFunc computes x/2 * (1 + erf(x/sqrt(2))).
func GELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.GELUFunc(x)
}

// FastGELUFunc computes the tanh approximation of GELU.
func FastGELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.FastGELUFunc(x)
}

// SigmoidFunc computes 1 / (1 + exp(-x)).
func SigmoidFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.SigmoidFunc(x)
}

// TanhFunc computes tanh(x).
func TanhFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.TanhFunc(x)
}

// HardSigmoidFunc computes clamp(1 + x, 0, 1).
func HardSigmoidFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.HardSigmoidFunc(x)
}

// HardTanhFunc computes clamp(x, -1, 1).
func HardTanhFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.HardTanhFunc(x)
}

// SoftplusFunc computes logaddexp(x, 0).
func SoftplusFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.SoftplusFunc(x)
}
