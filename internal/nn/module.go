// Package nn implements the elementwise activation layers.
//
// This package provides:
//   - Module interface: Base interface for all layers
//   - Parameter: Trainable parameters with a gradient slot
//   - Fn: Stateless named layers (Relu, Gelu, Softplus, ...)
//   - ThresholdedLinearUnit: The one stateful activation
//   - Sequential: Container for stacking layers
//   - Registry: Construction of any layer by its display name
//
// Every activation is also available as a generic function (ReLUFunc,
// GELUFunc, ...) that works on float32 and float64 tensors.
package nn

import (
	"errors"

	"github.com/born-ml/activations/internal/tensor"
)

var (
	// ErrUnknownActivation is returned by NewActivation for a name that
	// Names does not list.
	ErrUnknownActivation = errors.New("unknown activation")

	// ErrNotInitialized is returned when state is loaded into a layer whose
	// weights have not been bound yet.
	ErrNotInitialized = errors.New("layer not initialized")
)

// Module is the base interface for all layers.
//
// Modules can be composed:
//
//	model := nn.NewSequential[B](
//	    nn.NewThresholdedLinearUnit(backend),
//	    nn.NewGELU[B](),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Name returns the layer's display name, e.g. "LeakyRelu".
	Name() string

	// Forward computes the output for input. Activations preserve the
	// input's shape.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for stateless layers.
	Parameters() []*Parameter[B]

	// StateDict returns the module's weights keyed by name.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict copies weights into the module.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}

// ShapeDtype describes the signature of an input a layer will receive.
type ShapeDtype struct {
	Shape tensor.Shape
	DType tensor.DataType
}

// Initializer is implemented by layers that bind weights the first time
// they see an input signature.
type Initializer interface {
	InitWeightsAndState(sig ShapeDtype) error
}
