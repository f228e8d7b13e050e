package nn

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// ThresholdedLinearUnit computes max(x, t) elementwise, where t is a
// learnable scalar weight initialized to zero.
//
// The layer starts uninitialized. InitWeightsAndState binds the weight on
// its first call; Forward before that panics.
//
// Example:
//
//	tlu := nn.NewThresholdedLinearUnit(backend)
//	if err := tlu.InitWeightsAndState(nn.ShapeDtype{Shape: x.Shape(), DType: tensor.Float32}); err != nil {
//	    return err
//	}
//	y := tlu.Forward(x) // max(x, 0) until the weight is trained
type ThresholdedLinearUnit[B tensor.Backend] struct {
	backend B
	weight  *Parameter[B]
}

// NewThresholdedLinearUnit creates an uninitialized layer bound to backend.
func NewThresholdedLinearUnit[B tensor.Backend](backend B) *ThresholdedLinearUnit[B] {
	return &ThresholdedLinearUnit[B]{backend: backend}
}

// Name returns "ThresholdedLinearUnit".
func (l *ThresholdedLinearUnit[B]) Name() string {
	return "ThresholdedLinearUnit"
}

// InitWeightsAndState binds a rank-0 zero weight on the first call.
// Later calls return nil without touching the weight or looking at sig.
func (l *ThresholdedLinearUnit[B]) InitWeightsAndState(sig ShapeDtype) error {
	if l.weight != nil {
		return nil
	}
	if err := sig.Shape.Validate(); err != nil {
		return fmt.Errorf("%s: invalid input signature: %w", l.Name(), err)
	}
	if sig.DType != tensor.Float32 {
		return fmt.Errorf("%s: input dtype must be float32, got %s", l.Name(), sig.DType)
	}

	l.weight = NewParameter("weight", tensor.Zeros[float32](tensor.Shape{}, l.backend))
	return nil
}

// Initialized reports whether the weight has been bound.
func (l *ThresholdedLinearUnit[B]) Initialized() bool {
	return l.weight != nil
}

// Weight returns the threshold parameter, or nil before initialization.
func (l *ThresholdedLinearUnit[B]) Weight() *Parameter[B] {
	return l.weight
}

// Forward computes max(x, weight) with the weight broadcast to x's shape.
//
// Panics if the layer is not initialized.
func (l *ThresholdedLinearUnit[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if l.weight == nil {
		panic("ThresholdedLinearUnit: Forward called before InitWeightsAndState")
	}
	return input.Maximum(l.weight.Tensor())
}

// Parameters returns the weight, or nil before initialization.
func (l *ThresholdedLinearUnit[B]) Parameters() []*Parameter[B] {
	if l.weight == nil {
		return nil
	}
	return []*Parameter[B]{l.weight}
}

// StateDict returns {"weight": w}. The map is empty before initialization.
//
// The tensor is the layer's own weight, not a copy: writing into it changes
// the layer.
func (l *ThresholdedLinearUnit[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	if l.weight != nil {
		stateDict["weight"] = l.weight.Tensor().Raw()
	}
	return stateDict
}

// LoadStateDict copies a rank-0 float32 "weight" into the bound parameter.
func (l *ThresholdedLinearUnit[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if l.weight == nil {
		return fmt.Errorf("%s: %w", l.Name(), ErrNotInitialized)
	}

	raw, ok := stateDict["weight"]
	if !ok {
		return fmt.Errorf("%s: missing parameter: weight", l.Name())
	}
	if raw.Shape().Rank() != 0 {
		return fmt.Errorf("%s: weight shape mismatch: expected [], got %v", l.Name(), raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		return fmt.Errorf("%s: weight dtype mismatch: expected float32, got %s", l.Name(), raw.DType())
	}

	l.weight.Tensor().Data()[0] = raw.AsFloat32()[0]
	return nil
}
