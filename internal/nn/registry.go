package nn

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// names lists every display name in registry order.
var names = []string{
	"Relu",
	"ParametricRelu",
	"LeakyRelu",
	"Elu",
	"Selu",
	"Gelu",
	"FastGelu",
	"Sigmoid",
	"Tanh",
	"HardSigmoid",
	"HardTanh",
	"Softplus",
	"ThresholdedLinearUnit",
}

// Names returns the display names NewActivation accepts.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// NewActivation builds the layer called name with its default parameters.
//
// Example:
//
//	layer, err := nn.NewActivation("LeakyRelu", cpu.New())
//	if err != nil {
//	    return err
//	}
func NewActivation[B tensor.Backend](name string, backend B) (Module[B], error) {
	switch name {
	case "Relu":
		return NewReLU[B](), nil
	case "ParametricRelu":
		return NewParametricReLU[B](DefaultParametricReLUSlope), nil
	case "LeakyRelu":
		return NewLeakyReLU[B](DefaultLeakyReLUSlope), nil
	case "Elu":
		return NewELU[B](DefaultELUAlpha), nil
	case "Selu":
		return NewSELU[B](DefaultSELUConfig()), nil
	case "Gelu":
		return NewGELU[B](), nil
	case "FastGelu":
		return NewFastGELU[B](), nil
	case "Sigmoid":
		return NewSigmoid[B](), nil
	case "Tanh":
		return NewTanh[B](), nil
	case "HardSigmoid":
		return NewHardSigmoid[B](), nil
	case "HardTanh":
		return NewHardTanh[B](), nil
	case "Softplus":
		return NewSoftplus[B](), nil
	case "ThresholdedLinearUnit":
		return NewThresholdedLinearUnit(backend), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}
