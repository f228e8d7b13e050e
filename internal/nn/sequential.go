package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/activations/internal/tensor"
)

// Sequential is a container module that chains layers together.
//
// Each module's output becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential[B](
//	    nn.NewThresholdedLinearUnit(backend),
//	    nn.NewHardTanh[B](),
//	)
//	if err := model.InitWeightsAndState(nn.ShapeDtype{Shape: x.Shape(), DType: tensor.Float32}); err != nil {
//	    return err
//	}
//	output := model.Forward(x)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{
		modules: modules,
	}
}

// Name returns "Sequential".
func (s *Sequential[B]) Name() string {
	return "Sequential"
}

// InitWeightsAndState initializes every child that implements Initializer.
// Activations preserve shape and dtype, so every child sees sig.
func (s *Sequential[B]) InitWeightsAndState(sig ShapeDtype) error {
	for i, module := range s.modules {
		initializer, ok := module.(Initializer)
		if !ok {
			continue
		}
		if err := initializer.InitWeightsAndState(sig); err != nil {
			return fmt.Errorf("failed to initialize module %d (%s): %w", i, module.Name(), err)
		}
	}
	return nil
}

// Forward applies all modules in sequence.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output := input

	for _, module := range s.modules {
		output = module.Forward(output)
	}

	return output
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]

	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}

	return params
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// StateDict returns a map of parameter names to raw tensors.
//
// Names are prefixed with their module index (e.g., "0.weight", "2.weight").
func (s *Sequential[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)

	for i, module := range s.modules {
		for name, raw := range module.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = raw
		}
	}

	return stateDict
}

// LoadStateDict loads parameters from a state dictionary produced by
// StateDict.
func (s *Sequential[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	for i, module := range s.modules {
		moduleStateDict := make(map[string]*tensor.RawTensor)
		prefix := fmt.Sprintf("%d.", i)

		for key, raw := range stateDict {
			if name, ok := strings.CutPrefix(key, prefix); ok && name != "" {
				moduleStateDict[name] = raw
			}
		}

		// Modules without parameters are skipped.
		if len(moduleStateDict) > 0 {
			if err := module.LoadStateDict(moduleStateDict); err != nil {
				return fmt.Errorf("failed to load module %d: %w", i, err)
			}
		}
	}

	return nil
}
