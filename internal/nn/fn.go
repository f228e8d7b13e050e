package nn

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// Fn is a stateless layer that applies a fixed tensor function.
//
// Example:
//
//	square := nn.NewFn("Square", func(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
//	    return x.Mul(x)
//	})
type Fn[B tensor.Backend] struct {
	name string
	f    func(*tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]
}

// NewFn creates a named stateless layer around f.
func NewFn[B tensor.Backend](name string, f func(*tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]) *Fn[B] {
	return &Fn[B]{name: name, f: f}
}

// Name returns the display name.
func (l *Fn[B]) Name() string {
	return l.name
}

// Forward applies the wrapped function.
func (l *Fn[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return l.f(input)
}

// Parameters returns nil; Fn layers have no weights.
func (l *Fn[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map.
func (l *Fn[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// LoadStateDict accepts only an empty state.
func (l *Fn[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if len(stateDict) != 0 {
		return fmt.Errorf("%s: expected empty state, got %d entries", l.name, len(stateDict))
	}
	return nil
}

// String returns the display name.
func (l *Fn[B]) String() string {
	return l.name
}
