package nn

import (
	"math"

	"github.com/born-ml/activations/internal/tensor"
	"golang.org/x/exp/constraints"
)

// Default constants of the parameterized activations.
const (
	DefaultParametricReLUSlope = 1.0
	DefaultLeakyReLUSlope      = 0.01
	DefaultELUAlpha            = 1.0
)

// fastGELUScale is sqrt(2/pi).
const fastGELUScale = 0.7978845608

// SELUConfig holds the self-normalizing constants of Selu.
type SELUConfig struct {
	Alpha  float64
	Lambda float64
}

// DefaultSELUConfig returns the constants from Klambauer et al. 2017.
func DefaultSELUConfig() SELUConfig {
	return SELUConfig{
		Alpha:  1.6732632423543772848170429916717,
		Lambda: 1.0507009873554804934193349852946,
	}
}

// ReLUFunc computes max(x, 0).
func ReLUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.Maximum(tensor.Scalar[T](0, x.Backend()))
}

// ParametricReLUFunc computes max(a*x, 0).
func ParametricReLUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], a T) *tensor.Tensor[T, B] {
	return x.MulScalar(a).Maximum(tensor.Scalar[T](0, x.Backend()))
}

// LeakyReLUFunc computes x where x >= 0 and a*x elsewhere.
func LeakyReLUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], a T) *tensor.Tensor[T, B] {
	zero := tensor.Scalar[T](0, x.Backend())
	return tensor.Where(x.GreaterEqual(zero), x, x.MulScalar(a))
}

// ELUFunc computes x where x > 0 and a*(exp(x)-1) elsewhere.
func ELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], a T) *tensor.Tensor[T, B] {
	zero := tensor.Scalar[T](0, x.Backend())
	return tensor.Where(x.Greater(zero), x, x.Expm1().MulScalar(a))
}

// SELUFunc computes lambda*x where x > 0 and lambda*alpha*(exp(x)-1)
// elsewhere.
func SELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B], cfg SELUConfig) *tensor.Tensor[T, B] {
	zero := tensor.Scalar[T](0, x.Backend())
	return tensor.Where(x.Greater(zero),
		x.MulScalar(T(cfg.Lambda)),
		x.Expm1().MulScalar(T(cfg.Lambda*cfg.Alpha)))
}

// GELUFunc computes the exact Gaussian error linear unit
// x/2 * (1 + erf(x/sqrt(2))).
func GELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	cdf := x.MulScalar(T(1 / math.Sqrt2)).Erf().AddScalar(1)
	return x.MulScalar(0.5).Mul(cdf)
}

// FastGELUFunc computes the tanh approximation of GELU
// 0.5*x*(1 + tanh(x*sqrt(2/pi)*(1 + 0.044715*x^2))).
func FastGELUFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	inner := x.Mul(x).MulScalar(0.044715).AddScalar(1).Mul(x).MulScalar(fastGELUScale)
	return x.MulScalar(0.5).Mul(inner.Tanh().AddScalar(1))
}

// SigmoidFunc computes 1 / (1 + exp(-x)).
func SigmoidFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.Sigmoid()
}

// TanhFunc computes tanh(x).
func TanhFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.Tanh()
}

// HardSigmoidFunc computes clamp(1 + x, 0, 1).
func HardSigmoidFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	b := x.Backend()
	return x.AddScalar(1).Maximum(tensor.Scalar[T](0, b)).Minimum(tensor.Scalar[T](1, b))
}

// HardTanhFunc computes clamp(x, -1, 1).
func HardTanhFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	b := x.Backend()
	return x.Maximum(tensor.Scalar[T](-1, b)).Minimum(tensor.Scalar[T](1, b))
}

// SoftplusFunc computes log(1 + exp(x)) as logaddexp(x, 0).
func SoftplusFunc[T constraints.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.LogAddExp(tensor.Scalar[T](0, x.Backend()))
}

// NewReLU creates the Relu layer: max(x, 0).
//
// Example:
//
//	relu := nn.NewReLU[*cpu.CPUBackend]()
//	y := relu.Forward(x) // negatives become 0
func NewReLU[B tensor.Backend]() *Fn[B] {
	return NewFn("Relu", ReLUFunc[float32, B])
}

// NewParametricReLU creates the ParametricRelu layer: max(a*x, 0).
func NewParametricReLU[B tensor.Backend](a float32) *Fn[B] {
	return NewFn("ParametricRelu", func(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
		return ParametricReLUFunc(x, a)
	})
}

// NewLeakyReLU creates the LeakyRelu layer with negative slope a.
func NewLeakyReLU[B tensor.Backend](a float32) *Fn[B] {
	return NewFn("LeakyRelu", func(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
		return LeakyReLUFunc(x, a)
	})
}

// NewELU creates the Elu layer with saturation a.
func NewELU[B tensor.Backend](a float32) *Fn[B] {
	return NewFn("Elu", func(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
		return ELUFunc(x, a)
	})
}

// NewSELU creates the Selu layer.
//
// Example:
//
//	selu := nn.NewSELU[*cpu.CPUBackend](nn.DefaultSELUConfig())
func NewSELU[B tensor.Backend](cfg SELUConfig) *Fn[B] {
	return NewFn("Selu", func(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
		return SELUFunc(x, cfg)
	})
}

// NewGELU creates the exact Gelu layer.
func NewGELU[B tensor.Backend]() *Fn[B] {
	return NewFn("Gelu", GELUFunc[float32, B])
}

// NewFastGELU creates the FastGelu layer (tanh approximation of Gelu).
func NewFastGELU[B tensor.Backend]() *Fn[B] {
	return NewFn("FastGelu", FastGELUFunc[float32, B])
}

// NewSigmoid creates the Sigmoid layer.
func NewSigmoid[B tensor.Backend]() *Fn[B] {
	return NewFn("Sigmoid", SigmoidFunc[float32, B])
}

// NewTanh creates the Tanh layer.
func NewTanh[B tensor.Backend]() *Fn[B] {
	return NewFn("Tanh", TanhFunc[float32, B])
}

// NewHardSigmoid creates the HardSigmoid layer.
func NewHardSigmoid[B tensor.Backend]() *Fn[B] {
	return NewFn("HardSigmoid", HardSigmoidFunc[float32, B])
}

// NewHardTanh creates the HardTanh layer.
func NewHardTanh[B tensor.Backend]() *Fn[B] {
	return NewFn("HardTanh", HardTanhFunc[float32, B])
}

// NewSoftplus creates the Softplus layer.
func NewSoftplus[B tensor.Backend]() *Fn[B] {
	return NewFn("Softplus", SoftplusFunc[float32, B])
}
