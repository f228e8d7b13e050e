package cpu

import (
	"math"

	"github.com/born-ml/activations/internal/tensor"
	"github.com/chewxy/math32"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("exp", x, math32.Exp, math.Exp)
}

// Expm1 computes element-wise exp(x) - 1 without cancellation near zero.
func (cpu *CPUBackend) Expm1(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("expm1", x, math32.Expm1, math.Expm1)
}

// Tanh computes element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("tanh", x, math32.Tanh, math.Tanh)
}

// Erf computes the element-wise Gauss error function.
func (cpu *CPUBackend) Erf(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("erf", x, math32.Erf, math.Erf)
}

// Sigmoid computes the element-wise logistic function.
//
// Only exp of a non-positive argument is ever taken, so the result is finite
// for every finite input.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("sigmoid", x, sigmoid32, sigmoid64)
}

func (cpu *CPUBackend) unaryFloat(op string, x *tensor.RawTensor, f32 func(float32) float32, f64 func(float64) float64) *tensor.RawTensor {
	result := cpu.newResult(op, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		applyUnary(result.AsFloat32(), x.AsFloat32(), f32, cpu.par)
	case tensor.Float64:
		applyUnary(result.AsFloat64(), x.AsFloat64(), f64, cpu.par)
	default:
		panic(unsupported(op, x.DType()))
	}

	return result
}

func sigmoid32(x float32) float32 {
	if x >= 0 {
		return 1 / (1 + math32.Exp(-x))
	}
	z := math32.Exp(x)
	return z / (1 + z)
}

func sigmoid64(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	z := math.Exp(x)
	return z / (1 + z)
}

// logAddExp32 computes log(exp(a) + exp(b)) as max + log1p(exp(-|a-b|)).
// Equal arguments short-circuit so that Inf - Inf is never formed.
func logAddExp32(a, b float32) float32 {
	if a == b {
		return a + float32(math.Ln2)
	}
	return math32.Max(a, b) + math32.Log1p(math32.Exp(-math32.Abs(a-b)))
}

func logAddExp64(a, b float64) float64 {
	if a == b {
		return a + math.Ln2
	}
	return math.Max(a, b) + math.Log1p(math.Exp(-math.Abs(a-b)))
}
