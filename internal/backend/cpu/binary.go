package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/activations/internal/tensor"
	"github.com/chewxy/math32"
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryFloat("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryFloat("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Maximum returns the element-wise maximum with broadcasting. NaN
// propagates.
func (cpu *CPUBackend) Maximum(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryFloat("maximum", a, b, math32.Max, math.Max)
}

// Minimum returns the element-wise minimum with broadcasting. NaN
// propagates.
func (cpu *CPUBackend) Minimum(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryFloat("minimum", a, b, math32.Min, math.Min)
}

// LogAddExp computes log(exp(a) + exp(b)) element-wise with broadcasting.
func (cpu *CPUBackend) LogAddExp(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryFloat("logaddexp", a, b, logAddExp32, logAddExp64)
}

func (cpu *CPUBackend) binaryFloat(
	op string, a, b *tensor.RawTensor,
	f32 func(x, y float32) float32, f64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result := cpu.newResult(op, outShape, a.DType())

	switch a.DType() {
	case tensor.Float32:
		applyBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, f32, cpu.par)
	case tensor.Float64:
		applyBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, f64, cpu.par)
	default:
		panic(unsupported(op, a.DType()))
	}

	return result
}
