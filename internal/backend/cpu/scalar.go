package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/floats"
)

// MulScalar multiplies every element of x by scalar. The scalar must have
// the Go type matching x's dtype.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("mulScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		s := scalarAs[float32]("mulScalar", scalar)
		src, dst := x.AsFloat32(), result.AsFloat32()
		// Scal zero-fills for alpha == 0, which would drop NaN and Inf.
		if s == 0 {
			applyUnary(dst, src, func(v float32) float32 { return v * s }, cpu.par)
			break
		}
		parallel.ForRange(len(dst), func(start, end int) {
			copy(dst[start:end], src[start:end])
			blas32.Scal(s, blas32.Vector{N: end - start, Inc: 1, Data: dst[start:end]})
		}, cpu.par)
	case tensor.Float64:
		s := scalarAs[float64]("mulScalar", scalar)
		src, dst := x.AsFloat64(), result.AsFloat64()
		parallel.ForRange(len(dst), func(start, end int) {
			floats.ScaleTo(dst[start:end], s, src[start:end])
		}, cpu.par)
	default:
		panic(unsupported("mulScalar", x.DType()))
	}

	return result
}

// AddScalar adds scalar to every element of x.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("addScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		s := scalarAs[float32]("addScalar", scalar)
		applyUnary(result.AsFloat32(), x.AsFloat32(), func(v float32) float32 { return v + s }, cpu.par)
	case tensor.Float64:
		s := scalarAs[float64]("addScalar", scalar)
		src, dst := x.AsFloat64(), result.AsFloat64()
		parallel.ForRange(len(dst), func(start, end int) {
			copy(dst[start:end], src[start:end])
			floats.AddConst(s, dst[start:end])
		}, cpu.par)
	default:
		panic(unsupported("addScalar", x.DType()))
	}

	return result
}

func scalarAs[T float32 | float64](op string, scalar any) T {
	s, ok := scalar.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("%s: scalar type %T does not match tensor element type %T", op, scalar, zero))
	}
	return s
}
