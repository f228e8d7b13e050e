package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
	"golang.org/x/exp/constraints"
)

// Greater returns a Bool tensor that is true where a > b, with broadcasting.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greater", a, b, func(c int) bool { return c > 0 })
}

// GreaterEqual returns a Bool tensor that is true where a >= b.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greaterEqual", a, b, func(c int) bool { return c >= 0 })
}

// compare evaluates pred on the three-way comparison of every element pair.
// A NaN operand compares as neither greater nor equal.
func (cpu *CPUBackend) compare(op string, a, b *tensor.RawTensor, pred func(c int) bool) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result := cpu.newResult(op, outShape, tensor.Bool)
	dst := result.AsBool()

	switch a.DType() {
	case tensor.Float32:
		applyBinary(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, comparator[float32](pred), cpu.par)
	case tensor.Float64:
		applyBinary(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, comparator[float64](pred), cpu.par)
	case tensor.Int32:
		applyBinary(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, comparator[int32](pred), cpu.par)
	case tensor.Int64:
		applyBinary(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, comparator[int64](pred), cpu.par)
	case tensor.Uint8:
		applyBinary(dst, a.AsUint8(), b.AsUint8(), a.Shape(), b.Shape(), outShape, comparator[uint8](pred), cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}

func comparator[T constraints.Ordered](pred func(c int) bool) func(x, y T) bool {
	return func(x, y T) bool {
		switch {
		case x > y:
			return pred(1)
		case x == y:
			return pred(0)
		case x < y:
			return pred(-1)
		default:
			return false // NaN
		}
	}
}
