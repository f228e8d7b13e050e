package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// Where selects x where condition is true and y elsewhere, broadcasting all
// three operands. condition must be Bool or Uint8 (non-zero is true).
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch %s vs %s", x.DType(), y.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err = tensor.BroadcastShapes(outShape, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	var cond []bool
	switch condition.DType() {
	case tensor.Bool:
		cond = condition.AsBool()
	case tensor.Uint8:
		src := condition.AsUint8()
		cond = make([]bool, len(src))
		for i, v := range src {
			cond[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("where: condition must be bool or uint8, got %s", condition.DType()))
	}

	result := cpu.newResult("where", outShape, x.DType())
	cs, xs, ys := condition.Shape(), x.Shape(), y.Shape()

	switch x.DType() {
	case tensor.Float32:
		applyWhere(result.AsFloat32(), cond, x.AsFloat32(), y.AsFloat32(), cs, xs, ys, outShape, cpu.par)
	case tensor.Float64:
		applyWhere(result.AsFloat64(), cond, x.AsFloat64(), y.AsFloat64(), cs, xs, ys, outShape, cpu.par)
	case tensor.Int32:
		applyWhere(result.AsInt32(), cond, x.AsInt32(), y.AsInt32(), cs, xs, ys, outShape, cpu.par)
	case tensor.Int64:
		applyWhere(result.AsInt64(), cond, x.AsInt64(), y.AsInt64(), cs, xs, ys, outShape, cpu.par)
	case tensor.Uint8:
		applyWhere(result.AsUint8(), cond, x.AsUint8(), y.AsUint8(), cs, xs, ys, outShape, cpu.par)
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}
