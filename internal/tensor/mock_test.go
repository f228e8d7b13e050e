package tensor

import (
	"fmt"
	"math"
)

var _ Backend = (*mockBackend)(nil)

// mockBackend implements every operation naively in float64 so the tensor
// package can be tested without importing a real backend.
type mockBackend struct{}

func (m *mockBackend) Name() string   { return "mock" }
func (m *mockBackend) Device() Device { return CPU }

func (m *mockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, a.DType(), func(x, y float64) float64 { return x + y })
}

func (m *mockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, a.DType(), func(x, y float64) float64 { return x * y })
}

func (m *mockBackend) Maximum(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, a.DType(), math.Max)
}

func (m *mockBackend) Minimum(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, a.DType(), math.Min)
}

func (m *mockBackend) LogAddExp(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, a.DType(), func(x, y float64) float64 {
		return math.Log(math.Exp(x) + math.Exp(y))
	})
}

func (m *mockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	s := toFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v * s })
}

func (m *mockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	s := toFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v + s })
}

func (m *mockBackend) Exp(x *RawTensor) *RawTensor   { return m.unary(x, math.Exp) }
func (m *mockBackend) Expm1(x *RawTensor) *RawTensor { return m.unary(x, math.Expm1) }
func (m *mockBackend) Tanh(x *RawTensor) *RawTensor  { return m.unary(x, math.Tanh) }
func (m *mockBackend) Erf(x *RawTensor) *RawTensor   { return m.unary(x, math.Erf) }

func (m *mockBackend) Sigmoid(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

func (m *mockBackend) Greater(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, Bool, func(x, y float64) float64 { return boolToFloat(x > y) })
}

func (m *mockBackend) GreaterEqual(a, b *RawTensor) *RawTensor {
	return m.binary(a, b, Bool, func(x, y float64) float64 { return boolToFloat(x >= y) })
}

func (m *mockBackend) Where(condition, x, y *RawTensor) *RawTensor {
	shape, _, err := BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(err)
	}
	shape, _, err = BroadcastShapes(shape, y.Shape())
	if err != nil {
		panic(err)
	}
	out, err := NewRaw(shape, x.DType(), CPU)
	if err != nil {
		panic(err)
	}
	for i := 0; i < out.NumElements(); i++ {
		src := y
		if getFloat64(condition, broadcastIndex(i, shape, condition.Shape())) != 0 {
			src = x
		}
		setFloat64(out, i, getFloat64(src, broadcastIndex(i, shape, src.Shape())))
	}
	return out
}

func (m *mockBackend) unary(x *RawTensor, f func(float64) float64) *RawTensor {
	out, err := NewRaw(x.Shape(), x.DType(), CPU)
	if err != nil {
		panic(err)
	}
	for i := 0; i < x.NumElements(); i++ {
		setFloat64(out, i, f(getFloat64(x, i)))
	}
	return out
}

func (m *mockBackend) binary(a, b *RawTensor, dtype DataType, f func(x, y float64) float64) *RawTensor {
	shape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}
	out, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		panic(err)
	}
	for i := 0; i < out.NumElements(); i++ {
		x := getFloat64(a, broadcastIndex(i, shape, a.Shape()))
		y := getFloat64(b, broadcastIndex(i, shape, b.Shape()))
		setFloat64(out, i, f(x, y))
	}
	return out
}

// broadcastIndex maps a flat index in outShape to the flat index of an
// operand of shape in that was broadcast to outShape.
func broadcastIndex(flat int, outShape, in Shape) int {
	inStrides := in.ComputeStrides()
	offset := len(outShape) - len(in)
	idx := 0
	for d := len(outShape) - 1; d >= 0; d-- {
		coord := flat % outShape[d]
		flat /= outShape[d]
		if k := d - offset; k >= 0 && in[k] != 1 {
			idx += coord * inStrides[k]
		}
	}
	return idx
}

func getFloat64(r *RawTensor, i int) float64 {
	switch r.DType() {
	case Float32:
		return float64(r.AsFloat32()[i])
	case Float64:
		return r.AsFloat64()[i]
	case Int32:
		return float64(r.AsInt32()[i])
	case Int64:
		return float64(r.AsInt64()[i])
	case Uint8:
		return float64(r.AsUint8()[i])
	case Bool:
		return boolToFloat(r.AsBool()[i])
	}
	panic(fmt.Sprintf("mock: unsupported dtype %s", r.DType()))
}

func setFloat64(r *RawTensor, i int, v float64) {
	switch r.DType() {
	case Float32:
		r.AsFloat32()[i] = float32(v)
	case Float64:
		r.AsFloat64()[i] = v
	case Int32:
		r.AsInt32()[i] = int32(v)
	case Int64:
		r.AsInt64()[i] = int64(v)
	case Uint8:
		r.AsUint8()[i] = uint8(v)
	case Bool:
		r.AsBool()[i] = v != 0
	default:
		panic(fmt.Sprintf("mock: unsupported dtype %s", r.DType()))
	}
}

func toFloat64(v any) float64 {
	switch s := v.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int32:
		return float64(s)
	case int64:
		return float64(s)
	}
	panic(fmt.Sprintf("mock: unsupported scalar %T", v))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
