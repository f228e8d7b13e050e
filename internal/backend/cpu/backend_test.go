package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawFloat32 builds a float32 RawTensor holding vals.
func rawFloat32(t *testing.T, shape tensor.Shape, vals ...float32) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	require.Equal(t, r.NumElements(), len(vals))
	copy(r.AsFloat32(), vals)
	return r
}

func rawFloat64(t *testing.T, shape tensor.Shape, vals ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	require.Equal(t, r.NumElements(), len(vals))
	copy(r.AsFloat64(), vals)
	return r
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	require.NotNil(t, backend)
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.Equal(t, parallel.DefaultConfig(), backend.Parallel())
}

func TestCPUBackend_Add(t *testing.T) {
	backend := New()

	t.Run("SameShape", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := rawFloat32(t, tensor.Shape{2, 3}, 10, 11, 12, 13, 14, 15)

		out := backend.Add(a, b)
		assert.Equal(t, []float32{11, 13, 15, 17, 19, 21}, out.AsFloat32())
	})

	t.Run("Broadcast", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2, 1}, 1, 2)
		b := rawFloat32(t, tensor.Shape{3}, 10, 20, 30)

		out := backend.Add(a, b)
		assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
		assert.Equal(t, []float32{11, 21, 31, 12, 22, 32}, out.AsFloat32())
	})

	t.Run("ScalarLeft", func(t *testing.T) {
		a := rawFloat64(t, tensor.Shape{}, 0.5)
		b := rawFloat64(t, tensor.Shape{3}, 1, 2, 3)

		out := backend.Add(a, b)
		assert.Equal(t, []float64{1.5, 2.5, 3.5}, out.AsFloat64())
	})

	t.Run("Incompatible", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{2}, 1, 2)
		b := rawFloat32(t, tensor.Shape{3}, 1, 2, 3)
		assert.Panics(t, func() { backend.Add(a, b) })
	})

	t.Run("DTypeMismatch", func(t *testing.T) {
		a := rawFloat32(t, tensor.Shape{1}, 1)
		b := rawFloat64(t, tensor.Shape{1}, 1)
		assert.Panics(t, func() { backend.Add(a, b) })
	})
}

func TestCPUBackend_Mul(t *testing.T) {
	backend := New()
	a := rawFloat32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	b := rawFloat32(t, tensor.Shape{2, 1}, 10, -1)

	out := backend.Mul(a, b)
	assert.Equal(t, []float32{10, 20, -3, -4}, out.AsFloat32())
}

func TestCPUBackend_MaximumMinimum(t *testing.T) {
	backend := New()
	x := rawFloat32(t, tensor.Shape{5}, -2, -1, 0, 1, 2)
	zero := rawFloat32(t, tensor.Shape{}, 0)

	assert.Equal(t, []float32{0, 0, 0, 1, 2}, backend.Maximum(x, zero).AsFloat32())
	assert.Equal(t, []float32{-2, -1, 0, 0, 0}, backend.Minimum(x, zero).AsFloat32())

	// Inputs are never written.
	assert.Equal(t, []float32{-2, -1, 0, 1, 2}, x.AsFloat32())
	assert.Equal(t, []float32{0}, zero.AsFloat32())
}

func TestCPUBackend_MaximumNaN(t *testing.T) {
	backend := New()
	nan := float32(nan64())
	x := rawFloat32(t, tensor.Shape{2}, nan, 1)

	out := backend.Maximum(x, rawFloat32(t, tensor.Shape{}, 0)).AsFloat32()
	assert.True(t, math.IsNaN(float64(out[0])), "NaN should propagate")
	assert.Equal(t, float32(1), out[1])
}

func TestCPUBackend_MulScalar(t *testing.T) {
	backend := New()

	x32 := rawFloat32(t, tensor.Shape{3}, 1, -2, 3)
	assert.Equal(t, []float32{0.5, -1, 1.5}, backend.MulScalar(x32, float32(0.5)).AsFloat32())
	assert.Equal(t, []float32{1, -2, 3}, x32.AsFloat32())

	x64 := rawFloat64(t, tensor.Shape{3}, 1, -2, 3)
	assert.Equal(t, []float64{-3, 6, -9}, backend.MulScalar(x64, -3.0).AsFloat64())

	assert.Panics(t, func() { backend.MulScalar(x32, 0.5) }, "float64 scalar on float32 tensor")
}

func TestCPUBackend_MulScalarZeroPropagatesNaN(t *testing.T) {
	backend := New()
	inf := math.Inf(1)

	out32 := backend.MulScalar(rawFloat32(t, tensor.Shape{4}, float32(nan64()), float32(inf), float32(-inf), 3), float32(0)).AsFloat32()
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(float64(out32[i])), "float32 index %d: got %v", i, out32[i])
	}
	assert.Equal(t, float32(0), out32[3])

	out64 := backend.MulScalar(rawFloat64(t, tensor.Shape{4}, nan64(), inf, -inf, 3), 0.0).AsFloat64()
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(out64[i]), "float64 index %d: got %v", i, out64[i])
	}
	assert.Equal(t, 0.0, out64[3])
}

func TestCPUBackend_AddScalar(t *testing.T) {
	backend := New()

	x32 := rawFloat32(t, tensor.Shape{2, 2}, 0, 1, 2, 3)
	assert.Equal(t, []float32{1, 2, 3, 4}, backend.AddScalar(x32, float32(1)).AsFloat32())

	x64 := rawFloat64(t, tensor.Shape{2}, 0, 1)
	assert.Equal(t, []float64{0.25, 1.25}, backend.AddScalar(x64, 0.25).AsFloat64())
	assert.Equal(t, []float64{0, 1}, x64.AsFloat64())

	assert.Panics(t, func() { backend.AddScalar(x64, float32(1)) })
}

func TestCPUBackend_Comparison(t *testing.T) {
	backend := New()
	x := rawFloat32(t, tensor.Shape{4}, -1, 0, 1, float32(nan64()))
	zero := rawFloat32(t, tensor.Shape{}, 0)

	gt := backend.Greater(x, zero)
	assert.Equal(t, tensor.Bool, gt.DType())
	assert.Equal(t, []bool{false, false, true, false}, gt.AsBool())

	ge := backend.GreaterEqual(x, zero)
	assert.Equal(t, []bool{false, true, true, false}, ge.AsBool())
}

func TestCPUBackend_ComparisonInt(t *testing.T) {
	backend := New()
	a, err := tensor.NewRaw(tensor.Shape{3}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	copy(a.AsInt32(), []int32{-5, 0, 5})
	b, err := tensor.NewRaw(tensor.Shape{}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, false, true}, backend.Greater(a, b).AsBool())
}

func TestCPUBackend_Where(t *testing.T) {
	backend := New()
	x := rawFloat32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	y := rawFloat32(t, tensor.Shape{}, -1)

	cond, err := tensor.NewRaw(tensor.Shape{2}, tensor.Bool, tensor.CPU)
	require.NoError(t, err)
	copy(cond.AsBool(), []bool{true, false})

	out := backend.Where(cond, x, y)
	assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
	assert.Equal(t, []float32{1, -1, 3, -1}, out.AsFloat32())

	t.Run("Uint8Condition", func(t *testing.T) {
		mask, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Uint8, tensor.CPU)
		require.NoError(t, err)
		copy(mask.AsUint8(), []uint8{0, 3, 0, 1})

		out := backend.Where(mask, x, y)
		assert.Equal(t, []float32{-1, 2, -1, 4}, out.AsFloat32())
	})

	t.Run("BadCondition", func(t *testing.T) {
		assert.Panics(t, func() { backend.Where(x, x, y) })
	})
}

func TestCPUBackend_ParallelMatchesSequential(t *testing.T) {
	seq := NewWithConfig(parallel.Sequential())
	par := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8})

	const n = 1003
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = float32(i-n/2) / 50
	}
	x := rawFloat32(t, tensor.Shape{n}, vals...)
	half := rawFloat32(t, tensor.Shape{}, 0.5)

	assert.Equal(t, seq.Sigmoid(x).AsFloat32(), par.Sigmoid(x).AsFloat32())
	assert.Equal(t, seq.MulScalar(x, float32(3)).AsFloat32(), par.MulScalar(x, float32(3)).AsFloat32())
	assert.Equal(t, seq.LogAddExp(x, half).AsFloat32(), par.LogAddExp(x, half).AsFloat32())
	assert.Equal(t, seq.GreaterEqual(x, half).AsBool(), par.GreaterEqual(x, half).AsBool())
}
