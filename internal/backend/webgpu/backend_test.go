//go:build windows

package webgpu

import (
	"math"
	"testing"

	"github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	t.Cleanup(backend.Release)
	return backend
}

func raw(t *testing.T, shape tensor.Shape, vals ...float32) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float32, tensor.WebGPU)
	require.NoError(t, err)
	copy(r.AsFloat32(), vals)
	return r
}

func TestIsAvailable(t *testing.T) {
	t.Logf("WebGPU available: %v", IsAvailable())
}

func TestNewReportsUnavailable(t *testing.T) {
	if IsAvailable() {
		t.Skip("WebGPU is available")
	}

	backend, err := New()
	assert.Error(t, err)
	assert.Nil(t, backend)
}

func TestNew(t *testing.T) {
	backend := newTestBackend(t)

	assert.Equal(t, "WebGPU", backend.Name())
	assert.Equal(t, tensor.WebGPU, backend.Device())
}

func TestUnaryMatchesCPU(t *testing.T) {
	backend := newTestBackend(t)
	host := cpu.New()

	vals := make([]float32, 601)
	for i := range vals {
		vals[i] = float32(i-300) / 30
	}
	x := raw(t, tensor.Shape{len(vals)}, vals...)

	tests := []struct {
		name string
		gpu  func(*tensor.RawTensor) *tensor.RawTensor
		cpu  func(*tensor.RawTensor) *tensor.RawTensor
	}{
		{"exp", backend.Exp, host.Exp},
		{"expm1", backend.Expm1, host.Expm1},
		{"tanh", backend.Tanh, host.Tanh},
		{"erf", backend.Erf, host.Erf},
		{"sigmoid", backend.Sigmoid, host.Sigmoid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.gpu(x)
			want := tt.cpu(x).AsFloat32()
			assert.Equal(t, tensor.WebGPU, got.Device())
			for i, g := range got.AsFloat32() {
				tol := 1e-5 * math.Max(1, math.Abs(float64(want[i])))
				assert.InDelta(t, want[i], g, tol, "%s(%v)", tt.name, vals[i])
			}
		})
	}
}

func TestBinaryScalarBroadcast(t *testing.T) {
	backend := newTestBackend(t)
	x := raw(t, tensor.Shape{2, 3}, -3, -1, 0, 1, 2, 3)
	zero := raw(t, tensor.Shape{}, 0)

	assert.Equal(t, []float32{0, 0, 0, 1, 2, 3}, backend.Maximum(x, zero).AsFloat32())
	assert.Equal(t, []float32{-3, -1, 0, 0, 0, 0}, backend.Minimum(zero, x).AsFloat32())
	assert.Equal(t, []float32{-3, -1, 0, 1, 2, 3}, x.AsFloat32())

	lae := backend.LogAddExp(x, zero).AsFloat32()
	for i, v := range []float64{-3, -1, 0, 1, 2, 3} {
		assert.InDelta(t, math.Log1p(math.Exp(v)), lae[i], 1e-5)
	}
}

func TestHostFallback(t *testing.T) {
	backend := newTestBackend(t)
	a := raw(t, tensor.Shape{2, 1}, 1, 2)
	other := raw(t, tensor.Shape{3}, 10, 20, 30)

	out := backend.Add(a, other)
	assert.Equal(t, tensor.WebGPU, out.Device())
	assert.Equal(t, []float32{11, 21, 31, 12, 22, 32}, out.AsFloat32())

	mask := backend.Greater(other, raw(t, tensor.Shape{}, 15))
	assert.Equal(t, []bool{false, true, true}, mask.AsBool())
}

func TestScalarOps(t *testing.T) {
	backend := newTestBackend(t)
	x := raw(t, tensor.Shape{3}, 1, 2, 3)

	assert.Equal(t, []float32{2, 4, 6}, backend.MulScalar(x, float32(2)).AsFloat32())
	assert.Equal(t, []float32{1.5, 2.5, 3.5}, backend.AddScalar(x, float32(0.5)).AsFloat32())
}
