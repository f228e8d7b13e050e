package nn_test

import (
	"math"
	"testing"

	"github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/nn"
	"github.com/born-ml/activations/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type B = *cpu.CPUBackend

func fromSlice(t *testing.T, backend B, shape tensor.Shape, vals ...float32) *tensor.Tensor[float32, B] {
	t.Helper()
	x, err := tensor.FromSlice(vals, shape, backend)
	require.NoError(t, err)
	return x
}

func TestActivationValues(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, backend, tensor.Shape{5}, -2, -1, 0, 1, 2)

	tests := []struct {
		layer nn.Module[B]
		want  []float32
	}{
		{nn.NewReLU[B](), []float32{0, 0, 0, 1, 2}},
		{nn.NewParametricReLU[B](2), []float32{0, 0, 0, 2, 4}},
		{nn.NewLeakyReLU[B](nn.DefaultLeakyReLUSlope), []float32{-0.02, -0.01, 0, 1, 2}},
		{nn.NewELU[B](nn.DefaultELUAlpha), []float32{-0.86466473, -0.63212055, 0, 1, 2}},
		{nn.NewSELU[B](nn.DefaultSELUConfig()), []float32{-1.5201665, -1.1113307, 0, 1.0507010, 2.1014020}},
		{nn.NewGELU[B](), []float32{-0.04550026, -0.15865525, 0, 0.84134475, 1.9544997}},
		{nn.NewFastGELU[B](), []float32{-0.04540231, -0.15880801, 0, 0.84119199, 1.9545977}},
		{nn.NewSigmoid[B](), []float32{0.11920292, 0.26894142, 0.5, 0.73105858, 0.88079708}},
		{nn.NewTanh[B](), []float32{-0.96402758, -0.76159416, 0, 0.76159416, 0.96402758}},
		{nn.NewHardSigmoid[B](), []float32{0, 0, 1, 1, 1}},
		{nn.NewHardTanh[B](), []float32{-1, -1, 0, 1, 1}},
		{nn.NewSoftplus[B](), []float32{0.12692801, 0.31326169, 0.69314718, 1.3132616, 2.1269280}},
	}

	for _, tt := range tests {
		t.Run(tt.layer.Name(), func(t *testing.T) {
			got := tt.layer.Forward(x).Data()
			assert.InDeltaSlice(t, tt.want, got, 1e-5)
		})
	}

	// Input untouched by every layer.
	assert.Equal(t, []float32{-2, -1, 0, 1, 2}, x.Data())
}

func TestHardSigmoidRange(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, backend, tensor.Shape{6}, -3, -1, -0.5, 0, 0.5, 3)

	got := nn.NewHardSigmoid[B]().Forward(x).Data()
	assert.Equal(t, []float32{0, 0, 0.5, 1, 1, 1}, got)
}

func TestReLUIdempotent(t *testing.T) {
	backend := cpu.New()
	relu := nn.NewReLU[B]()
	x := tensor.Randn[float32](tensor.Shape{4, 8}, backend)

	once := relu.Forward(x)
	twice := relu.Forward(once)
	assert.Equal(t, once.Data(), twice.Data())

	for i, v := range x.Data() {
		assert.Equal(t, max(v, 0), once.Data()[i])
	}
}

func TestHardTanhIdentityInside(t *testing.T) {
	backend := cpu.New()
	x := tensor.Rand[float32](tensor.Shape{256}, -3, 3, backend)

	got := nn.NewHardTanh[B]().Forward(x).Data()
	for i, v := range x.Data() {
		assert.GreaterOrEqual(t, got[i], float32(-1))
		assert.LessOrEqual(t, got[i], float32(1))
		if v > -1 && v < 1 {
			assert.Equal(t, v, got[i])
		}
	}
}

func TestFixedPoints(t *testing.T) {
	backend := cpu.New()
	zero := tensor.Scalar[float32](0, backend)

	assert.Equal(t, float32(0.5), nn.NewSigmoid[B]().Forward(zero).Item())
	assert.Equal(t, float32(0), nn.NewTanh[B]().Forward(zero).Item())
	assert.InDelta(t, math.Ln2, nn.NewSoftplus[B]().Forward(zero).Item(), 1e-7)
	assert.Equal(t, float32(0), nn.NewSELU[B](nn.DefaultSELUConfig()).Forward(zero).Item())
}

func TestSELUContinuousAtZero(t *testing.T) {
	backend := cpu.New()
	selu := nn.NewSELU[B](nn.DefaultSELUConfig())
	x := fromSlice(t, backend, tensor.Shape{2}, -1e-4, 1e-4)

	got := selu.Forward(x).Data()
	assert.InDelta(t, 0, got[0], 2e-4)
	assert.InDelta(t, 0, got[1], 2e-4)
	assert.Less(t, got[0], float32(0))
	assert.Greater(t, got[1], float32(0))
}

func TestGELUMatchesFastGELU(t *testing.T) {
	backend := cpu.New()
	x := tensor.Linspace[float32](-5, 5, 1001, backend)

	exact := nn.NewGELU[B]().Forward(x).Data()
	fast := nn.NewFastGELU[B]().Forward(x).Data()
	assert.InDeltaSlice(t, exact, fast, 1e-2)
}

func TestLargeMagnitudeStaysFinite(t *testing.T) {
	backend := cpu.New()
	x := fromSlice(t, backend, tensor.Shape{4}, -1e4, -100, 100, 1e4)

	for _, name := range nn.Names() {
		t.Run(name, func(t *testing.T) {
			layer, err := nn.NewActivation(name, backend)
			require.NoError(t, err)
			if initializer, ok := layer.(nn.Initializer); ok {
				require.NoError(t, initializer.InitWeightsAndState(nn.ShapeDtype{Shape: x.Shape(), DType: tensor.Float32}))
			}

			for _, v := range layer.Forward(x).Data() {
				assert.False(t, math.IsNaN(float64(v)), "NaN output")
				assert.False(t, math.IsInf(float64(v), 0), "Inf output")
			}
		})
	}

	sig := nn.NewSigmoid[B]().Forward(x).Data()
	assert.Equal(t, float32(0), sig[0])
	assert.Equal(t, float32(1), sig[3])

	sp := nn.NewSoftplus[B]().Forward(x).Data()
	assert.Equal(t, float32(0), sp[0])
	assert.Equal(t, float32(100), sp[2])
	assert.Equal(t, float32(1e4), sp[3])
}

func TestShapeAndDTypePreserved(t *testing.T) {
	backend := cpu.New()
	shapes := []tensor.Shape{{}, {7}, {2, 3, 4}, {2, 1, 3, 2}}

	for _, name := range nn.Names() {
		layer, err := nn.NewActivation(name, backend)
		require.NoError(t, err)

		for _, shape := range shapes {
			if initializer, ok := layer.(nn.Initializer); ok {
				require.NoError(t, initializer.InitWeightsAndState(nn.ShapeDtype{Shape: shape, DType: tensor.Float32}))
			}

			x := tensor.Randn[float32](shape, backend)
			y := layer.Forward(x)
			assert.Equal(t, shape.Rank(), y.Shape().Rank(), "%s %v", name, shape)
			assert.True(t, shape.Equal(y.Shape()), "%s: %v -> %v", name, shape, y.Shape())
			assert.Equal(t, tensor.Float32, y.DType(), name)
		}
	}
}

func TestFunctionalFormsFloat64(t *testing.T) {
	backend := cpu.New()
	vals := []float64{-3, -0.5, 0, 0.25, 4}
	x, err := tensor.FromSlice(vals, tensor.Shape{len(vals)}, backend)
	require.NoError(t, err)

	gelu := nn.GELUFunc(x).Data()
	softplus := nn.SoftplusFunc(x).Data()
	leaky := nn.LeakyReLUFunc(x, 0.1).Data()
	elu := nn.ELUFunc(x, 2).Data()
	hard := nn.HardSigmoidFunc(x).Data()

	for i, v := range vals {
		assert.InDelta(t, v/2*(1+math.Erf(v/math.Sqrt2)), gelu[i], 1e-12)
		assert.InDelta(t, math.Log1p(math.Exp(v)), softplus[i], 1e-12)
		assert.InDelta(t, math.Max(0, math.Min(1, 1+v)), hard[i], 1e-15)
		if v >= 0 {
			assert.Equal(t, v, leaky[i])
		} else {
			assert.InDelta(t, 0.1*v, leaky[i], 1e-15)
		}
		if v > 0 {
			assert.Equal(t, v, elu[i])
		} else {
			assert.InDelta(t, 2*math.Expm1(v), elu[i], 1e-12)
		}
	}

	assert.Equal(t, tensor.Float64, nn.ReLUFunc(x).DType())
	assert.Equal(t, tensor.Float64, nn.SELUFunc(x, nn.DefaultSELUConfig()).DType())
}

func TestFn(t *testing.T) {
	backend := cpu.New()
	square := nn.NewFn("Square", func(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
		return x.Mul(x)
	})

	x := fromSlice(t, backend, tensor.Shape{3}, -2, 0, 3)
	assert.Equal(t, []float32{4, 0, 9}, square.Forward(x).Data())
	assert.Equal(t, "Square", square.Name())
	assert.Equal(t, "Square", square.String())
	assert.Empty(t, square.Parameters())
	assert.Empty(t, square.StateDict())

	require.NoError(t, square.LoadStateDict(map[string]*tensor.RawTensor{}))
	require.NoError(t, square.LoadStateDict(nil))
	assert.Error(t, square.LoadStateDict(map[string]*tensor.RawTensor{"weight": x.Raw()}))
}

func TestZeroSlopeKeepsNaN(t *testing.T) {
	backend := cpu.New()
	inf := float32(math.Inf(1))
	x := fromSlice(t, backend, tensor.Shape{3}, float32(math.NaN()), inf, -inf)

	prelu := nn.NewParametricReLU[B](0).Forward(x).Data()
	for i, v := range prelu {
		assert.True(t, math.IsNaN(float64(v)), "ParametricRelu index %d: got %v", i, v)
	}

	leaky := nn.NewLeakyReLU[B](0).Forward(x).Data()
	assert.True(t, math.IsNaN(float64(leaky[0])))
	assert.Equal(t, inf, leaky[1])
	assert.True(t, math.IsNaN(float64(leaky[2])))
}
