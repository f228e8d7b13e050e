//go:build windows

package webgpu

import (
	"github.com/born-ml/activations/internal/tensor"
)

// Add performs element-wise addition.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.binary("add", addShader, a, other, b.host.Add)
}

// Mul performs element-wise multiplication.
func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.binary("mul", mulShader, a, other, b.host.Mul)
}

// Maximum returns the element-wise maximum.
func (b *Backend) Maximum(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.binary("maximum", maximumShader, a, other, b.host.Maximum)
}

// Minimum returns the element-wise minimum.
func (b *Backend) Minimum(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.binary("minimum", minimumShader, a, other, b.host.Minimum)
}

// LogAddExp computes log(exp(a) + exp(other)) element-wise.
func (b *Backend) LogAddExp(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.binary("logaddexp", logAddExpShader, a, other, b.host.LogAddExp)
}

// MulScalar multiplies every element by scalar.
func (b *Backend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	if s, ok := scalar.(float32); ok && onGPU(x.DType(), x.NumElements()) {
		return b.runUnary("mulScalar", mulScalarShader, x, s)
	}
	return b.host.MulScalar(x, scalar).WithDevice(tensor.WebGPU)
}

// AddScalar adds scalar to every element.
func (b *Backend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	if s, ok := scalar.(float32); ok && onGPU(x.DType(), x.NumElements()) {
		return b.runUnary("addScalar", addScalarShader, x, s)
	}
	return b.host.AddScalar(x, scalar).WithDevice(tensor.WebGPU)
}

// Exp computes e^x element-wise.
func (b *Backend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return b.unary("exp", expShader, x, b.host.Exp)
}

// Expm1 computes e^x - 1 element-wise.
func (b *Backend) Expm1(x *tensor.RawTensor) *tensor.RawTensor {
	return b.unary("expm1", expm1Shader, x, b.host.Expm1)
}

// Tanh computes the hyperbolic tangent element-wise.
func (b *Backend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return b.unary("tanh", tanhShader, x, b.host.Tanh)
}

// Erf computes the Gauss error function element-wise.
func (b *Backend) Erf(x *tensor.RawTensor) *tensor.RawTensor {
	return b.unary("erf", erfShader, x, b.host.Erf)
}

// Sigmoid computes the logistic function element-wise.
func (b *Backend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return b.unary("sigmoid", sigmoidShader, x, b.host.Sigmoid)
}

// Greater is evaluated on the host.
func (b *Backend) Greater(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.host.Greater(a, other).WithDevice(tensor.WebGPU)
}

// GreaterEqual is evaluated on the host.
func (b *Backend) GreaterEqual(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.host.GreaterEqual(a, other).WithDevice(tensor.WebGPU)
}

// Where is evaluated on the host.
func (b *Backend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.host.Where(condition, x, y).WithDevice(tensor.WebGPU)
}

func (b *Backend) unary(name, code string, x *tensor.RawTensor, host func(*tensor.RawTensor) *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x.DType(), x.NumElements()) {
		return host(x).WithDevice(tensor.WebGPU)
	}
	return b.runUnary(name, code, x, 0)
}

func (b *Backend) binary(name, code string, a, other *tensor.RawTensor, host func(a, b *tensor.RawTensor) *tensor.RawTensor) *tensor.RawTensor {
	shape, aStep, bStep, ok := binarySteps(a, other)
	if !ok || a.DType() != other.DType() || !onGPU(a.DType(), shape.NumElements()) {
		return host(a, other).WithDevice(tensor.WebGPU)
	}

	result, err := b.dispatch(name, code, shape, binaryParams(shape.NumElements(), aStep, bStep), a, other)
	if err != nil {
		panic("webgpu: " + name + ": " + err.Error())
	}
	return result
}
