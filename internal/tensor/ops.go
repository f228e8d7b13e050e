package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Maximum returns the element-wise maximum of t and other, with broadcasting.
// NaN in either operand propagates.
func (t *Tensor[T, B]) Maximum(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Maximum(t.raw, other.raw), t.backend)
}

// Minimum returns the element-wise minimum of t and other, with broadcasting.
// NaN in either operand propagates.
func (t *Tensor[T, B]) Minimum(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Minimum(t.raw, other.raw), t.backend)
}

// LogAddExp computes log(exp(t) + exp(other)) without overflow, with
// broadcasting.
//
// Example:
//
//	softplus := x.LogAddExp(tensor.Scalar[float32](0, backend))
func (t *Tensor[T, B]) LogAddExp(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.LogAddExp(t.raw, other.raw), t.backend)
}

// MulScalar multiplies every element by scalar.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// AddScalar adds scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// Exp computes e^x element-wise.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	return New[T, B](t.backend.Exp(t.raw), t.backend)
}

// Expm1 computes e^x - 1 element-wise, accurate for x near zero.
func (t *Tensor[T, B]) Expm1() *Tensor[T, B] {
	return New[T, B](t.backend.Expm1(t.raw), t.backend)
}

// Tanh computes the hyperbolic tangent element-wise.
func (t *Tensor[T, B]) Tanh() *Tensor[T, B] {
	return New[T, B](t.backend.Tanh(t.raw), t.backend)
}

// Erf computes the Gauss error function element-wise.
func (t *Tensor[T, B]) Erf() *Tensor[T, B] {
	return New[T, B](t.backend.Erf(t.raw), t.backend)
}

// Sigmoid computes the logistic function 1 / (1 + e^-x) element-wise
// without overflow for large |x|.
func (t *Tensor[T, B]) Sigmoid() *Tensor[T, B] {
	return New[T, B](t.backend.Sigmoid(t.raw), t.backend)
}

// Greater returns a boolean tensor that is true where t > other.
//
// Example:
//
//	positive := x.Greater(tensor.Scalar[float32](0, backend))
func (t *Tensor[T, B]) Greater(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Greater(t.raw, other.raw), t.backend)
}

// GreaterEqual returns a boolean tensor that is true where t >= other.
func (t *Tensor[T, B]) GreaterEqual(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.GreaterEqual(t.raw, other.raw), t.backend)
}

// Where selects x where cond is true and y elsewhere. All three operands
// broadcast against each other.
//
// Example:
//
//	leaky := tensor.Where(x.GreaterEqual(zero), x, x.MulScalar(0.01))
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](x.backend.Where(cond.raw, x.raw, y.raw), x.backend)
}
