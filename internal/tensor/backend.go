package tensor

// Backend is the numeric contract the activation layers are written against.
// Every operation is elementwise, allocates a new result and leaves its
// inputs untouched.
//
// Implementations:
//   - CPU: pure Go, float32 and float64
//   - WebGPU: WGSL compute shaders for float32 (windows)
type Backend interface {
	// Binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Maximum(a, b *RawTensor) *RawTensor
	Minimum(a, b *RawTensor) *RawTensor
	LogAddExp(a, b *RawTensor) *RawTensor // log(exp(a) + exp(b)), overflow-safe

	// Scalar operations. The scalar must have the tensor's Go element type.
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor

	// Unary math.
	Exp(x *RawTensor) *RawTensor
	Expm1(x *RawTensor) *RawTensor // exp(x) - 1, accurate near 0
	Tanh(x *RawTensor) *RawTensor
	Erf(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor // 1 / (1 + exp(-x)), overflow-safe

	// Comparisons with broadcasting; the result dtype is Bool.
	Greater(a, b *RawTensor) *RawTensor
	GreaterEqual(a, b *RawTensor) *RawTensor

	// Where selects x where condition is true and y elsewhere, broadcasting
	// all three operands.
	Where(condition, x, y *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
