package tensor

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		panic(err)
	}
	return New[T, B](raw, b)
}

// ZerosLike creates a zero tensor with the shape and backend of t.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return Zeros[T, B](t.Shape(), t.Backend())
}

// Scalar creates a rank-0 tensor holding value. Scalars broadcast against
// tensors of any shape.
//
// Example:
//
//	zero := tensor.Scalar[float32](0, backend)
//	y := x.Maximum(zero)
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return Full[T, B](Shape{}, value, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var one T
	switch p := any(&one).(type) {
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *uint8:
		*p = 1
	case *bool:
		*p = true
	}
	return Full[T, B](shape, one, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor of standard normal samples (Box-Muller).
//
// Note: uses math/rand, not crypto/rand.
func Randn[T constraints.Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rand.Float64() //nolint:gosec // G404: statistical sampling, not security
		u2 := rand.Float64()     //nolint:gosec // G404: statistical sampling, not security
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t
}

// Rand creates a tensor of uniform samples in [low, high).
func Rand[T constraints.Float, B Backend](shape Shape, low, high T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = low + (high-low)*T(rand.Float64()) //nolint:gosec // G404: statistical sampling
	}
	return t
}

// Linspace creates a 1-D tensor of n evenly spaced values from start to end
// inclusive. Panics if n < 1.
//
// Example:
//
//	xs := tensor.Linspace[float32](-5, 5, 101, backend)
func Linspace[T constraints.Float, B Backend](start, end T, n int, b B) *Tensor[T, B] {
	if n < 1 {
		panic("linspace: n must be positive")
	}
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	if n == 1 {
		data[0] = start
		return t
	}
	step := (end - start) / T(n-1)
	for i := range data {
		data[i] = start + T(i)*step
	}
	data[n-1] = end
	return t
}
