package tensor

import (
	"fmt"
	"unsafe"
)

// Device identifies where a backend executes.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the untyped storage behind a Tensor: a contiguous row-major
// byte buffer plus shape, dtype and device tags. Backends operate on
// RawTensors and always return freshly allocated results.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
	device Device
}

// NewRaw allocates a zero-filled RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's row-major strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the device tag of the tensor.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the buffer size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte buffer.
//
// WARNING: direct access to the underlying memory.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 views the buffer as []float32. Panics if dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	r.mustBe(Float32)
	//nolint:gosec // unsafe.Slice for zero-copy view, length bounded by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 views the buffer as []float64. Panics if dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	r.mustBe(Float64)
	//nolint:gosec // unsafe.Slice for zero-copy view, length bounded by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt32 views the buffer as []int32. Panics if dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	r.mustBe(Int32)
	//nolint:gosec // unsafe.Slice for zero-copy view, length bounded by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt64 views the buffer as []int64. Panics if dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	r.mustBe(Int64)
	//nolint:gosec // unsafe.Slice for zero-copy view, length bounded by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsUint8 views the buffer as []uint8. Panics if dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	r.mustBe(Uint8)
	return r.data
}

// AsBool views the buffer as []bool. Panics if dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	r.mustBe(Bool)
	//nolint:gosec // unsafe.Slice for zero-copy view, length bounded by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Clone returns a deep copy that shares no memory with r.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
	}
}

// WithDevice returns a shallow copy of r tagged with another device. The
// buffer is shared.
func (r *RawTensor) WithDevice(device Device) *RawTensor {
	out := *r
	out.device = device
	return &out
}

func (r *RawTensor) mustBe(dtype DataType) {
	if r.dtype != dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dtype))
	}
}
