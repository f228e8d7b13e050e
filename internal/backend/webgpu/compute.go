//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/born-ml/activations/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
)

// maxWorkgroups is the per-dimension dispatch limit guaranteed by WebGPU.
const maxWorkgroups = 65535

// onGPU reports whether a float32 tensor of n elements fits in a single
// one-dimensional dispatch.
func onGPU(dtype tensor.DataType, n int) bool {
	return dtype == tensor.Float32 && n <= maxWorkgroups*workgroupSize
}

func (b *Backend) getOrCreatePipeline(name, code string) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[name]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if pipeline, exists := b.pipelines[name]; exists {
		return pipeline
	}

	shader := b.device.CreateShaderModuleWGSL(code)
	b.shaders[name] = shader

	// Auto layout (nil) derives bindings from the shader.
	pipeline := b.device.CreateComputePipelineSimple(nil, shader, "main")
	b.pipelines[name] = pipeline
	return pipeline
}

// createBuffer creates a GPU buffer initialized with data.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(mappedPtr), size), data)
	buffer.Unmap()

	return buffer
}

// readBuffer copies a storage buffer back to host memory through a
// MapRead staging buffer.
func (b *Backend) readBuffer(src *wgpu.Buffer, size uint64) ([]byte, error) {
	staging := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := staging.GetMappedRange(0, size)
	out := make([]byte, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(out, unsafe.Slice((*byte)(mappedPtr), size))
	staging.Unmap()

	return out, nil
}

// dispatch binds inputs, a fresh output buffer and the params uniform in
// that order, runs the pipeline over n elements and returns the output.
func (b *Backend) dispatch(name, code string, shape tensor.Shape, params []byte, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	pipeline := b.getOrCreatePipeline(name, code)
	n := shape.NumElements()

	entries := make([]wgpu.BindGroupEntry, 0, len(inputs)+2)
	for i, in := range inputs {
		buf := b.createBuffer(in.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
		defer buf.Release()
		//nolint:gosec // G115: ByteSize is non-negative
		entries = append(entries, wgpu.BufferBindingEntry(uint32(i), buf, 0, uint64(in.ByteSize())))
	}

	//nolint:gosec // G115: n is bounded by onGPU
	resultSize := uint64(n * tensor.Float32.Size())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()
	//nolint:gosec // G115: binding indices are small
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(inputs)), bufferResult, 0, resultSize))

	bufferParams := b.createBuffer(params, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	defer bufferParams.Release()
	//nolint:gosec // G115: binding indices are small
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(inputs)+1), bufferParams, 0, uint64(len(params))))

	bindGroup := b.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), entries)
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115: bounded by maxWorkgroups
	pass.DispatchWorkgroups(uint32((n+workgroupSize-1)/workgroupSize), 1, 1)
	pass.End()
	b.queue.Submit(encoder.Finish(nil))

	data, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(shape, tensor.Float32, tensor.WebGPU)
	if err != nil {
		return nil, err
	}
	copy(result.Data(), data)
	return result, nil
}

// unaryParams packs struct Params { size: u32, scalar: f32 } into a
// 16-byte uniform.
func unaryParams(n int, scalar float32) []byte {
	params := make([]byte, 16)
	//nolint:gosec // G115: n is bounded by onGPU
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	binary.LittleEndian.PutUint32(params[4:8], math.Float32bits(scalar))
	return params
}

// binaryParams packs struct Params { size: u32, a_step: u32, b_step: u32 }.
// A step of 0 reads element 0 for every index.
func binaryParams(n int, aStep, bStep uint32) []byte {
	params := make([]byte, 16)
	//nolint:gosec // G115: n is bounded by onGPU
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	binary.LittleEndian.PutUint32(params[4:8], aStep)
	binary.LittleEndian.PutUint32(params[8:12], bStep)
	return params
}

func (b *Backend) runUnary(name, code string, x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	result, err := b.dispatch(name, code, x.Shape(), unaryParams(x.NumElements(), scalar), x)
	if err != nil {
		panic("webgpu: " + name + ": " + err.Error())
	}
	return result
}

// binarySteps returns the per-operand index steps for a GPU binary op:
// same shape, or one side holding a single element. ok is false for any
// other broadcast.
func binarySteps(a, other *tensor.RawTensor) (shape tensor.Shape, aStep, bStep uint32, ok bool) {
	switch {
	case a.Shape().Equal(other.Shape()):
		return a.Shape(), 1, 1, true
	case other.NumElements() == 1 && a.Shape().Rank() >= other.Shape().Rank():
		return a.Shape(), 1, 0, true
	case a.NumElements() == 1 && other.Shape().Rank() >= a.Shape().Rank():
		return other.Shape(), 0, 1, true
	default:
		return nil, 0, 0, false
	}
}
