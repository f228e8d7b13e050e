// Package cpu implements the pure Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor.Backend on the host CPU. Large elementwise
// kernels are split across goroutines according to its parallel.Config.
//
// CPUBackend holds no mutable state and is safe for concurrent use.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a CPU backend with parallel.DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallelism config.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Parallel returns the parallelism config used by the kernels.
func (cpu *CPUBackend) Parallel() parallel.Config {
	return cpu.par
}

func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

func unsupported(op string, dtype tensor.DataType) string {
	return fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, dtype)
}
