// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// ParallelConfig controls how large kernels are split across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend using DefaultParallelConfig.
//
// Example:
//
//	import (
//	    "github.com/born-ml/activations/backend/cpu"
//	    "github.com/born-ml/activations/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit parallelism config.
//
// Example:
//
//	backend := cpu.NewWithConfig(cpu.SequentialConfig())
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultParallelConfig returns one worker per CPU with a 4096-element
// minimum chunk.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a config that runs every kernel on the calling
// goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
