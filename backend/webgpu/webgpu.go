//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated activations.
//
// Float32 elementwise math runs in WGSL compute shaders. Comparisons, Where,
// general broadcasting and other dtypes run on the host.
//
// Example:
//
//	import (
//	    "github.com/born-ml/activations/backend/webgpu"
//	    "github.com/born-ml/activations/nn"
//	    "github.com/born-ml/activations/tensor"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    x := tensor.Randn[float32](tensor.Shape{1024, 1024}, gpu)
//	    y := nn.NewSoftplus[*webgpu.Backend]().Forward(x)
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/activations/internal/backend/webgpu"
	"github.com/born-ml/activations/tensor"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// Call Release() when done to free GPU resources. Returns an error if
// WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    defer gpu.Release()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
