//go:build windows

package main

import (
	"fmt"

	"github.com/born-ml/activations/backend/webgpu"
)

func applyWebGPU(name string, threshold float32, values []float32) ([]float32, error) {
	gpu, err := webgpu.New()
	if err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	defer gpu.Release()

	return apply(gpu, name, threshold, values)
}
