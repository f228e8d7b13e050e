//go:build !windows

package main

import "errors"

func applyWebGPU(_ string, _ float32, _ []float32) ([]float32, error) {
	return nil, errors.New("apply: the webgpu backend is only available on windows")
}
