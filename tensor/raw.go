// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/activations/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Type-safe data access via AsFloat32(), AsBool(), etc.
//   - Deep copies via Clone()
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{}, tensor.Float32, tensor.CPU)
//	raw.AsFloat32()[0] = 0.5
//	err := tlu.LoadStateDict(map[string]*tensor.RawTensor{"weight": raw})
type RawTensor = tensor.RawTensor
