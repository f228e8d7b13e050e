package cpu

import (
	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

// computeBroadcastStridesForShape computes strides for reading an operand
// of inShape while iterating outShape. Broadcast and padded dimensions get
// stride 0.
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// computeFlatIndex maps a flat output index to a flat operand index.
// outStrides are the row-major strides of the output shape, inStrides the
// broadcast-adjusted strides of the operand.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

// applyUnary writes f(src[i]) into dst.
func applyUnary[T, R any](dst []R, src []T, f func(T) R, cfg parallel.Config) {
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	}, cfg)
}

// applyBinary writes f(a, b) into dst, broadcasting a and b to outShape.
// Same-shape and scalar operands take direct-index fast paths.
func applyBinary[T, R any](
	dst []R, a, b []T,
	aShape, bShape, outShape tensor.Shape,
	f func(x, y T) R, cfg parallel.Config,
) {
	n := len(dst)

	switch {
	case aShape.Equal(outShape) && bShape.Equal(outShape):
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(a[i], b[i])
			}
		}, cfg)
	case len(b) == 1 && aShape.Equal(outShape):
		y := b[0]
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(a[i], y)
			}
		}, cfg)
	case len(a) == 1 && bShape.Equal(outShape):
		x := a[0]
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(x, b[i])
			}
		}, cfg)
	default:
		outStrides := outShape.ComputeStrides()
		aStrides := computeBroadcastStridesForShape(aShape, outShape)
		bStrides := computeBroadcastStridesForShape(bShape, outShape)
		parallel.ForRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(a[computeFlatIndex(i, outStrides, aStrides)], b[computeFlatIndex(i, outStrides, bStrides)])
			}
		}, cfg)
	}
}

// applyWhere writes x where cond is true and y elsewhere, broadcasting all
// operands to outShape.
func applyWhere[T any](
	dst []T, cond []bool, x, y []T,
	condShape, xShape, yShape, outShape tensor.Shape,
	cfg parallel.Config,
) {
	outStrides := outShape.ComputeStrides()
	cStrides := computeBroadcastStridesForShape(condShape, outShape)
	xStrides := computeBroadcastStridesForShape(xShape, outShape)
	yStrides := computeBroadcastStridesForShape(yShape, outShape)

	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			if cond[computeFlatIndex(i, outStrides, cStrides)] {
				dst[i] = x[computeFlatIndex(i, outStrides, xStrides)]
			} else {
				dst[i] = y[computeFlatIndex(i, outStrides, yStrides)]
			}
		}
	}, cfg)
}
