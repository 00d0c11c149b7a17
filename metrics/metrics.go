// Package metrics computes rate-distortion quality metrics (RMSE, PSNR)
// between an original and a reconstructed pixel buffer. It sits outside
// the medc core — spec.md treats quality-metric computation as a host
// collaborator, not a first-class codec feature — and is grounded on
// original_source's calculate_metrics.
package metrics

import (
	"math"

	"github.com/pkg/errors"
)

// Result holds the distortion metrics for one original/reconstructed pair.
type Result struct {
	MSE  float64
	RMSE float64
	PSNR float64 // +Inf when original == reconstructed exactly
}

// Calculate computes MSE, RMSE, and PSNR between original and reconstructed,
// which must have equal length and represent samples at the given bit
// depth.
func Calculate(original, reconstructed []uint16, bitDepth int) (Result, error) {
	if len(original) != len(reconstructed) {
		return Result{}, errors.Errorf("metrics: buffer length mismatch (%d vs %d)", len(original), len(reconstructed))
	}
	if len(original) == 0 {
		return Result{}, errors.New("metrics: empty buffers")
	}

	var sumSq float64
	for i := range original {
		d := float64(original[i]) - float64(reconstructed[i])
		sumSq += d * d
	}
	mse := sumSq / float64(len(original))
	rmse := math.Sqrt(mse)

	maxVal := float64((uint32(1) << uint(bitDepth)) - 1)
	psnr := math.Inf(1)
	if mse != 0 {
		psnr = 20 * math.Log10(maxVal/rmse)
	}

	return Result{MSE: mse, RMSE: rmse, PSNR: psnr}, nil
}
