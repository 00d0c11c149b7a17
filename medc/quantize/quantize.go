// Package quantize derives quality-scaled quantization matrices and
// applies/reverses them against transform coefficients.
package quantize

import (
	"math"

	"github.com/pkg/errors"
)

// baseTable8 is the canonical 8x8 JPEG-style luminance quantization table,
// carried over from the teacher's DefaultLuminanceQuantTable.
var baseTable8 = [8][8]float64{
	{16, 11, 10, 16, 24, 40, 51, 61},
	{12, 12, 14, 19, 26, 58, 60, 55},
	{14, 13, 16, 24, 40, 57, 69, 56},
	{14, 17, 22, 29, 51, 87, 80, 62},
	{18, 22, 37, 56, 68, 109, 103, 77},
	{24, 35, 55, 64, 81, 104, 113, 92},
	{49, 64, 78, 87, 103, 121, 120, 101},
	{72, 92, 95, 98, 112, 100, 103, 99},
}

// baseTable returns an n x n base quantization table. For n == 8 this is
// the canonical table; for any other size it is derived by bilinear
// resampling of the 8x8 table onto an n x n grid, per the spec's guidance
// that the base table is only natively defined for B=8.
func baseTable(n int) [][]float64 {
	if n == 8 {
		out := make([][]float64, 8)
		for i := range baseTable8 {
			out[i] = append([]float64(nil), baseTable8[i][:]...)
		}
		return out
	}

	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	scale := 7.0 / float64(n-1)
	if n == 1 {
		scale = 0
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = bilinear(float64(i)*scale, float64(j)*scale)
		}
	}
	return out
}

// bilinear samples baseTable8 at fractional coordinates (fi, fj) in [0,7].
func bilinear(fi, fj float64) float64 {
	i0 := int(math.Floor(fi))
	j0 := int(math.Floor(fj))
	i1 := i0 + 1
	j1 := j0 + 1
	if i1 > 7 {
		i1 = 7
	}
	if j1 > 7 {
		j1 = 7
	}
	di := fi - float64(i0)
	dj := fj - float64(j0)

	v00 := baseTable8[i0][j0]
	v01 := baseTable8[i0][j1]
	v10 := baseTable8[i1][j0]
	v11 := baseTable8[i1][j1]

	top := v00*(1-dj) + v01*dj
	bot := v10*(1-dj) + v11*dj
	return top*(1-di) + bot*di
}

// Matrix derives a blockSize x blockSize quantization matrix for the given
// quality ([1,100]) and bitDepth ([8,16]), following the JPEG-style
// quality-to-scale mapping (ScaleQuantTable in the teacher), extended with
// a bit-depth scale factor.
func Matrix(quality, blockSize, bitDepth int) ([][]uint16, error) {
	if quality < 1 || quality > 100 {
		return nil, errors.Errorf("quantize: quality %d out of range [1,100]", quality)
	}
	if blockSize < 2 || blockSize > 255 {
		return nil, errors.Errorf("quantize: block size %d out of range [2,255]", blockSize)
	}
	if bitDepth < 8 || bitDepth > 16 {
		return nil, errors.Errorf("quantize: bit depth %d out of range [8,16]", bitDepth)
	}

	var scale int
	if quality < 50 {
		scale = 5000 / quality
	} else {
		scale = 200 - 2*quality
	}
	bitScale := float64(uint32(1)<<uint(bitDepth)) / 256.0

	base := baseTable(blockSize)
	q := make([][]uint16, blockSize)
	for i := 0; i < blockSize; i++ {
		q[i] = make([]uint16, blockSize)
		for j := 0; j < blockSize; j++ {
			val := math.Floor((base[i][j]*float64(scale)*bitScale + 50) / 100)
			if val < 1 {
				val = 1
			}
			if val > 65535 {
				val = 65535
			}
			q[i][j] = uint16(val)
		}
	}
	return q, nil
}

// Quantize divides each coefficient by its corresponding quantization
// matrix entry, rounding half away from zero (math.Round), and narrows the
// result to int16.
func Quantize(coeffs [][]float64, q [][]uint16) [][]int16 {
	n := len(coeffs)
	out := make([][]int16, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int16, n)
		for j := 0; j < n; j++ {
			out[i][j] = int16(math.Round(coeffs[i][j] / float64(q[i][j])))
		}
	}
	return out
}

// Dequantize multiplies each quantized coefficient by its corresponding
// quantization matrix entry, promoting to int32 to avoid overflow.
func Dequantize(qCoeffs [][]int16, quant [][]uint16) [][]int32 {
	n := len(qCoeffs)
	out := make([][]int32, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int32, n)
		for j := 0; j < n; j++ {
			out[i][j] = int32(qCoeffs[i][j]) * int32(quant[i][j])
		}
	}
	return out
}
