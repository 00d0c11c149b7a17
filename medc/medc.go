// Package medc implements a lossy codec for single-channel, high-bit-depth
// medical raster images: pad, block DCT, scalar quantization, zig-zag scan,
// Huffman entropy coding, and a framed container, plus the exact inverse.
//
// The codec is single-threaded and synchronous: no operation blocks on I/O
// or suspends, and no state is shared or cached between calls.
package medc

import (
	"math"

	"github.com/pkg/errors"

	"github.com/cocosip/go-medc-codec/medc/frame"
	"github.com/cocosip/go-medc-codec/medc/huffman"
	"github.com/cocosip/go-medc-codec/medc/quantize"
	"github.com/cocosip/go-medc-codec/medc/transform"
	"github.com/cocosip/go-medc-codec/medc/zigzag"
)

const defaultBlockSize = 8

// Encode compresses a row-major pixel buffer into a self-describing frame.
// blockSize defaults to 8 when omitted; passing more than one value is an
// error.
func Encode(pixels []uint16, width, height, bitDepth, quality int, blockSize ...int) ([]byte, error) {
	b, err := resolveBlockSize(blockSize)
	if err != nil {
		return nil, err
	}
	if err := validateArgs(width, height, bitDepth, quality, b); err != nil {
		return nil, err
	}
	if len(pixels) != width*height {
		return nil, errors.Wrapf(ErrDimensionMismatch, "pixel buffer has %d elements, want %d (%dx%d)", len(pixels), width*height, width, height)
	}
	maxPixel := uint16((1 << uint(bitDepth)) - 1)
	for i, p := range pixels {
		if p > maxPixel {
			return nil, errors.Wrapf(ErrArgumentOutOfRange, "pixel %d has value %d, exceeds max %d for bit depth %d", i, p, maxPixel, bitDepth)
		}
	}

	paddedWidth := ceilDiv(width, b) * b
	paddedHeight := ceilDiv(height, b) * b
	padded := padEdgeReplicate(pixels, width, height, paddedWidth, paddedHeight)

	q, err := quantize.Matrix(quality, b, bitDepth)
	if err != nil {
		return nil, errors.Wrap(ErrArgumentOutOfRange, err.Error())
	}

	blocksX := paddedWidth / b
	blocksY := paddedHeight / b
	order := zigzag.Order(b)

	stream := make([]int16, 0, blocksX*blocksY*b*b)
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			block := extractBlock(padded, paddedWidth, bx*b, by*b, b)
			coeffs := transform.Forward(block)
			qblock := quantize.Quantize(coeffs, q)
			stream = append(stream, zigzag.Flatten(qblock, order)...)
		}
	}

	freq := make(map[int16]uint64, 256)
	for _, s := range stream {
		freq[s]++
	}
	codes := huffman.Build(freq)
	payload, numBits := huffman.Encode(stream, codes)
	table := huffman.Serialize(codes)

	hdr := frame.Header{
		Width:     uint16(width),
		Height:    uint16(height),
		BitDepth:  byte(bitDepth),
		BlockSize: byte(b),
		Quality:   byte(quality),
	}
	quant := flattenQuant(q)

	return frame.Pack(hdr, quant, table, payload, uint32(numBits)), nil
}

// Decode reverses Encode, returning the original-dimension pixel buffer.
// Decode fails fast at the first offending section and never returns a
// partial image.
func Decode(frameBytes []byte) (pixels []uint16, width, height, bitDepth int, err error) {
	hdr, quantFlat, table, payload, numBits, err := frame.Unpack(frameBytes)
	if err != nil {
		if errors.Is(err, frame.ErrQuantLenMismatch) {
			return nil, 0, 0, 0, errors.Wrap(ErrDimensionMismatch, err.Error())
		}
		return nil, 0, 0, 0, errors.Wrap(ErrMalformedFrame, err.Error())
	}

	b := int(hdr.BlockSize)
	width = int(hdr.Width)
	height = int(hdr.Height)
	bitDepth = int(hdr.BitDepth)

	q, err := unflattenQuant(quantFlat, b)
	if err != nil {
		return nil, 0, 0, 0, errors.Wrap(ErrMalformedFrame, err.Error())
	}

	codes, _, err := huffman.Deserialize(table)
	if err != nil {
		return nil, 0, 0, 0, errors.Wrap(ErrInvalidCode, err.Error())
	}

	paddedWidth := ceilDiv(width, b) * b
	paddedHeight := ceilDiv(height, b) * b
	blocksX := paddedWidth / b
	blocksY := paddedHeight / b
	numBlocks := blocksX * blocksY
	numCoeffs := numBlocks * b * b

	stream, err := huffman.Decode(payload, int(numBits), codes, numCoeffs)
	if err != nil {
		return nil, 0, 0, 0, errors.Wrap(ErrInvalidCode, err.Error())
	}

	order := zigzag.Order(b)
	padded := make([]uint16, paddedWidth*paddedHeight)
	maxVal := int32((1 << uint(bitDepth)) - 1)

	idx := 0
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			vec := stream[idx*b*b : (idx+1)*b*b]
			idx++
			qblock := zigzag.Unflatten(vec, order, b)
			coeffs := quantize.Dequantize(qblock, q)
			fcoeffs := toFloat(coeffs)
			recon := transform.Inverse(fcoeffs)
			placeBlock(padded, paddedWidth, bx*b, by*b, b, recon, maxVal)
		}
	}

	pixels = cropUnpad(padded, paddedWidth, width, height)
	return pixels, width, height, bitDepth, nil
}

func resolveBlockSize(blockSize []int) (int, error) {
	switch len(blockSize) {
	case 0:
		return defaultBlockSize, nil
	case 1:
		return blockSize[0], nil
	default:
		return 0, errors.Wrap(ErrArgumentOutOfRange, "at most one block size may be specified")
	}
}

func validateArgs(width, height, bitDepth, quality, blockSize int) error {
	if width <= 0 || height <= 0 || width > 65535 || height > 65535 {
		return errors.Wrapf(ErrArgumentOutOfRange, "dimensions %dx%d out of range", width, height)
	}
	if bitDepth < 8 || bitDepth > 16 {
		return errors.Wrapf(ErrArgumentOutOfRange, "bit depth %d out of range [8,16]", bitDepth)
	}
	if quality < 1 || quality > 100 {
		return errors.Wrapf(ErrArgumentOutOfRange, "quality %d out of range [1,100]", quality)
	}
	if blockSize < 2 || blockSize > 255 {
		return errors.Wrapf(ErrArgumentOutOfRange, "block size %d out of range [2,255]", blockSize)
	}
	return nil
}

func extractBlock(pixels []uint16, stride, x0, y0, b int) [][]float64 {
	block := make([][]float64, b)
	for y := 0; y < b; y++ {
		block[y] = make([]float64, b)
		for x := 0; x < b; x++ {
			block[y][x] = float64(pixels[(y0+y)*stride+(x0+x)])
		}
	}
	return block
}

func placeBlock(dst []uint16, stride, x0, y0, b int, block [][]float64, maxVal int32) {
	for y := 0; y < b; y++ {
		for x := 0; x < b; x++ {
			v := int32(math.Round(block[y][x]))
			if v < 0 {
				v = 0
			}
			if v > maxVal {
				v = maxVal
			}
			dst[(y0+y)*stride+(x0+x)] = uint16(v)
		}
	}
}

func toFloat(coeffs [][]int32) [][]float64 {
	n := len(coeffs)
	out := make([][]float64, n)
	for i := range coeffs {
		out[i] = make([]float64, n)
		for j := range coeffs[i] {
			out[i][j] = float64(coeffs[i][j])
		}
	}
	return out
}

func flattenQuant(q [][]uint16) []uint16 {
	b := len(q)
	out := make([]uint16, 0, b*b)
	for i := range q {
		out = append(out, q[i]...)
	}
	return out
}

func unflattenQuant(flat []uint16, blockSize int) ([][]uint16, error) {
	if len(flat) != blockSize*blockSize {
		return nil, errors.Errorf("quant matrix has %d entries, want %d", len(flat), blockSize*blockSize)
	}
	q := make([][]uint16, blockSize)
	for i := 0; i < blockSize; i++ {
		q[i] = flat[i*blockSize : (i+1)*blockSize]
	}
	return q, nil
}

