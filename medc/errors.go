package medc

import "github.com/pkg/errors"

// Sentinel errors for the codec's failure taxonomy. Callers test with
// errors.Is(err, medc.ErrMalformedFrame) and friends; wrapped context never
// breaks that comparison since github.com/pkg/errors preserves the cause.
var (
	// ErrMalformedFrame covers magic/version mismatch, truncation, and
	// inconsistent length fields in a frame.
	ErrMalformedFrame = errors.New("medc: malformed frame")

	// ErrInvalidCode covers Huffman bits that cannot reach a leaf within
	// the declared bit budget, or an incomplete code table.
	ErrInvalidCode = errors.New("medc: invalid huffman code")

	// ErrDimensionMismatch covers pixel buffers whose length disagrees
	// with the declared width and height, and frames whose quant_len
	// disagrees with block_size^2.
	ErrDimensionMismatch = errors.New("medc: dimension mismatch")

	// ErrArgumentOutOfRange covers quality, block size, bit depth, image
	// dimension, or pixel values outside their contractual ranges, and
	// more than one block size passed to Encode.
	ErrArgumentOutOfRange = errors.New("medc: argument out of range")
)
