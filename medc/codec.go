package medc

import (
	"github.com/cocosip/go-medc-codec/codec"
)

var _ codec.Codec = (*Codec)(nil)
var _ codec.Options = (*Options)(nil)

// Options carries medc's encode-time parameters through the codec.Codec
// interface.
type Options struct {
	Quality   int
	BlockSize int // 0 means defaultBlockSize
}

// Validate checks that Options are within the ranges Encode accepts.
func (o *Options) Validate() error {
	if o.Quality < 1 || o.Quality > 100 {
		return codec.ErrInvalidQuality
	}
	if o.BlockSize != 0 && (o.BlockSize < 2 || o.BlockSize > 255) {
		return codec.ErrInvalidParameter
	}
	return nil
}

// Codec adapts Encode/Decode to the shared codec.Codec interface so it can
// be registered alongside other raster codecs.
type Codec struct{}

// ID returns the short identifier this codec is registered under.
func (Codec) ID() string { return "MEDC" }

// Name returns a human-readable name.
func (Codec) Name() string { return "Medical Raster Codec" }

// Encode implements codec.Codec.
func (Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	opts, ok := params.Options.(*Options)
	if !ok || opts == nil {
		return nil, codec.ErrInvalidParameter
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.BlockSize == 0 {
		return Encode(params.Pixels, params.Width, params.Height, params.BitDepth, opts.Quality)
	}
	return Encode(params.Pixels, params.Width, params.Height, params.BitDepth, opts.Quality, opts.BlockSize)
}

// Decode implements codec.Codec.
func (Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	pixels, width, height, bitDepth, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &codec.DecodeResult{
		Pixels:   pixels,
		Width:    width,
		Height:   height,
		BitDepth: bitDepth,
	}, nil
}
