// Package imageadapter bridges common single-channel raster file formats
// to and from the (pixels, width, height, bitDepth) contract the medc core
// expects of an image source, and the reconstructed pixels it hands back
// to a sink. It is never imported by medc itself — it is a host-side
// collaborator, exactly the role spec.md reserves for adapters outside the
// core.
package imageadapter

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/tiff"
)

// ReadTIFFGray16 decodes a grayscale TIFF (8 or 16-bit) from r into the
// pixel contract the medc core consumes. Color and multi-component TIFFs
// are rejected, matching the core's single-channel scope.
func ReadTIFFGray16(r io.Reader) (pixels []uint16, width, height, bitDepth int, err error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, 0, 0, 0, errors.Wrap(err, "imageadapter: decoding TIFF")
	}

	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()
	pixels = make([]uint16, width*height)

	switch src := img.(type) {
	case *image.Gray16:
		bitDepth = 16
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixels[y*width+x] = src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y
			}
		}
	case *image.Gray:
		bitDepth = 8
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixels[y*width+x] = uint16(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
	default:
		return nil, 0, 0, 0, errors.New("imageadapter: TIFF is not single-channel grayscale")
	}

	return pixels, width, height, bitDepth, nil
}

// WritePNGGray16 encodes pixels (row-major, width x height, each value
// within [0, 2^bitDepth-1]) as a 16-bit grayscale PNG. The standard
// library's image/png natively supports color.Gray16, so no additional
// dependency is needed on the sink side.
func WritePNGGray16(w io.Writer, pixels []uint16, width, height int) error {
	if len(pixels) != width*height {
		return errors.Errorf("imageadapter: pixel buffer has %d elements, want %d (%dx%d)", len(pixels), width*height, width, height)
	}

	img := image.NewGray16(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: pixels[y*width+x]})
		}
	}

	return png.Encode(w, img)
}
