package medc

// padEdgeReplicate pads a height x width row-major pixel buffer up to
// paddedHeight x paddedWidth by replicating the last row/column, so smooth
// images do not acquire a DC discontinuity at the padded boundary (zero
// fill would introduce one). Grounded on original_source's pad_image.
func padEdgeReplicate(pixels []uint16, width, height, paddedWidth, paddedHeight int) []uint16 {
	out := make([]uint16, paddedWidth*paddedHeight)
	for y := 0; y < paddedHeight; y++ {
		srcY := y
		if srcY >= height {
			srcY = height - 1
		}
		for x := 0; x < paddedWidth; x++ {
			srcX := x
			if srcX >= width {
				srcX = width - 1
			}
			out[y*paddedWidth+x] = pixels[srcY*width+srcX]
		}
	}
	return out
}

// cropUnpad extracts the top-left width x height region from a
// paddedWidth-wide row-major buffer, the inverse of padEdgeReplicate's
// shape change (not its value change, which is lossy by construction).
func cropUnpad(padded []uint16, paddedWidth, width, height int) []uint16 {
	out := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		copy(out[y*width:(y+1)*width], padded[y*paddedWidth:y*paddedWidth+width])
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
