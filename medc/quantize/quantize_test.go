package quantize

import "testing"

func TestMatrixBounds(t *testing.T) {
	q, err := Matrix(75, 8, 8)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	for i := range q {
		for j := range q[i] {
			if q[i][j] < 1 || q[i][j] > 65535 {
				t.Errorf("q[%d][%d] = %d out of range", i, j, q[i][j])
			}
		}
	}
}

func TestMatrixQuality100MinimumFloor(t *testing.T) {
	q, err := Matrix(100, 8, 8)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	// scale=0 at quality 100, so every entry should clip up to the
	// minimum floor of 1, per the spec's documented quirk.
	for i := range q {
		for j := range q[i] {
			if q[i][j] != 1 {
				t.Errorf("q[%d][%d] = %d, want 1 at quality 100", i, j, q[i][j])
			}
		}
	}
}

func TestMatrixInvalidArguments(t *testing.T) {
	cases := []struct {
		quality, blockSize, bitDepth int
	}{
		{0, 8, 8},
		{101, 8, 8},
		{50, 1, 8},
		{50, 256, 8},
		{50, 8, 7},
		{50, 8, 17},
	}
	for _, c := range cases {
		if _, err := Matrix(c.quality, c.blockSize, c.bitDepth); err == nil {
			t.Errorf("Matrix(%d,%d,%d): want error, got nil", c.quality, c.blockSize, c.bitDepth)
		}
	}
}

func TestQuantizeDequantizeRoundTripApprox(t *testing.T) {
	q := [][]uint16{{2, 2}, {2, 2}}
	coeffs := [][]float64{{10, -11}, {5, 0.4}}

	qc := Quantize(coeffs, q)
	deq := Dequantize(qc, q)

	want := [][]int32{{10, -12}, {6, 0}}
	for i := range want {
		for j := range want[i] {
			if deq[i][j] != want[i][j] {
				t.Errorf("deq[%d][%d] = %d, want %d", i, j, deq[i][j], want[i][j])
			}
		}
	}
}

func TestBlockSizeOtherThan8Derived(t *testing.T) {
	q, err := Matrix(75, 16, 8)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if len(q) != 16 || len(q[0]) != 16 {
		t.Fatalf("matrix dims = %dx%d, want 16x16", len(q), len(q[0]))
	}
}
