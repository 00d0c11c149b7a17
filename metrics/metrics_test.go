package metrics

import (
	"math"
	"testing"
)

func TestCalculateIdenticalBuffersInfinitePSNR(t *testing.T) {
	buf := []uint16{10, 20, 30, 40}
	r, err := Calculate(buf, buf, 8)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if r.MSE != 0 || r.RMSE != 0 {
		t.Errorf("MSE/RMSE = %v/%v, want 0/0", r.MSE, r.RMSE)
	}
	if !math.IsInf(r.PSNR, 1) {
		t.Errorf("PSNR = %v, want +Inf", r.PSNR)
	}
}

func TestCalculateKnownMSE(t *testing.T) {
	original := []uint16{0, 0, 0, 0}
	reconstructed := []uint16{2, 2, 2, 2}
	r, err := Calculate(original, reconstructed, 8)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if r.MSE != 4 {
		t.Errorf("MSE = %v, want 4", r.MSE)
	}
	if r.RMSE != 2 {
		t.Errorf("RMSE = %v, want 2", r.RMSE)
	}
}

func TestCalculateLengthMismatch(t *testing.T) {
	if _, err := Calculate([]uint16{1, 2}, []uint16{1}, 8); err == nil {
		t.Error("want error on length mismatch, got nil")
	}
}
