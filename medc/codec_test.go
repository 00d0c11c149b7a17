package medc

import (
	"testing"

	"github.com/cocosip/go-medc-codec/codec"
)

func TestCodecEncodeDecodeRoundTrip(t *testing.T) {
	var c Codec
	pixels := makeGradientImage(16, 16)

	data, err := c.Encode(codec.EncodeParams{
		Pixels:   pixels,
		Width:    16,
		Height:   16,
		BitDepth: 8,
		Options:  &Options{Quality: 80},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	result, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Width != 16 || result.Height != 16 || result.BitDepth != 8 {
		t.Errorf("result shape = (%d,%d,%d), want (16,16,8)", result.Width, result.Height, result.BitDepth)
	}
}

func TestCodecRejectsInvalidOptions(t *testing.T) {
	var c Codec
	pixels := makeGradientImage(8, 8)

	_, err := c.Encode(codec.EncodeParams{
		Pixels:   pixels,
		Width:    8,
		Height:   8,
		BitDepth: 8,
		Options:  &Options{Quality: 0},
	})
	if err == nil {
		t.Error("want error for Quality=0, got nil")
	}
}

func TestCodecIdentifiers(t *testing.T) {
	var c Codec
	if c.ID() != "MEDC" {
		t.Errorf("ID() = %q, want MEDC", c.ID())
	}
	if c.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestCodecRegistration(t *testing.T) {
	codec.Register(Codec{})
	got, err := codec.Get("MEDC")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name() != (Codec{}).Name() {
		t.Errorf("registered codec name mismatch")
	}
}
