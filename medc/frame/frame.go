// Package frame packs and unpacks the self-describing byte container that
// carries a single encoded image, generalizing the teacher's marker-segment
// writer/reader into a fixed header plus three length-prefixed sections.
package frame

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var magic = [4]byte{'M', 'E', 'D', 'C'}

const version = 0x01

// ErrQuantLenMismatch is returned by Unpack when the frame's declared
// quant_len disagrees with block_size^2, so callers can surface this as a
// dimension error distinct from the generic malformed-frame cases.
var ErrQuantLenMismatch = errors.New("frame: quant_len does not equal block_size^2")

// Header carries the fixed-width fields preceding the variable-length
// sections of a frame.
type Header struct {
	Width     uint16
	Height    uint16
	BitDepth  byte
	BlockSize byte
	Quality   byte
}

// Pack serializes hdr, the quantization matrix, the serialized Huffman
// table, and the payload into a single frame buffer, per the fixed header
// followed by three length-prefixed sections layout.
func Pack(hdr Header, quant []uint16, table []byte, payload []byte, numBits uint32) []byte {
	buf := make([]byte, 0, 14+2*len(quant)+2+len(table)+8+len(payload))

	buf = append(buf, magic[:]...)
	buf = append(buf, version)
	buf = appendUint16(buf, hdr.Width)
	buf = appendUint16(buf, hdr.Height)
	buf = append(buf, hdr.BitDepth, hdr.BlockSize, hdr.Quality)

	buf = appendUint16(buf, uint16(len(quant)))
	for _, q := range quant {
		buf = appendUint16(buf, q)
	}

	buf = appendUint16(buf, uint16(len(table)))
	buf = append(buf, table...)

	buf = appendUint32(buf, numBits)
	buf = appendUint32(buf, uint32(len(payload)))
	buf = append(buf, payload...)

	return buf
}

// Unpack parses a frame produced by Pack, returning the header, the
// quantization matrix, the serialized Huffman table bytes, the payload,
// and the number of meaningful payload bits. Any truncation, magic/version
// mismatch, or length inconsistency yields ErrMalformedFrame-compatible
// errors via the returned error (callers compare with errors.Is against the
// sentinel their package defines; frame itself returns plain wrapped
// errors describing the defect).
func Unpack(data []byte) (Header, []uint16, []byte, []byte, uint32, error) {
	var hdr Header

	if len(data) < 14 {
		return hdr, nil, nil, nil, 0, errors.New("frame: truncated before fixed header")
	}
	if data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] || data[3] != magic[3] {
		return hdr, nil, nil, nil, 0, errors.New("frame: magic mismatch")
	}
	if data[4] != version {
		return hdr, nil, nil, nil, 0, errors.Errorf("frame: unsupported version %d", data[4])
	}

	hdr.Width = binary.BigEndian.Uint16(data[5:7])
	hdr.Height = binary.BigEndian.Uint16(data[7:9])
	hdr.BitDepth = data[9]
	hdr.BlockSize = data[10]
	hdr.Quality = data[11]
	quantLen := int(binary.BigEndian.Uint16(data[12:14]))

	want := int(hdr.BlockSize) * int(hdr.BlockSize)
	if quantLen != want {
		return hdr, nil, nil, nil, 0, errors.Wrapf(ErrQuantLenMismatch, "got %d, want %d", quantLen, want)
	}

	pos := 14
	if pos+2*quantLen > len(data) {
		return hdr, nil, nil, nil, 0, errors.New("frame: truncated quantization matrix")
	}
	quant := make([]uint16, quantLen)
	for i := 0; i < quantLen; i++ {
		quant[i] = binary.BigEndian.Uint16(data[pos : pos+2])
		pos += 2
	}

	if pos+2 > len(data) {
		return hdr, nil, nil, nil, 0, errors.New("frame: truncated before huff_len")
	}
	huffLen := int(binary.BigEndian.Uint16(data[pos : pos+2]))
	pos += 2
	if pos+huffLen > len(data) {
		return hdr, nil, nil, nil, 0, errors.New("frame: truncated huffman table")
	}
	table := data[pos : pos+huffLen]
	pos += huffLen

	if pos+8 > len(data) {
		return hdr, nil, nil, nil, 0, errors.New("frame: truncated before payload length fields")
	}
	numBits := binary.BigEndian.Uint32(data[pos : pos+4])
	pos += 4
	payloadLen := int(binary.BigEndian.Uint32(data[pos : pos+4]))
	pos += 4

	if pos+payloadLen > len(data) {
		return hdr, nil, nil, nil, 0, errors.New("frame: truncated payload")
	}
	payload := data[pos : pos+payloadLen]

	return hdr, quant, table, payload, numBits, nil
}

func appendUint16(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}

func appendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}
