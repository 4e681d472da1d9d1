package wire

import (
	"encoding/binary"
	"math"
)

// FixedDecoder handles fixed-width decoding operations. The schema-less
// engine stores fixed32/fixed64 payloads as raw bytes and leaves the
// numeric interpretation to consumers; this decoder is that
// interpretation, used by the schema-aware path.
type FixedDecoder struct {
	decoder *Decoder
}

// NewFixedDecoder creates a new fixed decoder
func NewFixedDecoder(d *Decoder) *FixedDecoder {
	return &FixedDecoder{decoder: d}
}

// DecodeFixed32 decodes a 32-bit fixed-width value
func (fd *FixedDecoder) DecodeFixed32() (uint32, error) {
	data, err := fd.decoder.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// DecodeFixed64 decodes a 64-bit fixed-width value
func (fd *FixedDecoder) DecodeFixed64() (uint64, error) {
	data, err := fd.decoder.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// DecodeFloat32 decodes a 32-bit float from fixed32 data
func (fd *FixedDecoder) DecodeFloat32() (float32, error) {
	v, err := fd.DecodeFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeFloat64 decodes a 64-bit float from fixed64 data
func (fd *FixedDecoder) DecodeFloat64() (float64, error) {
	v, err := fd.DecodeFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Fixed32FromBytes interprets a 4-byte raw payload as a little-endian
// uint32. Convenience for consumers of schema-less results.
func Fixed32FromBytes(data []byte) (uint32, bool) {
	if len(data) != 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data), true
}

// Fixed64FromBytes interprets an 8-byte raw payload as a little-endian
// uint64. Convenience for consumers of schema-less results.
func Fixed64FromBytes(data []byte) (uint64, bool) {
	if len(data) != 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data), true
}
