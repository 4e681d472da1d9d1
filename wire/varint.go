package wire

import "math/big"

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder handles varint encoding operations
type VarintEncoder struct {
	encoder *Encoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// NewVarintEncoder creates a new varint encoder
func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// DECODER METHODS

// DecodeVarint decodes a varint from the current position, accumulating
// the low 7 bits of each continuation byte, least-significant group
// first. The accumulator is a big.Int so there is no cap on the number
// of groups consumed; malformed input runs into ErrBufferExhausted via
// the cursor instead.
func (vd *VarintDecoder) DecodeVarint() (*big.Int, error) {
	d := vd.decoder

	result := new(big.Int)
	group := new(big.Int)
	var shift uint

	for {
		if d.pos >= len(d.buf) {
			return nil, ErrBufferExhausted
		}

		b := d.buf[d.pos]
		d.pos++

		group.SetUint64(uint64(b & 0x7F))
		group.Lsh(group, shift)
		result.Or(result, group)

		if (b & 0x80) == 0 {
			return result, nil
		}

		shift += 7
	}
}

// DecodeUint64 decodes a varint and truncates it to its low 64 bits.
// Used for tags and lengths, which are well-formed in that range.
func (vd *VarintDecoder) DecodeUint64() (uint64, error) {
	v, err := vd.DecodeVarint()
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// SkipVarint skips over a varint without decoding it
func (vd *VarintDecoder) SkipVarint() error {
	d := vd.decoder
	for {
		if d.pos >= len(d.buf) {
			return ErrBufferExhausted
		}

		b := d.buf[d.pos]
		d.pos++

		if (b & 0x80) == 0 {
			return nil
		}
	}
}

// ENCODER METHODS

// EncodeVarint encodes a uint64 as varint
func (ve *VarintEncoder) EncodeVarint(v uint64) {
	for v >= 0x80 {
		ve.encoder.buf = append(ve.encoder.buf, byte(v)|0x80)
		v >>= 7
	}
	ve.encoder.buf = append(ve.encoder.buf, byte(v))
}

// EncodeTag encodes a field tag as varint
func (ve *VarintEncoder) EncodeTag(fieldNumber FieldNumber, wireType WireType) {
	ve.EncodeVarint(uint64(MakeTag(fieldNumber, wireType)))
}

// UTILITY FUNCTIONS

// VarintSize reports how many bytes EncodeVarint appends for v. Callers
// sizing buffers ahead of encoding rely on it matching the encoder.
func VarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Convenience methods for direct access

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (*big.Int, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}

// EncodeVarint - convenience method for main encoder
func (e *Encoder) EncodeVarint(v uint64) {
	ve := NewVarintEncoder(e)
	ve.EncodeVarint(v)
}
