package wire

// BytesDecoder handles length-delimited payload decoding operations
type BytesDecoder struct {
	decoder *Decoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// DecodeBytes decodes a length-delimited byte array: one varint length,
// then exactly that many bytes. The payload is copied so the result does
// not alias the decode buffer.
func (bd *BytesDecoder) DecodeBytes() ([]byte, error) {
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeUint64()
	if err != nil {
		return nil, err
	}
	return bd.decoder.read(int(length))
}

// DecodeString decodes a length-delimited string
func (bd *BytesDecoder) DecodeString() (string, error) {
	data, err := bd.DecodeBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SkipBytes skips over a length-delimited byte array
func (bd *BytesDecoder) SkipBytes() error {
	vd := NewVarintDecoder(bd.decoder)
	length, err := vd.DecodeUint64()
	if err != nil {
		return err
	}

	d := bd.decoder
	if length > uint64(d.remaining()) {
		return ErrBufferExhausted
	}
	d.pos += int(length)
	return nil
}
