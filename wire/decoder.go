package wire

// DefaultMaxDepth bounds recursion over nested messages. The sub-buffer
// shrinking at each level bounds total work but not depth, so crafted
// input could otherwise grow the call stack one frame per enclosing
// length-delimited field.
const DefaultMaxDepth = 64

// Decoder handles schema-less protobuf wire format decoding. It owns a
// private cursor over its buffer; nested decodes get their own Decoder
// over the sub-slice.
type Decoder struct {
	buf      []byte
	pos      int
	maxDepth int
}

// NewDecoder creates a new wire format decoder with DefaultMaxDepth.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf:      data,
		pos:      0,
		maxDepth: DefaultMaxDepth,
	}
}

// NewDecoderWithMaxDepth creates a decoder with an explicit nesting cap.
func NewDecoderWithMaxDepth(data []byte, maxDepth int) *Decoder {
	return &Decoder{
		buf:      data,
		pos:      0,
		maxDepth: maxDepth,
	}
}

// remaining returns the number of unread bytes.
func (d *Decoder) remaining() int {
	return len(d.buf) - d.pos
}

// read consumes exactly n bytes, copied out of the underlying buffer.
// The bounds check compares against the remaining length so a declared
// length near MaxInt64 cannot overflow past it.
func (d *Decoder) read(n int) ([]byte, error) {
	if n < 0 || n > len(d.buf)-d.pos {
		return nil, ErrBufferExhausted
	}
	data := make([]byte, n)
	copy(data, d.buf[d.pos:d.pos+n])
	d.pos += n
	return data, nil
}

// Decode runs the field loop over the whole buffer - main entry point.
//
// Length-delimited payloads are ambiguous between raw bytes, text and an
// embedded message. The engine always attempts a full recursive decode of
// the payload first; if that attempt fails for any reason the field is
// recorded as opaque bytes instead. The fallback is strictly local to the
// one field: errors at the top level, or at any level that is not itself
// a nested attempt, propagate to the caller and abort the whole decode.
func (d *Decoder) Decode() (*Result, error) {
	return d.decode(0)
}

func (d *Decoder) decode(depth int) (*Result, error) {
	fields := make([]Field, 0)

	for d.remaining() > 0 {
		vd := NewVarintDecoder(d)
		tag, err := vd.DecodeUint64()
		if err != nil {
			return nil, err
		}

		fieldNumber, code := ParseTag(Tag(tag))
		wireType, err := ParseWireType(code)
		if err != nil {
			return nil, err
		}

		var value Value
		isMessage := false

		switch wireType {
		case WireVarint:
			v, err := vd.DecodeVarint()
			if err != nil {
				return nil, err
			}
			value = Value{Kind: KindInteger, Int: v}

		case WireFixed64:
			data, err := d.read(8)
			if err != nil {
				return nil, err
			}
			value = Value{Kind: KindBytes, Bytes: data}

		case WireFixed32:
			data, err := d.read(4)
			if err != nil {
				return nil, err
			}
			value = Value{Kind: KindBytes, Bytes: data}

		case WireBytes:
			payload, err := NewBytesDecoder(d).DecodeBytes()
			if err != nil {
				return nil, err
			}
			if nested, err := d.tryNested(payload, depth+1); err == nil {
				isMessage = true
				value = Value{Kind: KindNested, Nested: nested}
			} else {
				value = Value{Kind: KindBytes, Bytes: payload}
			}

		default:
			// group markers classify but never decode
			return nil, &UnsupportedWireTypeError{Code: code}
		}

		fields = append(fields, Field{
			Number:    fieldNumber,
			WireType:  wireType,
			IsMessage: isMessage,
			Value:     value,
		})
	}

	return &Result{
		Fields:      fields,
		Unprocessed: []byte{},
	}, nil
}

// tryNested attempts to decode a length-delimited payload as a complete
// message of its own.
func (d *Decoder) tryNested(payload []byte, depth int) (*Result, error) {
	if depth >= d.maxDepth {
		return nil, ErrDepthExceeded
	}
	nested := &Decoder{
		buf:      payload,
		maxDepth: d.maxDepth,
	}
	return nested.decode(depth)
}
