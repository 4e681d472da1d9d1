package wire

import "math/big"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // group start (deprecated, never decoded)
	WireEndGroup   WireType = 4 // group end (deprecated, never decoded)
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// Label returns the short display name used by the simplify pass.
func (wt WireType) Label() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "i64"
	case WireBytes:
		return "len"
	case WireFixed32:
		return "i32"
	default:
		return "unknown"
	}
}

// ParseWireType maps a raw tag discriminant to a WireType. Codes 3 and 4
// (groups) are legal tag values and classify successfully; everything
// outside 0..5 fails.
func ParseWireType(code byte) (WireType, error) {
	switch code {
	case 0, 1, 2, 3, 4, 5:
		return WireType(code), nil
	default:
		return 0, &UnsupportedWireTypeError{Code: code}
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber uint32

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag splits a tag into field number and raw wire type code
func ParseTag(tag Tag) (FieldNumber, byte) {
	return FieldNumber(tag >> 3), byte(tag & 0x7)
}

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	KindInteger ValueKind = iota + 1 // varint payload
	KindBytes                        // fixed32/fixed64/opaque length-delimited payload
	KindNested                       // length-delimited payload decoded as a message
)

// Value is the tagged union of decoded field payloads. Exactly one of
// Int, Bytes or Nested is set, according to Kind.
type Value struct {
	Kind   ValueKind
	Int    *big.Int
	Bytes  []byte
	Nested *Result
}

// Field is one decoded field: its number, its wire type, whether the
// payload parsed as an embedded message, and the payload itself.
type Field struct {
	Number    FieldNumber
	WireType  WireType
	IsMessage bool
	Value     Value
}

// Result is the ordered outcome of a decode: fields in encounter order
// (repeated field numbers appear repeatedly) plus any bytes the field
// loop did not consume. A Result is never mutated after Decode returns.
type Result struct {
	Fields      []Field
	Unprocessed []byte
}
