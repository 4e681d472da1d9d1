// Package schema holds the slim message model the registry builds from
// parsed .proto sources. Only the subset the dispatch payloads need is
// modeled: scalar primitives, strings/bytes, nested messages and
// repeated fields.
package schema

// Message represents a protobuf message definition
type Message struct {
	Name   string   `json:"name"`   // "RegionInfo"
	Fields []*Field `json:"fields"` // message fields
}

// Field represents a message field
type Field struct {
	Name     string    `json:"name"`     // "dispatch_url"
	Number   int32     `json:"number"`   // 4
	Repeated bool      `json:"repeated"` // repeated label
	Type     FieldType `json:"type"`     // field type information
}

// Kind categorizes a field type
type Kind string

const (
	KindPrimitive Kind = "primitive"
	KindMessage   Kind = "message"
)

// PrimitiveType represents protobuf primitive types
type PrimitiveType string

const (
	TypeString  PrimitiveType = "string"
	TypeBytes   PrimitiveType = "bytes"
	TypeInt32   PrimitiveType = "int32"
	TypeInt64   PrimitiveType = "int64"
	TypeUint32  PrimitiveType = "uint32"
	TypeUint64  PrimitiveType = "uint64"
	TypeBool    PrimitiveType = "bool"
	TypeFloat   PrimitiveType = "float"
	TypeDouble  PrimitiveType = "double"
	TypeFixed32 PrimitiveType = "fixed32"
	TypeFixed64 PrimitiveType = "fixed64"
)

// FieldType carries the type information for a field
type FieldType struct {
	Kind          Kind          `json:"kind"`
	PrimitiveType PrimitiveType `json:"primitive_type,omitempty"`
	MessageType   string        `json:"message_type,omitempty"`
}

// IsPrimitiveName reports whether a .proto type name denotes a primitive
// this model supports.
func IsPrimitiveName(name string) bool {
	switch PrimitiveType(name) {
	case TypeString, TypeBytes, TypeInt32, TypeInt64, TypeUint32,
		TypeUint64, TypeBool, TypeFloat, TypeDouble, TypeFixed32, TypeFixed64:
		return true
	default:
		return false
	}
}
