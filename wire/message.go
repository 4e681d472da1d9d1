package wire

import (
	"fmt"

	"github.com/hexaflare/hotfixgrab/registry"
	"github.com/hexaflare/hotfixgrab/schema"
)

// MessageDecoder decodes a buffer against a known message schema. This
// is the counterpart of the schema-less engine for the one payload whose
// layout we do know; unknown fields are skipped rather than guessed at.
type MessageDecoder struct {
	decoder  *Decoder
	registry *registry.Registry
}

// NewMessageDecoder creates a new schema-aware message decoder
func NewMessageDecoder(d *Decoder, reg *registry.Registry) *MessageDecoder {
	return &MessageDecoder{decoder: d, registry: reg}
}

// DecodeMessage decodes protobuf bytes using schema - main entry point
func DecodeMessage(data []byte, msg *schema.Message, reg *registry.Registry) (map[string]interface{}, error) {
	md := NewMessageDecoder(NewDecoder(data), reg)
	return md.decodeMessage(msg)
}

func (md *MessageDecoder) decodeMessage(msg *schema.Message) (map[string]interface{}, error) {
	d := md.decoder
	result := make(map[string]interface{})
	repeatedCollector := make(map[string][]interface{})

	for d.remaining() > 0 {
		vd := NewVarintDecoder(d)
		tag, err := vd.DecodeUint64()
		if err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
		}

		fieldNumber, code := ParseTag(Tag(tag))
		wireType, err := ParseWireType(code)
		if err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
		}

		var field *schema.Field
		for _, f := range msg.Fields {
			if f.Number == int32(fieldNumber) {
				field = f
				break
			}
		}

		if field == nil {
			// Unknown field - skip it
			if err := md.skipField(wireType); err != nil {
				return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
			}
			continue
		}

		value, err := md.decodeField(field, wireType)
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %s: %w", field.Name, err)
		}

		if field.Repeated {
			repeatedCollector[field.Name] = append(repeatedCollector[field.Name], value)
		} else {
			result[field.Name] = value
		}
	}

	for fieldName, repeatedData := range repeatedCollector {
		result[fieldName] = repeatedData
	}

	return result, nil
}

// decodeField routes to the appropriate decoder based on the field type
func (md *MessageDecoder) decodeField(field *schema.Field, wireType WireType) (interface{}, error) {
	switch field.Type.Kind {
	case schema.KindPrimitive:
		return md.decodePrimitive(field.Type.PrimitiveType, wireType)
	case schema.KindMessage:
		return md.decodeNested(field.Type.MessageType)
	default:
		return nil, fmt.Errorf("unsupported field kind %q", field.Type.Kind)
	}
}

// decodeNested decodes a length-delimited embedded message via the
// registry.
func (md *MessageDecoder) decodeNested(messageType string) (interface{}, error) {
	bd := NewBytesDecoder(md.decoder)
	messageBytes, err := bd.DecodeBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to decode message bytes: %w", err)
	}

	if md.registry == nil {
		// No registry available, return raw bytes
		return messageBytes, nil
	}

	msg, err := md.registry.GetMessage(messageType)
	if err != nil {
		// Schema not found, return raw bytes
		return messageBytes, nil
	}

	nested := NewMessageDecoder(NewDecoder(messageBytes), md.registry)
	return nested.decodeMessage(msg)
}

// decodePrimitive decodes a primitive value according to its wire type
func (md *MessageDecoder) decodePrimitive(primitiveType schema.PrimitiveType, wireType WireType) (interface{}, error) {
	d := md.decoder
	switch wireType {
	case WireVarint:
		vd := NewVarintDecoder(d)
		rawValue, err := vd.DecodeUint64()
		if err != nil {
			return nil, err
		}
		switch primitiveType {
		case schema.TypeInt32:
			return int32(rawValue), nil
		case schema.TypeInt64:
			return int64(rawValue), nil
		case schema.TypeUint32:
			return uint32(rawValue), nil
		case schema.TypeUint64:
			return rawValue, nil
		case schema.TypeBool:
			return rawValue != 0, nil
		default:
			return rawValue, nil
		}
	case WireFixed32:
		fd := NewFixedDecoder(d)
		if primitiveType == schema.TypeFloat {
			return fd.DecodeFloat32()
		}
		return fd.DecodeFixed32()
	case WireFixed64:
		fd := NewFixedDecoder(d)
		if primitiveType == schema.TypeDouble {
			return fd.DecodeFloat64()
		}
		return fd.DecodeFixed64()
	case WireBytes:
		bd := NewBytesDecoder(d)
		if primitiveType == schema.TypeString {
			return bd.DecodeString()
		}
		return bd.DecodeBytes()
	default:
		return nil, fmt.Errorf("invalid wire type %d for primitive %s", wireType, primitiveType)
	}
}

// skipField skips a field based on wire type
func (md *MessageDecoder) skipField(wireType WireType) error {
	d := md.decoder
	switch wireType {
	case WireVarint:
		return NewVarintDecoder(d).SkipVarint()
	case WireFixed64:
		_, err := d.read(8)
		return err
	case WireBytes:
		return NewBytesDecoder(d).SkipBytes()
	case WireFixed32:
		_, err := d.read(4)
		return err
	default:
		return &UnsupportedWireTypeError{Code: byte(wireType)}
	}
}
