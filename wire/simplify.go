package wire

import (
	"fmt"
	"unicode/utf8"
)

// SimplifiedField is the display projection of a Field: the wire type as
// a label string and any non-nested value as text.
type SimplifiedField struct {
	Number    FieldNumber       `json:"field"`
	WireType  string            `json:"wire_type"`
	IsMessage bool              `json:"is_message"`
	Value     string            `json:"value,omitempty"`
	Nested    *SimplifiedResult `json:"nested,omitempty"`
}

// SimplifiedResult is the display projection of a Result.
type SimplifiedResult struct {
	Fields []SimplifiedField `json:"fields"`
}

// Simplify renders a Result as a SimplifiedResult, depth-first. The
// transform is lossy and has no error conditions; it never mutates the
// input, so running it twice yields identical trees.
func Simplify(res *Result) *SimplifiedResult {
	out := &SimplifiedResult{
		Fields: make([]SimplifiedField, 0, len(res.Fields)),
	}

	for _, field := range res.Fields {
		sf := SimplifiedField{
			Number:    field.Number,
			WireType:  field.WireType.Label(),
			IsMessage: field.IsMessage,
		}
		if field.IsMessage {
			sf.Nested = Simplify(field.Value.Nested)
		} else {
			sf.Value = renderValue(field.Value)
		}
		out.Fields = append(out.Fields, sf)
	}

	return out
}

// renderValue converts a non-nested value to text. Integers render in
// decimal. Byte payloads that hold valid UTF-8 render as the decoded
// text directly; anything else falls back to a literal byte listing.
func renderValue(v Value) string {
	switch v.Kind {
	case KindInteger:
		return v.Int.String()
	case KindBytes:
		if utf8.Valid(v.Bytes) {
			return string(v.Bytes)
		}
		return fmt.Sprintf("%v", v.Bytes)
	default:
		return ""
	}
}
