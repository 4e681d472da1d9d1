package wire

import (
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestSimplify_Labels(t *testing.T) {
	tests := []struct {
		wt   WireType
		want string
	}{
		{wt: WireVarint, want: "varint"},
		{wt: WireFixed64, want: "i64"},
		{wt: WireBytes, want: "len"},
		{wt: WireFixed32, want: "i32"},
		{wt: WireStartGroup, want: "unknown"},
		{wt: WireEndGroup, want: "unknown"},
	}

	for _, tc := range tests {
		if got := tc.wt.Label(); got != tc.want {
			t.Errorf("Label(%d) = %q, want %q", tc.wt, got, tc.want)
		}
	}
}

func TestSimplify_Values(t *testing.T) {
	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 150)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendString(buf, "https://example.invalid/asb/")
	buf = protowire.AppendTag(buf, 3, protowire.BytesType)
	buf = protowire.AppendBytes(buf, []byte{0xFF, 0xFE, 0x01})

	result, err := NewDecoder(buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	simplified := Simplify(result)
	if len(simplified.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(simplified.Fields))
	}

	if f := simplified.Fields[0]; f.WireType != "varint" || f.Value != "150" {
		t.Errorf("varint field rendered as %+v", f)
	}
	if f := simplified.Fields[1]; f.Value != "https://example.invalid/asb/" {
		t.Errorf("text payload rendered as %q", f.Value)
	}
	// invalid UTF-8 keeps the literal byte listing
	if f := simplified.Fields[2]; f.Value != "[255 254 1]" {
		t.Errorf("binary payload rendered as %q", f.Value)
	}
}

func TestSimplify_NestedRecursion(t *testing.T) {
	inner := protowire.AppendTag(nil, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, 5)

	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.BytesType)
	buf = protowire.AppendBytes(buf, inner)

	result, err := NewDecoder(buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	simplified := Simplify(result)
	f := simplified.Fields[0]
	if !f.IsMessage || f.Nested == nil {
		t.Fatalf("expected nested simplified result, got %+v", f)
	}
	if f.Value != "" {
		t.Errorf("nested field should carry no text value, got %q", f.Value)
	}
	if nf := f.Nested.Fields[0]; nf.WireType != "varint" || nf.Value != "5" {
		t.Errorf("nested field rendered as %+v", nf)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 42)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendString(buf, "twice")

	result, err := NewDecoder(buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	first := Simplify(result)
	second := Simplify(result)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("simplify is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
