// Package registry stores the schema of known protobuf messages. The
// dispatch response is decoded against a schema carried in the binary;
// everything else goes through the schema-less decoder.
package registry

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	"github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/hexaflare/hotfixgrab/schema"
)

// Registry maps fully qualified message names to their definitions. We
// look these up when decoding a payload with a known schema.
type Registry struct {
	messages map[string]*schema.Message
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		messages: make(map[string]*schema.Message),
	}
}

// LoadFile parses a single .proto file into the registry.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open proto file: %w", err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return fmt.Errorf("failed to load proto file %s: %w", path, err)
	}
	return nil
}

// Load parses .proto source from a reader and registers every message it
// defines, nested messages included, under their fully qualified names.
func (r *Registry) Load(src io.Reader) error {
	parsed, err := protoparser.Parse(src)
	if err != nil {
		return fmt.Errorf("failed to parse proto source: %w", err)
	}

	var pkg string
	for _, visitee := range parsed.ProtoBody {
		if p, ok := visitee.(*parser.Package); ok {
			pkg = p.Name
		}
	}

	for _, visitee := range parsed.ProtoBody {
		msg, ok := visitee.(*parser.Message)
		if !ok {
			continue
		}
		if err := r.registerMessage(pkg, msg); err != nil {
			return err
		}
	}

	return nil
}

// registerMessage converts one parsed message (and its nested messages,
// depth-first) into the slim schema model.
func (r *Registry) registerMessage(prefix string, msg *parser.Message) error {
	fullName := fullName(prefix, msg.MessageName)

	out := &schema.Message{
		Name:   msg.MessageName,
		Fields: make([]*schema.Field, 0, len(msg.MessageBody)),
	}

	for _, body := range msg.MessageBody {
		switch b := body.(type) {
		case *parser.Field:
			field, err := r.convertField(fullName, b)
			if err != nil {
				return err
			}
			out.Fields = append(out.Fields, field)
		case *parser.Message:
			if err := r.registerMessage(fullName, b); err != nil {
				return err
			}
		}
	}

	r.messages[fullName] = out
	return nil
}

// convertField maps a parsed field to the schema model. Message type
// references keep the name as written; GetMessage resolves unqualified
// names at lookup time.
func (r *Registry) convertField(parent string, f *parser.Field) (*schema.Field, error) {
	number, err := strconv.ParseInt(f.FieldNumber, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid field number %q for field %s: %w", f.FieldNumber, f.FieldName, err)
	}

	fieldType := schema.FieldType{}
	if schema.IsPrimitiveName(f.Type) {
		fieldType.Kind = schema.KindPrimitive
		fieldType.PrimitiveType = schema.PrimitiveType(f.Type)
	} else {
		fieldType.Kind = schema.KindMessage
		fieldType.MessageType = strings.TrimPrefix(f.Type, ".")
	}

	return &schema.Field{
		Name:     f.FieldName,
		Number:   int32(number),
		Repeated: f.IsRepeated,
		Type:     fieldType,
	}, nil
}

// GetMessage returns a registered message definition. Unqualified names
// match any package for convenience.
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	if msg, ok := r.messages[name]; ok {
		return msg, nil
	}
	for fullName, msg := range r.messages {
		if fullName == name || strings.HasSuffix(fullName, "."+name) {
			return msg, nil
		}
	}
	return nil, fmt.Errorf("message type not found: %s", name)
}

// ListMessages returns the fully qualified names of all registered
// messages.
func (r *Registry) ListMessages() []string {
	names := make([]string, 0, len(r.messages))
	for name := range r.messages {
		names = append(names, name)
	}
	return names
}

func fullName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
