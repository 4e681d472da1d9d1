package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// reader is a cursor over a fully materialized client file. All reads
// fail with io.ErrUnexpectedEOF-style errors once the buffer runs out.
type reader struct {
	br *bytes.Reader
}

func newReader(data []byte) *reader {
	return &reader{br: bytes.NewReader(data)}
}

// readString reads one length byte followed by that many bytes of text.
func (r *reader) readString() (string, error) {
	length, err := r.br.ReadByte()
	if err != nil {
		return "", fmt.Errorf("failed to read string length: %w", err)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return "", fmt.Errorf("failed to read string body: %w", err)
	}
	return string(buf), nil
}

// readUint32BE reads a 4-byte big-endian unsigned integer.
func (r *reader) readUint32BE() (uint32, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return 0, fmt.Errorf("failed to read uint32: %w", err)
	}
	return binary.BigEndian.Uint32(buf), nil
}

// readBytes reads exactly n bytes.
func (r *reader) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return nil, fmt.Errorf("failed to read %d bytes: %w", n, err)
	}
	return buf, nil
}

// readBool reads a single byte as a boolean.
func (r *reader) readBool() (bool, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return false, fmt.Errorf("failed to read bool: %w", err)
	}
	return b != 0, nil
}

// readUvarint reads a base-128 varint count.
func (r *reader) readUvarint() (uint64, error) {
	v, err := binary.ReadUvarint(r.br)
	if err != nil {
		return 0, fmt.Errorf("failed to read varint: %w", err)
	}
	return v, nil
}
