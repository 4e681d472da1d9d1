// Package assets locates and parses the two fixed-format client files
// shipped under StreamingAssets, and carries the buffer heuristics used
// to dig the version string and dispatch seed out of them.
package assets

import "bytes"

// ReadString reads a length-prefixed string from buf at offset: one
// length byte, then that many bytes of text.
func ReadString(buf []byte, offset int) (string, bool) {
	if offset >= len(buf) {
		return "", false
	}
	length := int(buf[offset])
	end := offset + 1 + length
	if end > len(buf) {
		return "", false
	}
	return string(buf[offset+1 : end]), true
}

// StripTrailingZeros drops trailing 0x00 padding.
func StripTrailingZeros(buf []byte) []byte {
	end := len(buf)
	for end > 0 && buf[end-1] == 0x00 {
		end--
	}
	return buf[:end]
}

// TailAfterLast returns the part of buf after the last occurrence of
// delim, or the whole buffer when delim is absent.
func TailAfterLast(buf []byte, delim byte) []byte {
	if i := bytes.LastIndexByte(buf, delim); i >= 0 {
		return buf[i+1:]
	}
	return buf
}

// ReadUint24BE reads a 3-byte big-endian unsigned integer.
func ReadUint24BE(buf []byte, offset int) (uint32, bool) {
	if offset+3 > len(buf) {
		return 0, false
	}
	return uint32(buf[offset])<<16 | uint32(buf[offset+1])<<8 | uint32(buf[offset+2]), true
}

// SplitNonEmpty splits buf on delim and drops empty parts.
func SplitNonEmpty(buf []byte, delim byte) [][]byte {
	parts := bytes.Split(buf, []byte{delim})
	out := make([][]byte, 0, len(parts))
	for _, part := range parts {
		if len(part) > 0 {
			out = append(out, part)
		}
	}
	return out
}

// zeroRunLen anchors the tail section of BinaryVersion.bytes: the
// interesting strings sit after the last run of nine zero bytes.
const zeroRunLen = 9

// LastSectionStart returns the index just past the last 9-byte zero run,
// or 0 when no such run exists.
func LastSectionStart(buf []byte) int {
	if i := bytes.LastIndex(buf, make([]byte, zeroRunLen)); i >= 0 {
		return i + zeroRunLen
	}
	return 0
}

// isHex reports whether s is non-empty and contains only hex digits.
func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
