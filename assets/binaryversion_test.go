package assets

import (
	"encoding/binary"
	"errors"
	"testing"
)

func lpString(s string) []byte {
	out := []byte{byte(len(s))}
	return append(out, s...)
}

func u32be(v uint32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, v)
	return out
}

func buildBinaryVersion() []byte {
	var buf []byte
	buf = append(buf, lpString("PROD")...)
	buf = append(buf, u32be(66051)...) // revision
	buf = append(buf, u32be(7)...)     // major
	buf = append(buf, u32be(4)...)     // minor
	buf = append(buf, u32be(0)...)     // patch
	buf = append(buf, make([]byte, 4*reservedWords)...)
	buf = append(buf, lpString("20250801")...)
	buf = append(buf, lpString("full")...)
	buf = append(buf, lpString("full_detail")...)
	buf = append(buf, lpString("start_asset")...)
	buf = append(buf, lpString("start_design_data")...)
	buf = append(buf, lpString("1a2b3c4d")...)
	buf = append(buf, lpString("V20250801-PROD-66051-beta-7.4.0-1234567")...)
	buf = append(buf, lpString("deadbeef")...)
	buf = append(buf, u32be(3)...)
	buf = append(buf, 0x01)
	buf = append(buf, lpString("ps-client")...)
	return buf
}

func TestParseBinaryVersion(t *testing.T) {
	bv, err := ParseBinaryVersion(buildBinaryVersion())
	if err != nil {
		t.Fatalf("ParseBinaryVersion: %v", err)
	}

	if bv.Branch != "PROD" || bv.Revision != 66051 {
		t.Errorf("branch/revision: %+v", bv)
	}
	if bv.MajorVersion != 7 || bv.MinorVersion != 4 || bv.PatchVersion != 0 {
		t.Errorf("version triple: %+v", bv)
	}
	if bv.Time != "20250801" || bv.DispatchSeed != "1a2b3c4d" {
		t.Errorf("time/seed: %+v", bv)
	}
	if !bv.IsEnableExcludeAsset || bv.SdkPsClientID != "ps-client" {
		t.Errorf("tail fields: %+v", bv)
	}
}

func TestParseBinaryVersion_Truncated(t *testing.T) {
	full := buildBinaryVersion()
	if _, err := ParseBinaryVersion(full[:20]); err == nil {
		t.Fatal("expected error for truncated buffer")
	}
}

func TestServerPakTypeVersion(t *testing.T) {
	bv := &BinaryVersion{VersionString: "V20250801-PROD-66051-beta-7.4.0-1234567"}
	got, ok := bv.ServerPakTypeVersion()
	if !ok || got != "7.4.0" {
		t.Errorf("got %q ok=%v", got, ok)
	}

	bv = &BinaryVersion{VersionString: "no-dotted-segment"}
	if _, ok := bv.ServerPakTypeVersion(); ok {
		t.Error("expected no match")
	}
}

func buildVersionBuffer() []byte {
	var buf []byte
	buf = append(buf, 0xAA) // leading byte before the branch string
	buf = append(buf, lpString("PROD")...)
	buf = append(buf, []byte{0x10, 0x20, 0x30}...) // filler
	buf = append(buf, make([]byte, zeroRunLen)...) // section anchor

	// tail section, 0x00-delimited
	buf = append(buf, 0x01, 0x02, 0x03) // revision 66051, big-endian uint24
	buf = append(buf, 0x00)
	buf = append(buf, lpString("20250801")...)
	buf = append(buf, 0x00)
	buf = append(buf, lpString("1a2b3c4d")...) // seed, pure hex
	buf = append(buf, 0x00)
	buf = append(buf, lpString("20250801-PROD-66051-beta-7.4.0-1234567")...)
	return buf
}

func TestExtractVersionInfo(t *testing.T) {
	info, err := ExtractVersionInfo(buildVersionBuffer())
	if err != nil {
		t.Fatalf("ExtractVersionInfo: %v", err)
	}

	if info.Branch != "PROD" || info.Revision != 66051 || info.Time != "20250801" {
		t.Errorf("header fields: %+v", info)
	}
	if info.DispatchSeed != "1a2b3c4d" {
		t.Errorf("seed: got %q", info.DispatchSeed)
	}
	if info.Version != "7.4.0" || info.Build != "1234567" {
		t.Errorf("version/build: got %q / %q", info.Version, info.Build)
	}
	if info.VersionString != "20250801-PROD-66051-beta-7.4.0-1234567" {
		t.Errorf("version string: got %q", info.VersionString)
	}
}

func TestExtractVersionInfo_SeedNotFound(t *testing.T) {
	var buf []byte
	buf = append(buf, 0xAA)
	buf = append(buf, lpString("PROD")...)
	buf = append(buf, make([]byte, zeroRunLen)...)
	buf = append(buf, 0x01, 0x02, 0x03)
	buf = append(buf, 0x00)
	buf = append(buf, lpString("20250801")...)
	// no matching version segment follows

	_, err := ExtractVersionInfo(buf)
	if !errors.Is(err, ErrSeedNotFound) {
		t.Fatalf("expected ErrSeedNotFound, got %v", err)
	}
}

func TestExtractVersionInfo_SkipsNonHexSeed(t *testing.T) {
	var buf []byte
	buf = append(buf, 0xAA)
	buf = append(buf, lpString("PROD")...)
	buf = append(buf, make([]byte, zeroRunLen)...)
	buf = append(buf, 0x01, 0x02, 0x03)
	buf = append(buf, 0x00)
	buf = append(buf, lpString("20250801")...)
	buf = append(buf, 0x00)
	buf = append(buf, lpString("not-hex!")...) // would-be seed fails the hex check
	buf = append(buf, 0x00)
	buf = append(buf, lpString("20250801-PROD-66051-beta-7.4.0-1")...)

	_, err := ExtractVersionInfo(buf)
	if !errors.Is(err, ErrSeedNotFound) {
		t.Fatalf("expected ErrSeedNotFound, got %v", err)
	}
}
