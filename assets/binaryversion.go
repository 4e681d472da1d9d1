package assets

import (
	"fmt"
	"strings"
)

// BinaryVersion is the structured layout of BinaryVersion.bytes.
type BinaryVersion struct {
	Branch               string
	Revision             uint32
	MajorVersion         uint32
	MinorVersion         uint32
	PatchVersion         uint32
	Time                 string
	PakType              string
	PakTypeDetail        string
	StartAsset           string
	StartDesignData      string
	DispatchSeed         string
	VersionString        string
	VersionHash          string
	GameCoreVersion      uint32
	IsEnableExcludeAsset bool
	SdkPsClientID        string
}

// reservedWords is the block of fifteen u32 slots between the version
// numbers and the time string whose meaning is unknown.
const reservedWords = 15

// ParseBinaryVersion decodes the structured layout of
// BinaryVersion.bytes.
func ParseBinaryVersion(data []byte) (*BinaryVersion, error) {
	r := newReader(data)
	bv := &BinaryVersion{}

	var err error
	if bv.Branch, err = r.readString(); err != nil {
		return nil, fmt.Errorf("branch: %w", err)
	}
	if bv.Revision, err = r.readUint32BE(); err != nil {
		return nil, fmt.Errorf("revision: %w", err)
	}
	if bv.MajorVersion, err = r.readUint32BE(); err != nil {
		return nil, fmt.Errorf("major version: %w", err)
	}
	if bv.MinorVersion, err = r.readUint32BE(); err != nil {
		return nil, fmt.Errorf("minor version: %w", err)
	}
	if bv.PatchVersion, err = r.readUint32BE(); err != nil {
		return nil, fmt.Errorf("patch version: %w", err)
	}
	if _, err = r.readBytes(4 * reservedWords); err != nil {
		return nil, fmt.Errorf("reserved block: %w", err)
	}
	if bv.Time, err = r.readString(); err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}
	if bv.PakType, err = r.readString(); err != nil {
		return nil, fmt.Errorf("pak type: %w", err)
	}
	if bv.PakTypeDetail, err = r.readString(); err != nil {
		return nil, fmt.Errorf("pak type detail: %w", err)
	}
	if bv.StartAsset, err = r.readString(); err != nil {
		return nil, fmt.Errorf("start asset: %w", err)
	}
	if bv.StartDesignData, err = r.readString(); err != nil {
		return nil, fmt.Errorf("start design data: %w", err)
	}
	if bv.DispatchSeed, err = r.readString(); err != nil {
		return nil, fmt.Errorf("dispatch seed: %w", err)
	}
	if bv.VersionString, err = r.readString(); err != nil {
		return nil, fmt.Errorf("version string: %w", err)
	}
	if bv.VersionHash, err = r.readString(); err != nil {
		return nil, fmt.Errorf("version hash: %w", err)
	}
	if bv.GameCoreVersion, err = r.readUint32BE(); err != nil {
		return nil, fmt.Errorf("game core version: %w", err)
	}
	if bv.IsEnableExcludeAsset, err = r.readBool(); err != nil {
		return nil, fmt.Errorf("exclude asset flag: %w", err)
	}
	if bv.SdkPsClientID, err = r.readString(); err != nil {
		return nil, fmt.Errorf("sdk ps client id: %w", err)
	}

	return bv, nil
}

// ServerPakTypeVersion picks the dotted x.y.z segment out of the version
// string, if there is one.
func (bv *BinaryVersion) ServerPakTypeVersion() (string, bool) {
	for _, segment := range strings.Split(bv.VersionString, "-") {
		if isDottedVersion(segment) {
			return segment, true
		}
	}
	return "", false
}

func isDottedVersion(segment string) bool {
	dots := 0
	for _, c := range segment {
		switch {
		case c == '.':
			dots++
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return dots == 2 && strings.Contains(segment, ".")
}

// VersionInfo is the outcome of the heuristic scan over
// BinaryVersion.bytes: the fields needed to build the dispatch query.
type VersionInfo struct {
	Branch        string
	Revision      uint32
	Time          string
	VersionString string // full matched segment, e.g. "V2025...-7.4.0-live-0801-..."
	Version       string // 5th dash-separated segment
	Build         string // 6th dash-separated segment
	DispatchSeed  string
}

// ErrSeedNotFound reports that no segment matched the constructed
// time-branch-revision prefix with a hex seed in front of it.
var ErrSeedNotFound = fmt.Errorf("dispatch seed not found")

// ExtractVersionInfo digs the version string and dispatch seed out of a
// raw BinaryVersion.bytes buffer without relying on the structured
// layout. The tail section after the last 9-byte zero run is split on
// 0x00; the segment whose string starts with "time-branch-revision" is
// the version string, and the segment right before it holds the hex
// dispatch seed.
func ExtractVersionInfo(buf []byte) (*VersionInfo, error) {
	branch, ok := ReadString(buf, 1)
	if !ok {
		return nil, fmt.Errorf("buffer too short for branch string")
	}

	section := buf[LastSectionStart(buf):]
	splits := SplitNonEmpty(section, 0x00)
	if len(splits) < 2 {
		return nil, fmt.Errorf("tail section has too few segments")
	}

	revision, ok := ReadUint24BE(splits[0], 0)
	if !ok {
		return nil, fmt.Errorf("revision segment too short")
	}
	timeStr, ok := ReadString(splits[1], 0)
	if !ok {
		return nil, fmt.Errorf("time segment too short")
	}

	constructed := fmt.Sprintf("%s-%s-%d", timeStr, branch, revision)

	versionStr, seed, err := findDispatchSeed(splits, constructed)
	if err != nil {
		return nil, err
	}

	info := &VersionInfo{
		Branch:        branch,
		Revision:      revision,
		Time:          timeStr,
		VersionString: versionStr,
		DispatchSeed:  seed,
	}

	parts := strings.Split(versionStr, "-")
	if len(parts) > 4 {
		info.Version = parts[4]
	}
	if len(parts) > 5 {
		info.Build = parts[5]
	}

	return info, nil
}

// findDispatchSeed scans the segments for one whose embedded string
// starts with the constructed prefix; the seed is the string in the
// segment just before it and must be pure hex.
func findDispatchSeed(splits [][]byte, constructed string) (version, seed string, err error) {
	for i := 1; i < len(splits); i++ {
		if len(splits[i]) < 2 {
			continue
		}
		current, ok := ReadString(splits[i], 0)
		if !ok || !strings.HasPrefix(current, constructed) {
			continue
		}
		candidate, ok := ReadString(splits[i-1], 0)
		if ok && isHex(candidate) {
			return current, candidate, nil
		}
	}
	return "", "", ErrSeedNotFound
}
