package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClientConfig is the structured layout of ClientConfig.bytes.
type ClientConfig struct {
	ChannelName           string
	BundleIdentifier      string
	ProductName           string
	ScriptDefines         string
	GlobalDispatchURLList []string
}

// ParseClientConfig decodes the structured layout of ClientConfig.bytes.
func ParseClientConfig(data []byte) (*ClientConfig, error) {
	r := newReader(data)
	cc := &ClientConfig{}

	var err error
	if cc.ChannelName, err = r.readString(); err != nil {
		return nil, fmt.Errorf("channel name: %w", err)
	}
	if cc.BundleIdentifier, err = r.readString(); err != nil {
		return nil, fmt.Errorf("bundle identifier: %w", err)
	}
	if cc.ProductName, err = r.readString(); err != nil {
		return nil, fmt.Errorf("product name: %w", err)
	}
	if cc.ScriptDefines, err = r.readString(); err != nil {
		return nil, fmt.Errorf("script defines: %w", err)
	}

	// 3 bytes of unknown padding before the URL list count
	if _, err = r.readBytes(3); err != nil {
		return nil, fmt.Errorf("url list padding: %w", err)
	}
	count, err := r.readUvarint()
	if err != nil {
		return nil, fmt.Errorf("url list count: %w", err)
	}
	for i := uint64(0); i < count; i++ {
		url, err := r.readString()
		if err != nil {
			break
		}
		cc.GlobalDispatchURLList = append(cc.GlobalDispatchURLList, url)
	}

	return cc, nil
}

// DispatchBase extracts the dispatch base URL from a raw
// ClientConfig.bytes buffer: trailing zero padding is stripped and the
// last 0x00-delimited entry holds the URL as a length-prefixed string.
func DispatchBase(raw []byte) (string, error) {
	trimmed := StripTrailingZeros(raw)
	tail := TailAfterLast(trimmed, 0x00)
	url, ok := ReadString(tail, 0)
	if !ok {
		return "", fmt.Errorf("client config tail holds no url string")
	}
	return url, nil
}

// Client file locations relative to the game install directory.
const (
	streamingAssetsDir = "StarRail_Data/StreamingAssets"
	binaryVersionFile  = "BinaryVersion.bytes"
	clientConfigFile   = "ClientConfig.bytes"
)

// BinaryVersionPath returns the BinaryVersion.bytes path under base.
func BinaryVersionPath(base string) string {
	return filepath.Join(base, filepath.FromSlash(streamingAssetsDir), binaryVersionFile)
}

// ClientConfigPath returns the ClientConfig.bytes path under base.
func ClientConfigPath(base string) string {
	return filepath.Join(base, filepath.FromSlash(streamingAssetsDir), clientConfigFile)
}

// ReadBinaryVersion reads BinaryVersion.bytes from the game directory.
func ReadBinaryVersion(base string) ([]byte, error) {
	data, err := os.ReadFile(BinaryVersionPath(base))
	if err != nil {
		return nil, fmt.Errorf("failed to read binary version file: %w", err)
	}
	return data, nil
}

// ReadClientConfig reads ClientConfig.bytes from the game directory.
func ReadClientConfig(base string) ([]byte, error) {
	data, err := os.ReadFile(ClientConfigPath(base))
	if err != nil {
		return nil, fmt.Errorf("failed to read client config file: %w", err)
	}
	return data, nil
}
