// Package hotfix is the labeling consumer of the schema-less decode: it
// walks the ordered simplified tree and classifies otherwise-anonymous
// fields by the path markers and value ranges they carry.
package hotfix

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hexaflare/hotfixgrab/wire"
)

// Hotfix holds the labeled URLs and version counters extracted from a
// gateway payload.
type Hotfix struct {
	AssetBundleURL      string `json:"asset_bundle_url"`
	ExResourceURL       string `json:"ex_resource_url"`
	LuaURL              string `json:"lua_url"`
	IfixURL             string `json:"ifix_url"`
	CustomMdkResVersion uint32 `json:"custom_mdk_res_version"`
	CustomIfixVersion   uint32 `json:"custom_ifix_version"`
}

// Path markers that identify the anonymous URL fields.
const (
	markerAssetBundle = "/asb/"
	markerDesignData  = "/design_data/"
	markerLua         = "/lua/"
	markerIfix        = "/ifix/"
)

// maxResourceVersion bounds the varint values accepted as resource
// version counters; anything larger is some other kind of field.
const maxResourceVersion = 1 << 20

// FromSimplified labels the fields of a simplified gateway decode.
// Length-delimited text fields are matched against the known path
// markers; small positive varint values fill the version counters in
// encounter order.
func FromSimplified(res *wire.SimplifiedResult) *Hotfix {
	h := &Hotfix{}
	h.collect(res)
	return h
}

func (h *Hotfix) collect(res *wire.SimplifiedResult) {
	for _, field := range res.Fields {
		if field.IsMessage {
			h.collect(field.Nested)
			continue
		}

		switch field.WireType {
		case wire.WireBytes.Label():
			h.labelURL(field.Value)
		case wire.WireVarint.Label():
			h.labelVersion(field.Value)
		}
	}
}

func (h *Hotfix) labelURL(value string) {
	switch {
	case strings.Contains(value, markerAssetBundle):
		h.AssetBundleURL = value
	case strings.Contains(value, markerDesignData):
		h.ExResourceURL = value
	case strings.Contains(value, markerLua):
		h.LuaURL = value
	case strings.Contains(value, markerIfix):
		h.IfixURL = value
	}
}

func (h *Hotfix) labelVersion(value string) {
	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil || v == 0 || v >= maxResourceVersion {
		return
	}
	if h.CustomMdkResVersion == 0 {
		h.CustomMdkResVersion = uint32(v)
		return
	}
	if h.CustomIfixVersion == 0 {
		h.CustomIfixVersion = uint32(v)
	}
}

// MarshalPretty renders the hotfix as indented JSON.
func (h *Hotfix) MarshalPretty() ([]byte, error) {
	return json.MarshalIndent(h, "", "  ")
}

// WriteFile writes the pretty JSON form to path.
func (h *Hotfix) WriteFile(path string) error {
	data, err := h.MarshalPretty()
	if err != nil {
		return fmt.Errorf("failed to marshal hotfix: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write hotfix file: %w", err)
	}
	return nil
}
