// Package dispatch performs the two HTTP queries that produce the bytes
// this tool decodes: the region list (decoded against the embedded
// schema) and the gateway payload (handed to the schema-less decoder).
package dispatch

import (
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hexaflare/hotfixgrab/registry"
	"github.com/hexaflare/hotfixgrab/wire"
)

//go:embed dispatch.proto
var dispatchProto string

// DefaultTimeout bounds each of the two queries.
const DefaultTimeout = 15 * time.Second

// Dispatch is the decoded region-list response.
type Dispatch struct {
	Retcode    uint32
	Msg        string
	RegionList []RegionInfo
}

// RegionInfo is one entry of the region list.
type RegionInfo struct {
	Name        string
	Title       string
	EnvType     string
	DispatchURL string
	DisplayName string
}

// Client fetches and decodes dispatch and gateway responses.
type Client struct {
	http *http.Client
	reg  *registry.Registry
	log  zerolog.Logger
}

// NewClient creates a client with the embedded dispatch schema loaded.
func NewClient(log zerolog.Logger) (*Client, error) {
	reg := registry.NewRegistry()
	if err := reg.Load(strings.NewReader(dispatchProto)); err != nil {
		return nil, fmt.Errorf("failed to load dispatch schema: %w", err)
	}
	return &Client{
		http: &http.Client{Timeout: DefaultTimeout},
		reg:  reg,
		log:  log,
	}, nil
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// FetchDispatch queries the region list and decodes it against the
// embedded schema.
func (c *Client) FetchDispatch(ctx context.Context, base, version string) (*Dispatch, error) {
	url := DispatchURL(base, version)
	c.log.Info().Str("url", url).Msg("querying dispatch")

	raw, err := c.getBase64(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dispatch query failed: %w", err)
	}

	msg, err := c.reg.GetMessage("Dispatch")
	if err != nil {
		return nil, err
	}
	decoded, err := wire.DecodeMessage(raw, msg, c.reg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dispatch response: %w", err)
	}

	return dispatchFromMap(decoded), nil
}

// FetchGateway queries the gateway endpoint and returns the decoded
// payload bytes for schema-less decoding.
func (c *Client) FetchGateway(ctx context.Context, base, version, seed string) ([]byte, error) {
	url := GatewayURL(base, version, seed)
	c.log.Info().Str("url", url).Msg("querying gateway")

	raw, err := c.getBase64(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("gateway query failed: %w", err)
	}
	return raw, nil
}

// getBase64 performs one GET and base64-decodes the text body, the
// transport encoding both endpoints use.
func (c *Client) getBase64(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("response is not valid base64: %w", err)
	}
	return raw, nil
}

// dispatchFromMap lifts the generic decode result into the typed
// response.
func dispatchFromMap(m map[string]interface{}) *Dispatch {
	d := &Dispatch{
		Retcode: mapUint32(m, "retcode"),
		Msg:     mapString(m, "msg"),
	}
	if list, ok := m["region_list"].([]interface{}); ok {
		for _, entry := range list {
			region, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			d.RegionList = append(d.RegionList, RegionInfo{
				Name:        mapString(region, "name"),
				Title:       mapString(region, "title"),
				EnvType:     mapString(region, "env_type"),
				DispatchURL: mapString(region, "dispatch_url"),
				DisplayName: mapString(region, "display_name"),
			})
		}
	}
	return d
}

func mapString(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func mapUint32(m map[string]interface{}, key string) uint32 {
	if v, ok := m[key].(uint32); ok {
		return v
	}
	return 0
}
