// Package hotfixgrab extracts hotfix URLs for an installed client: it
// reads the two StreamingAssets files for the version string, dispatch
// seed and dispatch base URL, queries the dispatch and gateway
// endpoints, decodes the gateway payload without a schema and labels the
// resulting fields.
package hotfixgrab

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hexaflare/hotfixgrab/assets"
	"github.com/hexaflare/hotfixgrab/dispatch"
	"github.com/hexaflare/hotfixgrab/hotfix"
	"github.com/hexaflare/hotfixgrab/wire"
)

// Grabber runs the full pipeline against a game install directory.
type Grabber struct {
	client *dispatch.Client
	log    zerolog.Logger
}

// New creates a Grabber.
func New(log zerolog.Logger) (*Grabber, error) {
	client, err := dispatch.NewClient(log)
	if err != nil {
		return nil, err
	}
	return &Grabber{
		client: client,
		log:    log,
	}, nil
}

// Report is the outcome of one run.
type Report struct {
	Version      string
	Build        string
	DispatchSeed string
	Region       string
	Hotfix       *hotfix.Hotfix
	Simplified   *wire.SimplifiedResult
}

// Run executes the pipeline: client files, dispatch query, gateway
// query, schema-less decode, labeling. A gateway payload that fails to
// decode at the top level aborts the run; there is no partial result.
func (g *Grabber) Run(ctx context.Context, gameDir string) (*Report, error) {
	binBuf, err := assets.ReadBinaryVersion(gameDir)
	if err != nil {
		return nil, err
	}
	cfgBuf, err := assets.ReadClientConfig(gameDir)
	if err != nil {
		return nil, err
	}

	base, err := assets.DispatchBase(cfgBuf)
	if err != nil {
		return nil, err
	}

	info, err := assets.ExtractVersionInfo(binBuf)
	if err != nil {
		return nil, err
	}
	g.log.Info().
		Str("version", info.Version).
		Str("build", info.Build).
		Str("seed", info.DispatchSeed).
		Msg("extracted version info")

	disp, err := g.client.FetchDispatch(ctx, base, info.Version)
	if err != nil {
		return nil, err
	}
	if len(disp.RegionList) == 0 {
		return nil, fmt.Errorf("dispatch response has an empty region list")
	}
	region := disp.RegionList[0]

	payload, err := g.client.FetchGateway(ctx, region.DispatchURL, info.Version, info.DispatchSeed)
	if err != nil {
		return nil, err
	}

	result, err := wire.NewDecoder(payload).Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode gateway payload: %w", err)
	}

	simplified := wire.Simplify(result)
	h := hotfix.FromSimplified(simplified)
	g.log.Info().
		Str("asset_bundle_url", h.AssetBundleURL).
		Str("ex_resource_url", h.ExResourceURL).
		Msg("labeled gateway fields")

	return &Report{
		Version:      info.Version,
		Build:        info.Build,
		DispatchSeed: info.DispatchSeed,
		Region:       region.Name,
		Hotfix:       h,
		Simplified:   simplified,
	}, nil
}
