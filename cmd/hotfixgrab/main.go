package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/hexaflare/hotfixgrab"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to TOML config file")
		gameDir    = flag.String("dir", "", "game install directory")
		output     = flag.String("out", "", "output JSON path")
		level      = flag.String("level", "", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if *gameDir != "" {
		cfg.GameDir = *gameDir
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *level != "" {
		cfg.LogLevel = *level
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log = log.Level(lvl)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	grabber, err := hotfixgrab.New(log)
	if err != nil {
		log.Fatal().Err(err).Msg("setup")
	}

	start := time.Now()
	report, err := grabber.Run(context.Background(), cfg.GameDir)
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}

	if err := report.Hotfix.WriteFile(cfg.Output); err != nil {
		log.Fatal().Err(err).Msg("write failed")
	}

	log.Info().
		Str("output", cfg.Output).
		Str("version", report.Version).
		Str("region", report.Region).
		Dur("elapsed", time.Since(start)).
		Msg("finished")
}
