package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"ambusnake/internal/assets"
	"ambusnake/internal/config"
	"ambusnake/internal/game"
	"ambusnake/internal/gfx"
	"ambusnake/internal/platform"
	"ambusnake/internal/platform/glfwhost"
)

const seedEnv = "AMBUSNAKE_SEED"

func runGame(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	logger.SetLevel(level)

	logger.Info("starting",
		"config", source,
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"box", cfg.Board.BoxSize,
		"seed", cfg.Game.Seed,
		"background", cfg.Assets.Background,
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	w, h := cfg.Window.Width, cfg.Window.Height
	background := assets.BackgroundOrFallback(cfg.Assets.Background, w, h, logger)

	var updates <-chan []byte
	if cfg.Assets.WatchBackground {
		updates, err = assets.WatchBackground(ctx, cfg.Assets.Background, w, h, logger)
		if err != nil {
			logger.Warn("background watch disabled", "error", err)
		}
	}

	conf := platform.Conf{
		Title:  cfg.Window.Title,
		Width:  w,
		Height: h,
		VSync:  cfg.Window.VSync,
		Icons:  assets.Icons(),
	}

	var g *game.Game
	err = glfwhost.Run(conf, logger, func(gctx *gfx.Context, d platform.Display) (platform.EventHandler, error) {
		ng, err := game.New(gctx, d, game.Options{
			Title:             cfg.Window.Title,
			BoxSize:           cfg.Board.BoxSize,
			Seed:              cfg.Game.Seed,
			Background:        background,
			BackgroundUpdates: updates,
			StartupMessage:    cfg.Game.StartupMessage,
			Logger:            logger,
		})
		if err != nil {
			return nil, err
		}
		g = ng
		return ng, nil
	})
	if err != nil {
		return err
	}

	logger.Info("shutdown")
	if g != nil {
		fmt.Println(renderSummary(g.Snapshot()))
	}
	return nil
}

// applyFlags layers explicit flags and the seed environment variable over
// the loaded config. A seed still zero afterwards comes from the clock.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("background") {
		cfg.Assets.Background = flagBackground
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	switch {
	case flags.Changed("seed"):
		cfg.Game.Seed = flagSeed
	case os.Getenv(seedEnv) != "":
		v, err := strconv.ParseUint(os.Getenv(seedEnv), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", seedEnv, err)
		}
		cfg.Game.Seed = v
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
	return nil
}
