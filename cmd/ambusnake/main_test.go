package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"ambusnake/internal/config"
	"ambusnake/internal/game"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	flagSeed, flagBackground, flagLogLevel = 0, "", ""
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "")
	cmd.Flags().StringVar(&flagBackground, "background", "", "")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestApplyFlagsOverridesConfig(t *testing.T) {
	t.Setenv(seedEnv, "")
	cmd := newFlagCmd(t, "--seed", "9", "--background", "x.png", "--log-level", "debug")
	cfg := config.Default()
	if err := applyFlags(cmd, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Seed != 9 || cfg.Assets.Background != "x.png" || cfg.Log.Level != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestApplyFlagsSeedFromEnv(t *testing.T) {
	t.Setenv(seedEnv, "1234")
	cfg := config.Default()
	if err := applyFlags(newFlagCmd(t), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Seed != 1234 || cfg.Assets.Background != config.Default().Assets.Background {
		t.Fatalf("cfg = %+v", cfg)
	}

	if err := applyFlags(newFlagCmd(t, "--seed", "5"), &cfg); err != nil || cfg.Game.Seed != 5 {
		t.Fatalf("flag did not win over env: %d %v", cfg.Game.Seed, err)
	}

	t.Setenv(seedEnv, "nope")
	if err := applyFlags(newFlagCmd(t), &cfg); err == nil {
		t.Fatalf("bad env seed accepted")
	}
}

func TestApplyFlagsPicksSeed(t *testing.T) {
	t.Setenv(seedEnv, "")
	cfg := config.Default()
	if err := applyFlags(newFlagCmd(t), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Seed == 0 {
		t.Fatalf("seed left at zero")
	}
}

func TestRenderControlsListsKeys(t *testing.T) {
	out := renderControls()
	for _, want := range []string{"Arrows", "Escape", "pause"} {
		if !strings.Contains(out, want) {
			t.Errorf("controls card missing %q", want)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary(game.Snapshot{Score: 12, BestScore: 7, GamesPlayed: 3, Level: game.Medium})
	for _, want := range []string{"12", "3", "medium"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestExecuteLogsFailureAndExitsOne(t *testing.T) {
	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	if code := execute([]string{"--config", missing}, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	out := stderr.String()
	for _, want := range []string{"ambusnake", "exiting", "failed to read config"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q lacks %q", out, want)
		}
	}
}

func TestExecuteControlsExitsZero(t *testing.T) {
	var stderr bytes.Buffer
	if code := execute([]string{"controls"}, &stderr); code != 0 {
		t.Fatalf("exit code = %d, log %q", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("controls logged %q", stderr.String())
	}
}
