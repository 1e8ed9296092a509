// Package config holds the AmbuSnake settings file.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window WindowConfig `yaml:"window"`
	Board  BoardConfig  `yaml:"board"`
	Game   GameConfig   `yaml:"game"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type BoardConfig struct {
	BoxSize int `yaml:"box_size"`
}

// GameConfig seeds bonus placement. A zero seed means pick one at startup.
type GameConfig struct {
	Seed           uint64 `yaml:"seed"`
	StartupMessage bool   `yaml:"startup_message"`
}

type AssetsConfig struct {
	Background      string `yaml:"background"`
	WatchBackground bool   `yaml:"watch_background"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration: a 1600x896 window of 64 px
// tiles.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "AmbuSnake",
			Width:  1600,
			Height: 896,
			VSync:  true,
		},
		Board: BoardConfig{BoxSize: 64},
		Game:  GameConfig{StartupMessage: true},
		Assets: AssetsConfig{
			Background: "./Map/Strasbourg.jpg",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks the window tiles exactly with the box size and the log
// level parses.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Board.BoxSize <= 0 {
		return fmt.Errorf("%w: box_size %d", ErrInvalid, c.Board.BoxSize)
	}
	if c.Window.Width%c.Board.BoxSize != 0 || c.Window.Height%c.Board.BoxSize != 0 {
		return fmt.Errorf("%w: window %dx%d is not a multiple of box_size %d",
			ErrInvalid, c.Window.Width, c.Window.Height, c.Board.BoxSize)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// LogLevel parses Log.Level; empty means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}
