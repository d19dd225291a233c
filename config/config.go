// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"

	"github.com/plus3/snek/game"
)

// Config contains all tunables for one launch of the game.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Arena  ArenaConfig  `yaml:"arena"`
	Pacing PacingConfig `yaml:"pacing"`
	Colors ColorsConfig `yaml:"colors"`
	Audio  AudioConfig  `yaml:"audio"`
	Scores ScoresConfig `yaml:"scores"`
}

// WindowConfig defines the window geometry and title.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ArenaConfig defines the playfield grid.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PacingConfig defines the simulation clocks, in seconds.
type PacingConfig struct {
	MoveInterval float64 `yaml:"move_interval"`
	FoodInterval float64 `yaml:"food_interval"`
}

// ColorsConfig defines the palette as "#RRGGBB" hex strings.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Head       string `yaml:"head"`
	Segment    string `yaml:"segment"`
	Food       string `yaml:"food"`
}

// AudioConfig toggles sound output.
type AudioConfig struct {
	Muted bool `yaml:"muted"`
}

// ScoresConfig locates the score database. An empty path falls back to
// ~/.snek/scores.db.
type ScoresConfig struct {
	Database string `yaml:"database"`
}

// Settings validates the configuration and converts it into simulation
// settings. The snake starts on cell (3,3), so the arena must be at least
// 4 cells on each axis.
func (c Config) Settings() (game.Settings, error) {
	if c.Arena.Width < 4 || c.Arena.Height < 4 {
		return game.Settings{}, fmt.Errorf("config: arena %dx%d cannot fit the snake start", c.Arena.Width, c.Arena.Height)
	}
	if c.Pacing.MoveInterval <= 0 || c.Pacing.FoodInterval <= 0 {
		return game.Settings{}, fmt.Errorf("config: clock intervals must be positive, got move=%v food=%v", c.Pacing.MoveInterval, c.Pacing.FoodInterval)
	}

	palette, err := c.Palette()
	if err != nil {
		return game.Settings{}, err
	}

	return game.Settings{
		Arena:        game.Arena{Width: c.Arena.Width, Height: c.Arena.Height},
		MoveInterval: c.Pacing.MoveInterval,
		FoodInterval: c.Pacing.FoodInterval,
		Palette:      palette,
	}, nil
}

// Palette parses the configured colors.
func (c Config) Palette() (game.Palette, error) {
	palette := game.Palette{}

	var err error
	if palette.Background, err = ParseHexColor(c.Colors.Background); err != nil {
		return palette, fmt.Errorf("config: background: %w", err)
	}
	if palette.Head, err = ParseHexColor(c.Colors.Head); err != nil {
		return palette, fmt.Errorf("config: head: %w", err)
	}
	if palette.Segment, err = ParseHexColor(c.Colors.Segment); err != nil {
		return palette, fmt.Errorf("config: segment: %w", err)
	}
	if palette.Food, err = ParseHexColor(c.Colors.Food); err != nil {
		return palette, fmt.Errorf("config: food: %w", err)
	}

	return palette, nil
}
