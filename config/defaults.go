package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration: the classic 10x10 arena
// in a 500x500 window with the original palette and pacing.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  500,
			Height: 500,
			Title:  "Snake!",
		},
		Arena: ArenaConfig{
			Width:  10,
			Height: 10,
		},
		Pacing: PacingConfig{
			MoveInterval: 0.15,
			FoodInterval: 1.0,
		},
		Colors: ColorsConfig{
			Background: "#0A0A0A",
			Head:       "#B3B3B3",
			Segment:    "#4D4D4D",
			Food:       "#FF00FF",
		},
		Audio: AudioConfig{
			Muted: false,
		},
		Scores: ScoresConfig{
			Database: "",
		},
	}
}
