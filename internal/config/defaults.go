package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as a
// last resort if the embedded YAML fails to parse.
// The tile palette follows the classic scheme: pale colors for low
// tiles, saturated ones past 128, gold for 2048.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			ShowHelp:      true,
			ScreenshotDir: "",
		},
		Theme: ThemeConfig{
			Tiles: map[int]string{
				2:    "yellow",
				4:    "green",
				8:    "blue",
				16:   "red",
				32:   "orange",
				64:   "magenta",
				128:  "bright_yellow",
				256:  "bright_green",
				512:  "bright_blue",
				1024: "bright_red",
				2048: "gold",
			},
			Fallback: "bright_white",
			Board:    "gray",
			Text:     "white",
			Accent:   "gold",
		},
	}
}
