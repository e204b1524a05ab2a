// Package config provides YAML-based configuration for the terminal
// presentation layer: tile colors and UI options. Engine constants
// (board size, spawn odds, cascade rule) are deliberately not exposed
// here.
package config

import "github.com/vovakirdan/tui-2048/internal/core"

// Config is the top-level configuration.
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Theme ThemeConfig `yaml:"theme"`
}

// UIConfig holds presentation options.
type UIConfig struct {
	ShowHelp      bool   `yaml:"show_help"`      // Render the key help bar below the board
	ScreenshotDir string `yaml:"screenshot_dir"` // Where ctrl+s dumps go; empty = ~/.tui-2048/screenshots
}

// ThemeConfig maps tile values and UI elements to palette color names.
type ThemeConfig struct {
	Tiles    map[int]string `yaml:"tiles"`    // Tile value -> color name
	Fallback string         `yaml:"fallback"` // Color for values past the table (4096+)
	Board    string         `yaml:"board"`    // Grid lines
	Text     string         `yaml:"text"`     // HUD labels
	Accent   string         `yaml:"accent"`   // Title and game-over banner
}

// TileColor resolves the color for a tile value.
// Values missing from the table use the fallback color; unknown color
// names degrade to the terminal default.
func (t ThemeConfig) TileColor(value int) core.Color {
	if name, ok := t.Tiles[value]; ok {
		c, _ := core.ParseColor(name)
		return c
	}
	c, _ := core.ParseColor(t.Fallback)
	return c
}

// BoardColor resolves the grid line color.
func (t ThemeConfig) BoardColor() core.Color {
	c, _ := core.ParseColor(t.Board)
	return c
}

// TextColor resolves the HUD label color.
func (t ThemeConfig) TextColor() core.Color {
	c, _ := core.ParseColor(t.Text)
	return c
}

// AccentColor resolves the title/banner color.
func (t ThemeConfig) AccentColor() core.Color {
	c, _ := core.ParseColor(t.Accent)
	return c
}
