// Package config handles generator configuration loading and management.
package config

import "fmt"

// Grid styles.
const (
	StyleOutline = "outline" // colored border, white interior
	StyleFilled  = "filled"  // solid colored cell
)

// DefaultMaxPixels is the pixel-count safety valve. Canvases above this
// require limits.allow_oversize (or --force); the limit exists because the
// whole point of this tool is producing images most decoders should refuse.
const DefaultMaxPixels = 1 << 30

// Config holds all generator settings.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Grid    GridConfig    `yaml:"grid"`
	Font    FontConfig    `yaml:"font"`
	Output  OutputConfig  `yaml:"output"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// CanvasConfig holds canvas dimensions.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig holds grid geometry and paint settings.
type GridConfig struct {
	Size         int    `yaml:"size"`          // cell side length, px
	Style        string `yaml:"style"`         // outline or filled
	LineWidth    int    `yaml:"line_width"`    // border stroke width, outline style only
	GreenDivisor int    `yaml:"green_divisor"` // divisor for the green channel derivation
	LabelMargin  int    `yaml:"label_margin"`  // label offset from cell origin, px
}

// FontConfig holds label typeface settings.
type FontConfig struct {
	Path string  `yaml:"path"` // TTF file, best-effort; missing file falls back to embedded face
	Size float64 `yaml:"size"` // point size
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Path    string `yaml:"path"`
	Quality int    `yaml:"quality"` // JPEG quality, 1-100
}

// LimitsConfig holds the allocation safety valve.
type LimitsConfig struct {
	MaxPixels     int64 `yaml:"max_pixels"`
	AllowOversize bool  `yaml:"allow_oversize"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the canonical outline-variant values.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  35000,
			Height: 30000,
		},
		Grid: GridConfig{
			Size:         1000,
			Style:        StyleOutline,
			LineWidth:    5,
			GreenDivisor: 200,
			LabelMargin:  50,
		},
		Font: FontConfig{
			Path: "Arial.ttf",
			Size: 150,
		},
		Output: OutputConfig{
			Path:    "big_image.jpg",
			Quality: 60,
		},
		Limits: LimitsConfig{
			MaxPixels:     DefaultMaxPixels,
			AllowOversize: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the config for values the generator cannot work with.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Grid.Size <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.Grid.Size)
	}
	if c.Grid.Style != StyleOutline && c.Grid.Style != StyleFilled {
		return fmt.Errorf("unknown grid style %q (want %q or %q)", c.Grid.Style, StyleOutline, StyleFilled)
	}
	if c.Grid.LineWidth <= 0 {
		return fmt.Errorf("grid line width must be positive, got %d", c.Grid.LineWidth)
	}
	if c.Grid.GreenDivisor <= 0 {
		return fmt.Errorf("green divisor must be positive, got %d", c.Grid.GreenDivisor)
	}
	if c.Grid.LabelMargin < 0 {
		return fmt.Errorf("label margin must not be negative, got %d", c.Grid.LabelMargin)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %v", c.Font.Size)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("jpeg quality must be in 1..100, got %d", c.Output.Quality)
	}
	return nil
}
