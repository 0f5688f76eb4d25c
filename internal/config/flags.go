package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagStyle   = flag.String("style", "", "Grid style: outline or filled")
	flagWidth   = flag.Int("width", 0, "Canvas width in pixels")
	flagHeight  = flag.Int("height", 0, "Canvas height in pixels")
	flagGrid    = flag.Int("grid", 0, "Grid cell size in pixels")
	flagOut     = flag.String("out", "", "Output file path")
	flagFont    = flag.String("font", "", "TTF font file for cell labels")
	flagQuality = flag.Int("quality", 0, "JPEG quality (1-100)")
	flagForce   = flag.Bool("force", false, "Allow canvases above the pixel-count limit")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagStyle != "" {
		cfg.Grid.Style = *flagStyle
	}
	if *flagWidth > 0 {
		cfg.Canvas.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Canvas.Height = *flagHeight
	}
	if *flagGrid > 0 {
		cfg.Grid.Size = *flagGrid
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagFont != "" {
		cfg.Font.Path = *flagFont
	}
	if *flagQuality > 0 {
		cfg.Output.Quality = *flagQuality
	}
	if *flagForce {
		cfg.Limits.AllowOversize = true
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
}
