package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to scene file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOrtho   = flag.Bool("ortho", false, "Use an orthographic projection")
	flagFOV     = flag.Float64("fov", 0, "Vertical field of view in degrees")
	flagWidth   = flag.Int("width", 0, "Viewport width")
	flagHeight  = flag.Int("height", 0, "Viewport height")
	flagOut     = flag.String("out", "", "Write matrices to this file instead of stdout")
	flagPreview = flag.String("preview", "", "Write a wireframe preview image (.webp or .png)")
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
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOrtho {
		cfg.Projection.Mode = ProjectionOrtho
	}
	if *flagFOV > 0 {
		cfg.Projection.FOV = float32(*flagFOV)
	}
	if *flagWidth > 0 {
		cfg.Viewport.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewport.Height = *flagHeight
	}
	if *flagOut != "" {
		cfg.Output.Matrices = *flagOut
	}
	if *flagPreview != "" {
		cfg.Output.Preview = *flagPreview
	}
}
