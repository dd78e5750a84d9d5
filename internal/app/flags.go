package app

import (
	"flag"

	"smokegate/internal/config"
)

// HUDWidth is the pixel width of the control panel.
const HUDWidth = 240

// WindowSize returns the initial window size for cfg: the viewport plus the
// control panel when the HUD is shown.
func WindowSize(cfg *config.Config) (int, int) {
	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	if cfg.HUD {
		w += HUDWidth
	}
	return w, h
}

// Config represents the command-line parameters for the application. Zero
// values leave the YAML configuration untouched.
type Config struct {
	ConfigPath string
	Image      string
	Caption    string
	TextOnly   bool
	Width      int
	Height     int
	Brush      string
	Render     string
	Telemetry  string
	TPS        int
	Seed       int64
	NoHUD      bool
}

// NewConfig returns an empty flag set; defaults come from the YAML layer.
func NewConfig() *Config {
	return &Config{}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file layered over the defaults")
	fs.StringVar(&c.Image, "image", c.Image, "image file or URL to ingest")
	fs.StringVar(&c.Caption, "caption", c.Caption, "caption drawn with the image, or alone with -text")
	fs.BoolVar(&c.TextOnly, "text", c.TextOnly, "ingest the caption as solid text emitters")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.StringVar(&c.Brush, "brush", c.Brush, "brush mode: vel, smoke or havoc")
	fs.StringVar(&c.Render, "render", c.Render, "render mode: smoke, velocity or divergence")
	fs.StringVar(&c.Telemetry, "telemetry", c.Telemetry, "write per-frame stats CSV to this path")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for havoc noise and the image catalog")
	fs.BoolVar(&c.NoHUD, "nohud", c.NoHUD, "start with the HUD hidden")
}

// Resolve loads the YAML configuration and applies the flags on top.
func (c *Config) Resolve() (*config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	if c.Image != "" {
		cfg.Ingest.Image = c.Image
	}
	if c.Caption != "" {
		cfg.Ingest.Caption = c.Caption
	}
	if c.TextOnly {
		cfg.Ingest.TextOnly = true
	}
	if c.Width > 0 {
		cfg.Viewport.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Viewport.Height = c.Height
	}
	if c.Brush != "" {
		cfg.Brush.Mode = c.Brush
	}
	if c.Render != "" {
		cfg.Render.Mode = c.Render
	}
	if c.Telemetry != "" {
		cfg.Telemetry.Path = c.Telemetry
	}
	if c.TPS > 0 {
		cfg.TPS = c.TPS
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.NoHUD {
		cfg.HUD = false
	}
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}
