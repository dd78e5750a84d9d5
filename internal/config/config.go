// Package config loads the YAML configuration, layering a user file over the
// embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"smokegate/internal/raster"
	"smokegate/internal/render"
	"smokegate/internal/sims/smoke"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the gate.
type Config struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	Grid      GridConfig      `yaml:"grid"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Brush     BrushConfig     `yaml:"brush"`
	Render    RenderConfig    `yaml:"render"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Catalog   []raster.Entry  `yaml:"catalog"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	TPS  int   `yaml:"tps"`
	Seed int64 `yaml:"seed"`
	HUD  bool  `yaml:"hud"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ViewportConfig is the pixel size of the simulation surface.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig controls how the viewport is divided into cells.
type GridConfig struct {
	MinResolution int `yaml:"min_resolution"`
}

// PhysicsConfig mirrors smoke.Params.
type PhysicsConfig struct {
	AmbientTemperature float64 `yaml:"ambient_temperature"`
	HotTemperature     float64 `yaml:"hot_temperature"`
	TemperatureFactor  float64 `yaml:"temperature_factor"`
	SmokeFactor        float64 `yaml:"smoke_factor"`
	Gravity            float64 `yaml:"gravity"`
	VelocityDecay      float64 `yaml:"velocity_decay"`
	SmokeDiffusion     float64 `yaml:"smoke_diffusion"`
	HavocNoise         float64 `yaml:"havoc_noise"`
}

// BrushConfig holds pointer brush settings.
type BrushConfig struct {
	Mode   string  `yaml:"mode"`
	Radius float64 `yaml:"radius"`
	Force  float64 `yaml:"force"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	Mode          string  `yaml:"mode"`
	Background    Color   `yaml:"background"`
	GridLines     bool    `yaml:"grid_lines"`
	GridColor     Color   `yaml:"grid_color"`
	Arrows        bool    `yaml:"arrows"`
	ArrowStride   int     `yaml:"arrow_stride"`
	ArrowScale    float64 `yaml:"arrow_scale"`
	ArrowColor    Color   `yaml:"arrow_color"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxDivergence float64 `yaml:"max_divergence"`
}

// IngestConfig names the initial source and text rasterisation settings.
type IngestConfig struct {
	Image     string  `yaml:"image"`
	Caption   string  `yaml:"caption"`
	TextOnly  bool    `yaml:"text_only"`
	Threshold float64 `yaml:"threshold"`
	TextWidth float64 `yaml:"text_width"`
}

// TelemetryConfig controls per-frame CSV output.
type TelemetryConfig struct {
	Path  string `yaml:"path"`
	Every int    `yaml:"every"`
}

// DerivedConfig holds parsed enums.
type DerivedConfig struct {
	BrushMode  smoke.BrushMode
	RenderMode render.Mode
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults. It panics if they are malformed,
// which a test guards against.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Resolve re-parses the mode names after callers edit them, e.g. from flags.
func (c *Config) Resolve() error { return c.computeDerived() }

func (c *Config) computeDerived() error {
	brush, err := smoke.ParseBrushMode(c.Brush.Mode)
	if err != nil {
		return fmt.Errorf("brush.mode: %w", err)
	}
	mode, err := render.ParseMode(c.Render.Mode)
	if err != nil {
		return fmt.Errorf("render.mode: %w", err)
	}
	c.Derived.BrushMode = brush
	c.Derived.RenderMode = mode

	c.Physics.VelocityDecay = clampUnit(c.Physics.VelocityDecay)
	c.Physics.SmokeDiffusion = clampUnit(c.Physics.SmokeDiffusion)
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Telemetry.Every <= 0 {
		c.Telemetry.Every = 1
	}
	return nil
}

func clampUnit(v float64) float64 {
	return max(0, min(1, v))
}

// Params converts the physics and brush sections into simulation params.
func (c *Config) Params() smoke.Params {
	p := c.Physics
	return smoke.Params{
		AmbientTemperature: p.AmbientTemperature,
		HotTemperature:     p.HotTemperature,
		TemperatureFactor:  p.TemperatureFactor,
		SmokeFactor:        p.SmokeFactor,
		Gravity:            p.Gravity,
		VelocityDecay:      p.VelocityDecay,
		SmokeDiffusion:     p.SmokeDiffusion,
		HavocNoise:         p.HavocNoise,
		BrushRadius:        c.Brush.Radius,
		BrushForce:         c.Brush.Force,
	}
}

// SmokeConfig returns the simulation config for the configured viewport.
func (c *Config) SmokeConfig() smoke.Config {
	cell, cols, rows := smoke.LayoutFor(c.Viewport.Width, c.Viewport.Height, c.Grid.MinResolution)
	return smoke.Config{
		Cols:      cols,
		Rows:      rows,
		CellSize:  cell,
		Seed:      c.Seed,
		BrushMode: c.Derived.BrushMode,
		Params:    c.Params(),
	}
}

// RenderOptions returns the renderer settings.
func (c *Config) RenderOptions() render.Options {
	r := c.Render
	return render.Options{
		Mode:          c.Derived.RenderMode,
		Background:    color.RGBA(r.Background),
		GridLines:     r.GridLines,
		GridColor:     color.RGBA(r.GridColor),
		Arrows:        r.Arrows,
		ArrowStride:   r.ArrowStride,
		ArrowScale:    r.ArrowScale,
		ArrowColor:    color.RGBA(r.ArrowColor),
		MaxSpeed:      r.MaxSpeed,
		MaxDivergence: r.MaxDivergence,
	}
}

// IngestOptions returns rasteriser settings for a viewport. Non-positive
// sizes fall back to the configured viewport.
func (c *Config) IngestOptions(viewW, viewH int) raster.Options {
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = c.Viewport.Width, c.Viewport.Height
	}
	return raster.Options{
		ViewWidth:     viewW,
		ViewHeight:    viewH,
		MinResolution: c.Grid.MinResolution,
		Ambient:       c.Physics.AmbientTemperature,
		Hot:           c.Physics.HotTemperature,
		Threshold:     c.Ingest.Threshold,
		TextWidth:     c.Ingest.TextWidth,
	}
}

// Source returns the configured initial ingestion source.
func (c *Config) Source() raster.Source {
	return raster.Source{Image: c.Ingest.Image, Caption: c.Ingest.Caption, TextOnly: c.Ingest.TextOnly}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Color is an RGBA colour written as #rrggbb, #rrggbbaa or "transparent".
// Values are stored premultiplied, as image/color expects.
type Color color.RGBA

// ParseColor parses the textual colour forms accepted in configuration.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return Color{}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("config: bad colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("config: bad colour %q: %w", s, err)
	}
	nrgba := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return Color(color.RGBAModel.Convert(nrgba).(color.RGBA)), nil
}

func (c Color) String() string {
	if c.A == 0 {
		return "transparent"
	}
	n := color.NRGBAModel.Convert(color.RGBA(c)).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) { return c.String(), nil }
