package smoke

import "strconv"

// Params holds the tunable physical constants of the smoke sim.
type Params struct {
	AmbientTemperature float64
	HotTemperature     float64

	// Buoyancy: (-TemperatureFactor*(T-ambient) + SmokeFactor*(r+g+b)) * Gravity.
	TemperatureFactor float64
	SmokeFactor       float64
	Gravity           float64

	// VelocityDecay is a damping rate per second in [0, 1].
	VelocityDecay float64
	// SmokeDiffusion is a blend rate per second in [0, 1].
	SmokeDiffusion float64
	// HavocNoise scales the random forcing applied in havoc mode.
	HavocNoise float64

	// BrushRadius is measured in cells.
	BrushRadius float64
	BrushForce  float64
}

// Config controls the smoke simulation dimensions and tunables.
type Config struct {
	Cols     int
	Rows     int
	CellSize int

	Seed      int64
	BrushMode BrushMode

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cols:      120,
		Rows:      80,
		CellSize:  8,
		Seed:      1,
		BrushMode: BrushVelocity,
		Params: Params{
			AmbientTemperature: 0,
			HotTemperature:     100,
			TemperatureFactor:  0.02,
			SmokeFactor:        0.0002,
			Gravity:            9.81,
			VelocityDecay:      0.1,
			SmokeDiffusion:     0.1,
			HavocNoise:         30,
			BrushRadius:        3,
			BrushForce:         8,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base from a string map.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinGridSize {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinGridSize {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if mode, err := ParseBrushMode(v); err == nil {
			c.BrushMode = mode
		}
	}

	p := &c.Params
	floatKey := func(key string, dst *float64, valid func(float64) bool) {
		v, ok := cfg[key]
		if !ok {
			return
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || (valid != nil && !valid(parsed)) {
			return
		}
		*dst = parsed
	}
	unit := func(v float64) bool { return v >= 0 && v <= 1 }
	nonNegative := func(v float64) bool { return v >= 0 }

	floatKey("ambient", &p.AmbientTemperature, nil)
	floatKey("hot", &p.HotTemperature, nil)
	floatKey("temp_factor", &p.TemperatureFactor, nil)
	floatKey("smoke_factor", &p.SmokeFactor, nil)
	floatKey("gravity", &p.Gravity, nil)
	floatKey("decay", &p.VelocityDecay, unit)
	floatKey("diffusion", &p.SmokeDiffusion, unit)
	floatKey("havoc", &p.HavocNoise, nonNegative)
	floatKey("brush_radius", &p.BrushRadius, nonNegative)
	floatKey("brush_force", &p.BrushForce, nil)
	return c
}
