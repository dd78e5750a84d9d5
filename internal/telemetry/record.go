// Package telemetry records per-frame simulation statistics.
package telemetry

import (
	"log/slog"

	"smokegate/internal/sims/smoke"
)

// FrameRecord is one row of frames.csv.
type FrameRecord struct {
	Frame   int     `csv:"frame"`
	SimTime float64 `csv:"sim_time"`
	DT      float64 `csv:"dt"`
	Steps   uint64  `csv:"steps"`
	Brush   string  `csv:"brush"`

	Cols       int `csv:"cols"`
	Rows       int `csv:"rows"`
	FluidCells int `csv:"fluid_cells"`

	MaxDivergence  float64 `csv:"max_divergence"`
	MeanDivergence float64 `csv:"mean_divergence"`
	KineticEnergy  float64 `csv:"kinetic_energy"`
	SmokeMass      float64 `csv:"smoke_mass"`
}

// Capture summarises w after a frame.
func Capture(frame int, simTime, dt float64, w *smoke.World) FrameRecord {
	g := w.Grid()
	s := g.Stats()
	return FrameRecord{
		Frame:          frame,
		SimTime:        simTime,
		DT:             dt,
		Steps:          w.Steps(),
		Brush:          w.BrushMode().String(),
		Cols:           g.Cols(),
		Rows:           g.Rows(),
		FluidCells:     s.FluidCells,
		MaxDivergence:  s.MaxDivergence,
		MeanDivergence: s.MeanDivergence,
		KineticEnergy:  s.KineticEnergy,
		SmokeMass:      s.SmokeMass,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r FrameRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frame", r.Frame),
		slog.Float64("sim_time", r.SimTime),
		slog.Float64("dt", r.DT),
		slog.Uint64("steps", r.Steps),
		slog.String("brush", r.Brush),
		slog.Int("fluid_cells", r.FluidCells),
		slog.Float64("max_divergence", r.MaxDivergence),
		slog.Float64("mean_divergence", r.MeanDivergence),
		slog.Float64("kinetic_energy", r.KineticEnergy),
		slog.Float64("smoke_mass", r.SmokeMass),
	)
}
