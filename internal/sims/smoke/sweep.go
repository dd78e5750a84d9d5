package smoke

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// StrokeResult captures diagnostics from a deterministic stroke run used for
// tuning decay and diffusion.
type StrokeResult struct {
	// PeakEnergy is the largest kinetic energy seen after any step.
	PeakEnergy float64
	// PeakStep is the step at which PeakEnergy was first reached.
	PeakStep int
	// FinalEnergy is the kinetic energy after the last step.
	FinalEnergy float64
	// MaxDivergence is the worst stored residual over all steps.
	MaxDivergence float64
	// SmokeMass is the total smoke intensity over fluid cells at the end.
	SmokeMass float64
	// StepsSimulated counts the physics steps actually executed.
	StepsSimulated int
}

// Retention is FinalEnergy over PeakEnergy, zero for a run that never moved.
func (r StrokeResult) Retention() float64 {
	if r.PeakEnergy <= 0 {
		return 0
	}
	return r.FinalEnergy / r.PeakEnergy
}

// StrokeScenario resets a world from cfg, drags the brush across the middle
// row from a quarter to three quarters of the width during the first quarter
// of the run, and records energy and divergence after every step.
func StrokeScenario(cfg Config, steps int, dt float64) StrokeResult {
	if steps <= 0 || !(dt > 0) {
		return StrokeResult{}
	}
	world := NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	w, h := world.Grid().PixelSize()
	y := float64(h) / 2
	x0 := float64(w) / 4
	span := float64(w) / 2
	strokeSteps := max(steps/4, 1)

	var res StrokeResult
	lastX := x0
	for step := 1; step <= steps; step++ {
		if step <= strokeSteps {
			x := x0 + span*float64(step)/float64(strokeSteps)
			world.Brush(lastX, y, x, y)
			lastX = x
		}
		world.Step(dt)
		stats := world.Grid().Stats()
		if stats.KineticEnergy > res.PeakEnergy {
			res.PeakEnergy = stats.KineticEnergy
			res.PeakStep = step
		}
		res.MaxDivergence = math.Max(res.MaxDivergence, stats.MaxDivergence)
		res.FinalEnergy = stats.KineticEnergy
		res.SmokeMass = stats.SmokeMass
		res.StepsSimulated = step
	}
	return res
}

// SweepCandidate is one decay and diffusion pair.
type SweepCandidate struct {
	Decay     float64
	Diffusion float64
}

func (c SweepCandidate) String() string {
	return fmt.Sprintf("decay=%.3f diffusion=%.3f", c.Decay, c.Diffusion)
}

// SweepRecord pairs a candidate with its scenario result.
type SweepRecord struct {
	Candidate SweepCandidate
	Result    StrokeResult
}

// SweepGrid expands the cartesian product of decay and diffusion values.
// Values outside [0, 1] are dropped.
func SweepGrid(decays, diffusions []float64) []SweepCandidate {
	var out []SweepCandidate
	for _, d := range decays {
		if d < 0 || d > 1 {
			continue
		}
		for _, f := range diffusions {
			if f < 0 || f > 1 {
				continue
			}
			out = append(out, SweepCandidate{Decay: d, Diffusion: f})
		}
	}
	return out
}

// ParameterSweep evaluates every candidate with StrokeScenario on a pool of
// workers, each owning its own world. Records come back ordered by energy
// retention, highest first, ties broken by lower residual divergence.
func ParameterSweep(base Config, candidates []SweepCandidate, steps int, dt float64, workers int) []SweepRecord {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan SweepCandidate)
	results := make(chan SweepRecord)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				cfg := base
				cfg.Params.VelocityDecay = c.Decay
				cfg.Params.SmokeDiffusion = c.Diffusion
				results <- SweepRecord{Candidate: c, Result: StrokeScenario(cfg, steps, dt)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, c := range candidates {
			jobs <- c
		}
		close(jobs)
	}()

	all := make([]SweepRecord, 0, len(candidates))
	for rec := range results {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		ri, rj := all[i].Result.Retention(), all[j].Result.Retention()
		if ri != rj {
			return ri > rj
		}
		if all[i].Result.MaxDivergence != all[j].Result.MaxDivergence {
			return all[i].Result.MaxDivergence < all[j].Result.MaxDivergence
		}
		if all[i].Candidate.Decay != all[j].Candidate.Decay {
			return all[i].Candidate.Decay < all[j].Candidate.Decay
		}
		return all[i].Candidate.Diffusion < all[j].Candidate.Diffusion
	})
	return all
}
