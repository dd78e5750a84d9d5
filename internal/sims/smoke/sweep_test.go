package smoke

import "testing"

func TestStrokeScenarioMovesAndSettles(t *testing.T) {
	cfg := quietConfig(16, 12, 10)
	res := StrokeScenario(cfg, 12, 0.05)

	if res.StepsSimulated != 12 {
		t.Fatalf("steps simulated = %d, want 12", res.StepsSimulated)
	}
	if res.PeakEnergy <= 0 {
		t.Fatalf("stroke left no kinetic energy")
	}
	if res.PeakStep < 1 || res.PeakStep > 12 {
		t.Fatalf("peak step %d out of range", res.PeakStep)
	}
	if r := res.Retention(); r < 0 || r > 1 {
		t.Fatalf("retention %g outside [0,1]", r)
	}
	if again := StrokeScenario(cfg, 12, 0.05); again != res {
		t.Fatalf("scenario not deterministic: %+v vs %+v", res, again)
	}
}

func TestStrokeScenarioRejectsEmptyRuns(t *testing.T) {
	cfg := quietConfig(8, 8, 4)
	if res := StrokeScenario(cfg, 0, 0.05); res != (StrokeResult{}) {
		t.Fatalf("zero steps should yield zero result, got %+v", res)
	}
	if res := StrokeScenario(cfg, 5, 0); res != (StrokeResult{}) {
		t.Fatalf("zero dt should yield zero result, got %+v", res)
	}
	if r := (StrokeResult{}).Retention(); r != 0 {
		t.Fatalf("retention of still run = %g", r)
	}
}

func TestSweepGridDropsOutOfRange(t *testing.T) {
	got := SweepGrid([]float64{-0.1, 0, 0.5}, []float64{0.2, 1.5})
	want := []SweepCandidate{{Decay: 0, Diffusion: 0.2}, {Decay: 0.5, Diffusion: 0.2}}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParameterSweepMatchesSerialRuns(t *testing.T) {
	base := quietConfig(14, 10, 8)
	candidates := SweepGrid([]float64{0, 0.5, 1}, []float64{0, 0.3})
	records := ParameterSweep(base, candidates, 8, 0.05, 3)

	if len(records) != len(candidates) {
		t.Fatalf("got %d records, want %d", len(records), len(candidates))
	}
	seen := make(map[SweepCandidate]bool)
	for i, rec := range records {
		seen[rec.Candidate] = true
		cfg := base
		cfg.Params.VelocityDecay = rec.Candidate.Decay
		cfg.Params.SmokeDiffusion = rec.Candidate.Diffusion
		if want := StrokeScenario(cfg, 8, 0.05); rec.Result != want {
			t.Fatalf("%s: pooled result %+v differs from serial %+v", rec.Candidate, rec.Result, want)
		}
		if i > 0 && records[i-1].Result.Retention() < rec.Result.Retention() {
			t.Fatalf("records not ordered by retention at %d", i)
		}
	}
	if len(seen) != len(candidates) {
		t.Fatalf("duplicate or missing candidates: %v", seen)
	}
}

func TestParameterSweepDefaultsWorkers(t *testing.T) {
	records := ParameterSweep(quietConfig(8, 8, 4), SweepGrid([]float64{0.1}, []float64{0.1}), 2, 0.05, 0)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}
