// Command smoke-sweep scores decay and diffusion pairs on a scripted stroke
// across a pool of workers.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"smokegate/internal/app"
	"smokegate/internal/config"
	"smokegate/internal/sims/smoke"
)

func main() {
	configPath := flag.String("config", "", "YAML config file layered over the defaults")
	steps := flag.Int("steps", 240, "steps to simulate per candidate")
	dt := flag.Float64("dt", 1.0/60, "fixed step in seconds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	decays := flag.String("decay", "0,0.05,0.1,0.2,0.4", "comma separated velocity decay values")
	diffusions := flag.String("diffusion", "0,0.1,0.3", "comma separated smoke diffusion values")
	top := flag.Int("top", 5, "results to print")
	var overrides app.Overrides
	flag.Var(&overrides, "set", "base parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	base := smoke.ApplyMap(cfg.SmokeConfig(), overrides.Map())

	decayValues, err := parseList(*decays)
	if err != nil {
		log.Fatalf("decay: %v", err)
	}
	diffusionValues, err := parseList(*diffusions)
	if err != nil {
		log.Fatalf("diffusion: %v", err)
	}
	candidates := smoke.SweepGrid(decayValues, diffusionValues)
	if len(candidates) == 0 {
		log.Fatal("no candidates in [0,1]")
	}

	fmt.Printf("Sweeping %d parameter sets on %dx%d (%d workers, %d steps, brush %s)\n",
		len(candidates), base.Cols, base.Rows, *workers, *steps, base.BrushMode)

	start := time.Now()
	records := smoke.ParameterSweep(base, candidates, *steps, *dt, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(records)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(records) && i < *top; i++ {
		printRecord(i+1, records[i])
	}
}

func printRecord(rank int, rec smoke.SweepRecord) {
	r := rec.Result
	fmt.Printf("%2d) retention=%.3f peak=%.2f@%d final=%.2f maxDiv=%.4f smoke=%.1f %s\n",
		rank, r.Retention(), r.PeakEnergy, r.PeakStep, r.FinalEnergy, r.MaxDivergence, r.SmokeMass, rec.Candidate)
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
