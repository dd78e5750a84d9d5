package ui

import (
	"image"
	"strings"
	"testing"

	"smokegate/internal/core"
	"smokegate/internal/render"
	"smokegate/internal/sims/smoke"
)

func TestLayoutControlsRightAligned(t *testing.T) {
	rows := layoutControls(2, 240, 50)
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	if want := image.Rect(204, 56, 228, 80); rows[0].plus != want {
		t.Fatalf("plus = %v, want %v", rows[0].plus, want)
	}
	if want := image.Rect(174, 56, 198, 80); rows[0].minus != want {
		t.Fatalf("minus = %v, want %v", rows[0].minus, want)
	}
	if rows[1].top != 50+lineHeight {
		t.Fatalf("second row top = %d", rows[1].top)
	}
	if !pointInRect(204, 56, rows[0].plus) || pointInRect(228, 56, rows[0].plus) {
		t.Fatalf("pointInRect bounds are not half-open")
	}
}

func TestAdjustRespectsRange(t *testing.T) {
	ctrl := core.ParameterControl{Key: "decay", Step: 0.05, Min: 0, Max: 1}
	if v, ok := adjust(ctrl, 0.5, 1); !ok || v < 0.549 || v > 0.551 {
		t.Fatalf("adjust up = %g, %v", v, ok)
	}
	if _, ok := adjust(ctrl, 0, -1); ok {
		t.Fatalf("adjust below min allowed")
	}
	if v, ok := adjust(ctrl, 0.98, 1); ok || v != 0.98 {
		t.Fatalf("adjust past max = %g, %v", v, ok)
	}
	if v, ok := adjust(ctrl, 0.95, 1); !ok || v > 1 {
		t.Fatalf("adjust near max = %g, %v", v, ok)
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	cases := []struct {
		step, value float64
		want        string
	}{
		{0.05, 0.1, "0.10"},
		{1, 8, "8.0"},
		{0.005, 0.25, "0.250"},
		{0.0001, 0.0002, "0.0002"},
	}
	for _, tc := range cases {
		if got := formatFloat(tc.step, tc.value); got != tc.want {
			t.Fatalf("formatFloat(%g, %g) = %q, want %q", tc.step, tc.value, got, tc.want)
		}
	}
}

func TestStatusLines(t *testing.T) {
	lines := Status{Brush: smoke.BrushHavoc, Render: render.ModeDivergence, Arrows: true, Paused: true, Steps: 7, Source: "Pug"}.Lines()
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"havoc", "divergence", "grid off", "arrows on", "paused  step 7", "Pug"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("status %q missing %q", joined, want)
		}
	}
	if !strings.Contains(joined, "catalog empty") {
		t.Fatalf("empty catalog not reported: %q", joined)
	}
	if lines := (Status{Catalog: 10}).Lines(); lines[4] != "next image [N] of 10" {
		t.Fatalf("catalog line = %q", lines[4])
	}
	if got := (Status{Loading: true, Paused: true}).Lines()[3]; !strings.HasPrefix(got, "loading") {
		t.Fatalf("loading state hidden: %q", got)
	}
}

func TestBrushColorsDiffer(t *testing.T) {
	seen := map[[3]uint8]bool{}
	for _, m := range smoke.BrushModes {
		c := brushColor(m)
		seen[[3]uint8{c.R, c.G, c.B}] = true
	}
	if len(seen) != len(smoke.BrushModes) {
		t.Fatalf("brush modes share cursor colours")
	}
	if w := ringWidth(4); w != 1 {
		t.Fatalf("ringWidth(4) = %g", w)
	}
}
