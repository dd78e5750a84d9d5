package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"smokegate/internal/sims/smoke"
)

// ErrBadOverride reports a -set value that is not key=value.
var ErrBadOverride = errors.New("app: override must be key=value")

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	if o == nil {
		return ""
	}
	return strings.Join(*o, ",")
}

// Set appends one key=value pair.
func (o *Overrides) Set(value string) error {
	if k, _, ok := strings.Cut(value, "="); !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("%w: %q", ErrBadOverride, value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the overrides keyed by name; later pairs win.
func (o Overrides) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

// Tune applies physics and brush overrides to the live world. Grid
// dimensions are owned by ingestion and are not touched.
func (s *Session) Tune(overrides map[string]string) {
	tuned := smoke.ApplyMap(s.world.Config(), overrides)
	s.world.SetParams(tuned.Params)
	s.world.SetBrushMode(tuned.BrushMode)
}

// Stroke is a straight pointer drag in surface pixels, replayed over a number
// of frames.
type Stroke struct {
	X0, Y0, X1, Y1 float64
	Frames         int
}

// ParseStroke reads "x0,y0,x1,y1". An empty string yields the zero stroke.
func ParseStroke(s string, frames int) (Stroke, error) {
	if strings.TrimSpace(s) == "" {
		return Stroke{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Stroke{}, fmt.Errorf("app: stroke %q: want x0,y0,x1,y1", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Stroke{}, fmt.Errorf("app: stroke %q: %w", s, err)
		}
		v[i] = f
	}
	return Stroke{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3], Frames: max(frames, 1)}, nil
}

// Active reports whether the stroke does anything.
func (st Stroke) Active() bool { return st.Frames > 0 }

// Apply drives the session pointer for the given frame: press on frame 0,
// move linearly until Frames, then release.
func (st Stroke) Apply(s *Session, frame int) {
	if !st.Active() || frame > st.Frames {
		return
	}
	if frame == 0 {
		s.Press(st.X0, st.Y0)
		return
	}
	t := float64(frame) / float64(st.Frames)
	s.Move(st.X0+(st.X1-st.X0)*t, st.Y0+(st.Y1-st.Y0)*t)
	if frame == st.Frames {
		s.Release()
	}
}
