package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when parsing an unrecognised render mode name.
var ErrUnknownMode = errors.New("render: unknown mode")

// Mode selects which field the renderer colours fluid cells by.
type Mode uint8

const (
	// ModeSmoke shows the smoke colour directly.
	ModeSmoke Mode = iota
	// ModeVelocity maps cell-centre speed from black through cyan to white.
	ModeVelocity
	// ModeDivergence maps the last projection residual onto blue/white/red.
	ModeDivergence
)

// Modes lists every mode in cycling order.
var Modes = []Mode{ModeSmoke, ModeVelocity, ModeDivergence}

func (m Mode) String() string {
	switch m {
	case ModeSmoke:
		return "smoke"
	case ModeVelocity:
		return "velocity"
	case ModeDivergence:
		return "divergence"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Next returns the mode after m in cycling order.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smoke":
		return ModeSmoke, nil
	case "velocity", "vel":
		return ModeVelocity, nil
	case "divergence", "div":
		return ModeDivergence, nil
	default:
		return ModeSmoke, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
