package smoke

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBrushMode is returned when parsing an unrecognised brush mode name.
var ErrUnknownBrushMode = errors.New("smoke: unknown brush mode")

// BrushMode selects what a pointer drag injects.
type BrushMode uint8

const (
	// BrushVelocity pushes the fluid along the drag direction.
	BrushVelocity BrushMode = iota
	// BrushSmoke paints hot white smoke.
	BrushSmoke
	// BrushHavoc drags like BrushVelocity and adds random forcing every step.
	BrushHavoc
)

// BrushModes lists every mode in cycling order.
var BrushModes = []BrushMode{BrushVelocity, BrushSmoke, BrushHavoc}

func (m BrushMode) String() string {
	switch m {
	case BrushVelocity:
		return "vel"
	case BrushSmoke:
		return "smoke"
	case BrushHavoc:
		return "havoc"
	default:
		return fmt.Sprintf("BrushMode(%d)", uint8(m))
	}
}

// Next returns the mode after m in cycling order.
func (m BrushMode) Next() BrushMode {
	return BrushModes[(int(m)+1)%len(BrushModes)]
}

// ParseBrushMode converts a configuration name into a BrushMode.
func ParseBrushMode(s string) (BrushMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vel", "velocity":
		return BrushVelocity, nil
	case "smoke":
		return BrushSmoke, nil
	case "havoc":
		return BrushHavoc, nil
	default:
		return BrushVelocity, fmt.Errorf("%w: %q", ErrUnknownBrushMode, s)
	}
}
