package orf

import (
	"errors"
	"fmt"
)

// Mode selects which peptides are extracted from a translated frame.
type Mode string

// Parsing modes.
const (
	// ModeAll keeps the peptide before the first stop and every peptide
	// starting at an M after it.
	ModeAll Mode = "all"
	// ModeBeforeStop keeps only the peptide before the first stop.
	ModeBeforeStop Mode = "before_stop"
)

// ErrInvalidMode is returned for a mode other than "all" or "before_stop".
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode validates a caller-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAll, ModeBeforeStop:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q: use %q or %q", ErrInvalidMode, s, ModeBeforeStop, ModeAll)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}
