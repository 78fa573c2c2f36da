package folder

import (
	"fmt"
	"strings"
)

// DefaultHeadRatio is the budget fraction allocated to the head when no
// ratio is supplied (60% head, 40% tail).
const DefaultHeadRatio = 0.6

// HeadTail shows the first and last portions of output, eliding the middle.
//
// The head preserves the context at the start; the tail preserves the most
// recent state. Well suited to log-like or incrementally-appended output.
type HeadTail struct {
	headRatio float64
}

// NewHeadTail creates a head+tail folder. headRatio is the fraction of the
// line budget allocated to the head and must lie strictly between 0 and 1.
func NewHeadTail(headRatio float64) (*HeadTail, error) {
	if headRatio <= 0.0 || headRatio >= 1.0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidHeadRatio, headRatio)
	}
	return &HeadTail{headRatio: headRatio}, nil
}

// Name returns the strategy identifier.
func (*HeadTail) Name() string { return "head_tail" }

// HeadRatio returns the configured head fraction.
func (f *HeadTail) HeadRatio() float64 { return f.headRatio }

// Fold emits the first headN lines, an elision marker, and the last tailN
// lines, where headN and tailN partition the budget by the head ratio.
// Both portions get at least one line. The hidden count in the marker is
// nominal and may be negative when the content is shorter than the budget;
// that inaccuracy is accepted rather than corrected.
func (f *HeadTail) Fold(content string, budgetLines int) string {
	lines := strings.Split(content, "\n")
	total := len(lines)

	headN := int(float64(budgetLines) * f.headRatio)
	if headN < 1 {
		headN = 1
	}
	tailN := budgetLines - headN
	if tailN < 1 {
		tailN = 1
	}
	hidden := total - headN - tailN

	if headN > total {
		headN = total
	}
	tailStart := total - tailN
	if tailStart < 0 {
		tailStart = 0
	}

	out := make([]string, 0, headN+(total-tailStart)+3)
	out = append(out, lines[:headN]...)
	out = append(out, "")
	out = append(out, fmt.Sprintf("[... %d lines elided ...]", hidden))
	out = append(out, "")
	out = append(out, lines[tailStart:]...)
	return strings.Join(out, "\n")
}

// String implements fmt.Stringer for constraint logs.
func (f *HeadTail) String() string {
	return fmt.Sprintf("HeadTail(head_ratio=%v)", f.headRatio)
}
