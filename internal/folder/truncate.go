package folder

import (
	"fmt"
	"strings"
)

// Truncate keeps the first budgetLines lines and discards the remainder.
//
// This is the naive baseline: the agent sees the start of the output and
// nothing else. Use it as the control arm when measuring smarter strategies.
type Truncate struct{}

// NewTruncate creates a head-only truncation folder.
func NewTruncate() *Truncate {
	return &Truncate{}
}

// Name returns the strategy identifier.
func (*Truncate) Name() string { return "truncate" }

// Fold keeps the first budgetLines lines verbatim and appends a notice
// reporting how many lines were hidden.
func (*Truncate) Fold(content string, budgetLines int) string {
	lines := strings.Split(content, "\n")
	total := len(lines)

	keep := budgetLines
	if keep < 0 {
		keep = 0
	}
	if keep > total {
		keep = total
	}

	// Nominal hidden count: total minus budget, even when the budget
	// exceeds the content. Matches the constraint's metadata accounting.
	hidden := total - budgetLines

	out := make([]string, 0, keep+2)
	out = append(out, lines[:keep]...)
	out = append(out, "")
	out = append(out, fmt.Sprintf(
		"[TRUNCATED: %d of %d lines hidden. Use targeted queries to navigate.]",
		hidden, total,
	))
	return strings.Join(out, "\n")
}

// String implements fmt.Stringer for constraint logs.
func (t *Truncate) String() string { return "Truncate()" }
