package constraint

// Default budgets for constraints constructed by profile presets.
const (
	// DefaultMaxLines is the LineLimit default (a moderate window).
	DefaultMaxLines = 200
	// DefaultMaxChars is the TokenBudget default (~1000 tokens at the
	// 4 chars/token heuristic).
	DefaultMaxChars = 4000
)

// Metadata carries strategy-specific statistics about one Apply call.
//
// Field population follows the constraint type: LineLimit fills the line
// counters, TokenBudget the character counters, Unconstrained only
// TotalChars. A zero field outside the active set means "not applicable",
// never an error.
type Metadata struct {
	LinesShown  int    `json:"lines_shown,omitempty"`
	LinesHidden int    `json:"lines_hidden,omitempty"`
	TotalLines  int    `json:"total_lines,omitempty"`
	CharsShown  int    `json:"chars_shown,omitempty"`
	CharsHidden int    `json:"chars_hidden,omitempty"`
	TotalChars  int    `json:"total_chars,omitempty"`
	Folder      string `json:"folder,omitempty"`
}

// Result is the outcome of applying an observation constraint. It is a
// value object: construct once, never mutate.
type Result struct {
	// Content is the text to actually show the agent.
	Content string `json:"content"`
	// WasTruncated reports whether folding was applied. When false,
	// Content is byte-for-byte identical to the input.
	WasTruncated bool `json:"was_truncated"`
	// Metadata holds per-strategy statistics for telemetry aggregation.
	Metadata Metadata `json:"metadata"`
}

// Constraint decides whether raw tool output exceeds a budget and, if so,
// how it is compressed before the agent sees it.
type Constraint interface {
	// Apply evaluates content against the budget and returns the
	// (possibly folded) content with metadata. It never fails.
	Apply(content string) Result
	// Name returns the constraint identifier reported in telemetry.
	Name() string
}
