package folder

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultPatterns match lines that act as structural markers: definitions,
// imports, headers, and separators across common syntaxes. Patterns are
// anchored at line start; extra patterns supplied by callers should be too.
var defaultPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*(class\s+\w+|def\s+\w+|async\s+def\s+\w+)`),      // Python defs
	regexp.MustCompile(`^\s*(import\s+|from\s+\w+\s+import)`),                // imports
	regexp.MustCompile(`^\s*(#{1,3}\s+)`),                                    // markdown headers
	regexp.MustCompile(`^\s*(function\s+\w+|const\s+\w+\s*=|export\s+)`),     // JS/TS defs
	regexp.MustCompile(`^\s*(func\s+|type\s+\w+\s+(struct|interface)\b)`),    // Go defs
	regexp.MustCompile(`^(---|\*\*\*|===)`),                                  // separators
}

// Structure extracts structural markers and discards implementation bodies.
//
// The fold scans every line in order and keeps those matching a structural
// pattern. When the markers fit within the budget, the remaining budget is
// head-filled with the first non-structural lines, preserving locality. When
// markers exceed the budget, only the first budgetLines markers are kept;
// later markers are dropped regardless of relevance. That first-N policy is
// deliberate and kept for compatibility with existing ablation baselines.
type Structure struct {
	patterns []*regexp.Regexp
}

// NewStructure creates a structural-extraction folder. Extra patterns extend
// the built-in set and are matched against the start of each line.
func NewStructure(extraPatterns ...*regexp.Regexp) *Structure {
	patterns := make([]*regexp.Regexp, 0, len(defaultPatterns)+len(extraPatterns))
	patterns = append(patterns, defaultPatterns...)
	patterns = append(patterns, extraPatterns...)
	return &Structure{patterns: patterns}
}

// NewStructureFromStrings compiles the given expressions and creates a
// structural folder with them as extra patterns. Used by the profile loader
// where patterns arrive as config strings.
func NewStructureFromStrings(exprs []string) (*Structure, error) {
	extra := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
		}
		extra = append(extra, re)
	}
	return NewStructure(extra...), nil
}

// Name returns the strategy identifier.
func (*Structure) Name() string { return "structure" }

// PatternCount returns the number of configured patterns.
func (f *Structure) PatternCount() int { return len(f.patterns) }

// Fold keeps structural lines (in document order), head-fills any remaining
// budget with non-structural lines from the top of the document, and appends
// a notice reporting how many markers were shown.
func (f *Structure) Fold(content string, budgetLines int) string {
	lines := strings.Split(content, "\n")
	total := len(lines)

	structural := make([]int, 0, budgetLines)
	for i, line := range lines {
		if f.isStructural(line) {
			structural = append(structural, i)
		}
	}

	var result []string
	if len(structural) >= budgetLines {
		result = make([]string, 0, budgetLines+2)
		for _, i := range structural[:budgetLines] {
			result = append(result, lines[i])
		}
	} else {
		// Structural markers first, then head-fill the rest of the budget
		// with lines not already counted as structural.
		structSet := make(map[int]struct{}, len(structural))
		result = make([]string, 0, budgetLines+2)
		for _, i := range structural {
			structSet[i] = struct{}{}
			result = append(result, lines[i])
		}
		remaining := budgetLines - len(structural)
		for i, line := range lines {
			if remaining <= 0 {
				break
			}
			if _, ok := structSet[i]; ok {
				continue
			}
			result = append(result, line)
			remaining--
		}
	}

	shown := len(result)
	result = append(result, "")
	result = append(result, fmt.Sprintf(
		"[FOLDED: showing %d structural markers from %d lines. Query specific symbols to expand.]",
		shown, total,
	))
	return strings.Join(result, "\n")
}

func (f *Structure) isStructural(line string) bool {
	for _, p := range f.patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer for constraint logs.
func (f *Structure) String() string {
	return fmt.Sprintf("Structure(patterns=%d)", len(f.patterns))
}
