package constraint

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/navfold/internal/folder"
)

// TokenBudget constrains tool output to a character budget as a cheap proxy
// for token count (~4 chars/token, no real tokenizer).
//
// Folders operate on line budgets, so an over-budget call converts the
// character budget into an approximate line budget using the content's
// average line length. The conversion can under- or over-shoot: the
// character budget is a target, not a hard ceiling.
type TokenBudget struct {
	maxChars int
	folder   folder.Folder
	logger   *Logger
}

// NewTokenBudget creates a character-count constraint. maxChars must be >= 1.
func NewTokenBudget(maxChars int, opts ...Option) (*TokenBudget, error) {
	if maxChars < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxChars, maxChars)
	}
	o := newOptions(opts)
	return &TokenBudget{
		maxChars: maxChars,
		folder:   o.folder,
		logger:   NewLogger(o.logger),
	}, nil
}

// Name returns the constraint identifier.
func (*TokenBudget) Name() string { return "token_budget" }

// MaxChars returns the configured character budget.
func (c *TokenBudget) MaxChars() int { return c.maxChars }

// Folder returns the configured folding strategy.
func (c *TokenBudget) Folder() folder.Folder { return c.folder }

// Apply checks the character count against the budget (inclusive limit).
func (c *TokenBudget) Apply(content string) Result {
	total := len(content)

	if total <= c.maxChars {
		c.logger.Passthrough(c.Name(), strings.Count(content, "\n")+1, total)
		return Result{
			Content:      content,
			WasTruncated: false,
			Metadata: Metadata{
				CharsShown: total,
				TotalChars: total,
			},
		}
	}

	// Derive a line budget from the character budget via the average
	// line length, flooring both at 1.
	avgLineLen := total / (strings.Count(content, "\n") + 1)
	if avgLineLen < 1 {
		avgLineLen = 1
	}
	budgetLines := c.maxChars / avgLineLen
	if budgetLines < 1 {
		budgetLines = 1
	}

	folded := c.folder.Fold(content, budgetLines)
	hidden := total - c.maxChars
	c.logger.Folded(c.Name(), c.folder.Name(), total, hidden)

	return Result{
		Content:      folded,
		WasTruncated: true,
		Metadata: Metadata{
			CharsShown:  len(folded),
			CharsHidden: hidden,
			TotalChars:  total,
			Folder:      c.folder.Name(),
		},
	}
}

// String implements fmt.Stringer for experiment logs.
func (c *TokenBudget) String() string {
	return fmt.Sprintf("TokenBudget(max_chars=%d, folder=%s)", c.maxChars, c.folder.Name())
}
