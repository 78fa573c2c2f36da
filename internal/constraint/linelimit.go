package constraint

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/navfold/internal/folder"
)

// LineLimit constrains tool output to a maximum number of lines.
//
// Output at or under the limit passes through unchanged (the limit is
// inclusive). Over-budget output is delegated to the configured folder.
type LineLimit struct {
	maxLines int
	folder   folder.Folder
	logger   *Logger
}

// NewLineLimit creates a line-count constraint. maxLines must be >= 1.
func NewLineLimit(maxLines int, opts ...Option) (*LineLimit, error) {
	if maxLines < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxLines, maxLines)
	}
	o := newOptions(opts)
	return &LineLimit{
		maxLines: maxLines,
		folder:   o.folder,
		logger:   NewLogger(o.logger),
	}, nil
}

// Name returns the constraint identifier.
func (*LineLimit) Name() string { return "line_limit" }

// MaxLines returns the configured line budget.
func (c *LineLimit) MaxLines() int { return c.maxLines }

// Folder returns the configured folding strategy.
func (c *LineLimit) Folder() folder.Folder { return c.folder }

// Apply checks the line count against the budget. The hidden-line count in
// the metadata is nominal (total minus budget): it reflects the requested
// compression, not the folder's literal output size.
func (c *LineLimit) Apply(content string) Result {
	lines := strings.Split(content, "\n")
	total := len(lines)

	if total <= c.maxLines {
		c.logger.Passthrough(c.Name(), total, len(content))
		return Result{
			Content:      content,
			WasTruncated: false,
			Metadata: Metadata{
				LinesShown: total,
				TotalLines: total,
			},
		}
	}

	folded := c.folder.Fold(content, c.maxLines)
	hidden := total - c.maxLines
	c.logger.Folded(c.Name(), c.folder.Name(), total, hidden)

	return Result{
		Content:      folded,
		WasTruncated: true,
		Metadata: Metadata{
			LinesShown:  c.maxLines,
			LinesHidden: hidden,
			TotalLines:  total,
			Folder:      c.folder.Name(),
		},
	}
}

// String implements fmt.Stringer for experiment logs.
func (c *LineLimit) String() string {
	return fmt.Sprintf("LineLimit(max_lines=%d, folder=%s)", c.maxLines, c.folder.Name())
}
