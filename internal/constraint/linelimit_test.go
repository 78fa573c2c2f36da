package constraint

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/navfold/internal/folder"
)

func makeLines(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(parts, "\n")
}

func TestNewLineLimit_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		maxLines int
	}{
		{"zero", 0},
		{"negative", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewLineLimit(tt.maxLines)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrInvalidMaxLines))
			assert.True(t, errors.Is(err, ErrInvalidConfiguration),
				"specific sentinel should wrap the configuration class")
		})
	}
}

func TestLineLimit_Passthrough(t *testing.T) {
	c, err := NewLineLimit(50)
	require.NoError(t, err)

	text := makeLines(30)
	result := c.Apply(text)

	assert.False(t, result.WasTruncated)
	assert.Equal(t, text, result.Content, "passthrough must be byte-identical")
	assert.Equal(t, 30, result.Metadata.LinesShown)
	assert.Equal(t, 0, result.Metadata.LinesHidden)
	assert.Equal(t, 30, result.Metadata.TotalLines)
	assert.Empty(t, result.Metadata.Folder)
}

func TestLineLimit_BoundaryIsInclusive(t *testing.T) {
	c, err := NewLineLimit(10)
	require.NoError(t, err)

	// Exactly at the limit: passthrough, not truncated.
	text := makeLines(10)
	result := c.Apply(text)
	assert.False(t, result.WasTruncated)
	assert.Equal(t, text, result.Content)

	// One line over: truncated.
	result = c.Apply(makeLines(11))
	assert.True(t, result.WasTruncated)
}

func TestLineLimit_EmptyString(t *testing.T) {
	c, err := NewLineLimit(1)
	require.NoError(t, err)

	// An empty string is one empty line, never over a positive limit.
	result := c.Apply("")
	assert.False(t, result.WasTruncated)
	assert.Equal(t, "", result.Content)
	assert.Equal(t, 1, result.Metadata.TotalLines)
}

func TestLineLimit_TruncateScenario(t *testing.T) {
	// 100 numbered lines through a 50-line budget with the default folder.
	c, err := NewLineLimit(50)
	require.NoError(t, err)

	result := c.Apply(makeLines(100))
	require.True(t, result.WasTruncated)
	assert.Equal(t, 50, result.Metadata.LinesShown)
	assert.Equal(t, 50, result.Metadata.LinesHidden)
	assert.Equal(t, 100, result.Metadata.TotalLines)
	assert.Equal(t, "truncate", result.Metadata.Folder)

	before, _, found := strings.Cut(result.Content, "[TRUNCATED")
	require.True(t, found, "notice marker missing")
	assert.Contains(t, before, "line 0")
	assert.Contains(t, before, "line 49")
	assert.NotContains(t, before, "line 50")
	assert.NotContains(t, before, "line 99")
}

func TestLineLimit_HeadTailScenario(t *testing.T) {
	ht, err := folder.NewHeadTail(0.5)
	require.NoError(t, err)
	c, err := NewLineLimit(10, WithFolder(ht))
	require.NoError(t, err)

	result := c.Apply(makeLines(100))
	require.True(t, result.WasTruncated)
	assert.Equal(t, "head_tail", result.Metadata.Folder)
	assert.Contains(t, result.Content, "line 0")
	assert.Contains(t, result.Content, "line 99")
	assert.Contains(t, result.Content, "lines elided")
	assert.NotContains(t, result.Content, "line 50")
}

func TestLineLimit_StructureFolder(t *testing.T) {
	c, err := NewLineLimit(10, WithFolder(folder.NewStructure()))
	require.NoError(t, err)

	code := "import os\nimport sys\n\ndef main():\n    pass\n\ndef helper():\n    return 1\n" +
		strings.Repeat("x = 1\n", 20)
	result := c.Apply(code)
	require.True(t, result.WasTruncated)
	assert.Equal(t, "structure", result.Metadata.Folder)
	assert.Contains(t, result.Content, "def main():")
	assert.Contains(t, result.Content, "import os")
}

func TestLineLimit_UnderBudgetIgnoresFolder(t *testing.T) {
	c, err := NewLineLimit(100, WithFolder(folder.NewStructure()))
	require.NoError(t, err)

	text := makeLines(10)
	result := c.Apply(text)
	assert.False(t, result.WasTruncated)
	assert.Equal(t, text, result.Content)
}

func TestLineLimit_Monotonicity(t *testing.T) {
	// Raising the budget while holding content fixed never increases
	// the hidden-line count.
	content := makeLines(120)
	prevHidden := 1 << 30
	for _, maxLines := range []int{1, 10, 50, 100, 119, 120, 200} {
		c, err := NewLineLimit(maxLines)
		require.NoError(t, err)
		hidden := c.Apply(content).Metadata.LinesHidden
		assert.LessOrEqual(t, hidden, prevHidden,
			"max_lines=%d: lines_hidden grew", maxLines)
		prevHidden = hidden
	}
}

func TestLineLimit_String(t *testing.T) {
	c, err := NewLineLimit(50)
	require.NoError(t, err)
	assert.Equal(t, "LineLimit(max_lines=50, folder=truncate)", c.String())
}
