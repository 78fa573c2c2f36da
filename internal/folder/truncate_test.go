package folder

import (
	"fmt"
	"strings"
	"testing"
)

func makeLines(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(parts, "\n")
}

func TestTruncate_Fold(t *testing.T) {
	f := NewTruncate()
	result := f.Fold(makeLines(100), 10)

	if !strings.Contains(result, "line 0") {
		t.Errorf("Fold() missing first line")
	}
	if !strings.Contains(result, "line 9") {
		t.Errorf("Fold() missing last budgeted line")
	}
	if !strings.Contains(result, "[TRUNCATED: 90 of 100 lines hidden") {
		t.Errorf("Fold() missing truncation notice, got:\n%s", result)
	}
}

func TestTruncate_FoldBudgetBoundary(t *testing.T) {
	// Line N-1 is included, line N is excluded.
	f := NewTruncate()
	result := f.Fold(makeLines(50), 20)

	lines := strings.Split(result, "\n")
	if lines[0] != "line 0" {
		t.Errorf("first line = %q, want %q", lines[0], "line 0")
	}
	if lines[19] != "line 19" {
		t.Errorf("line at budget boundary = %q, want %q", lines[19], "line 19")
	}
	if lines[20] != "" {
		t.Errorf("separator line = %q, want blank", lines[20])
	}
	if strings.Contains(strings.Join(lines[:20], "\n"), "line 20") {
		t.Errorf("Fold() kept line past the budget")
	}
}

func TestTruncate_FoldBudgetLargerThanContent(t *testing.T) {
	f := NewTruncate()
	result := f.Fold(makeLines(5), 10)

	// All content survives; the notice still appears with a nominal
	// (negative) hidden count, which is accepted.
	for i := 0; i < 5; i++ {
		want := fmt.Sprintf("line %d", i)
		if !strings.Contains(result, want) {
			t.Errorf("Fold() missing %q", want)
		}
	}
	if !strings.Contains(result, "[TRUNCATED:") {
		t.Errorf("Fold() missing notice")
	}
}

func TestTruncate_Name(t *testing.T) {
	if got := NewTruncate().Name(); got != "truncate" {
		t.Errorf("Name() = %q, want %q", got, "truncate")
	}
}
