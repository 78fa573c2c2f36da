package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/navfold/internal/profile"
)

func sampleOutput(lines int) string {
	parts := make([]string, 0, lines)
	parts = append(parts, "import os", "import sys", "")
	for i := len(parts); i < lines; i++ {
		parts = append(parts, fmt.Sprintf("value_%d = %d", i, i))
	}
	return strings.Join(parts, "\n")
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("tool output"), 0o600))

	content, err := readInput(strings.NewReader(""), []string{path})
	require.NoError(t, err)
	assert.Equal(t, "tool output", content)
}

func TestReadInput_Stdin(t *testing.T) {
	content, err := readInput(strings.NewReader("piped output"), nil)
	require.NoError(t, err)
	assert.Equal(t, "piped output", content)
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := readInput(strings.NewReader(""), []string{"/nonexistent/file"})
	require.Error(t, err)
}

func TestAblate_AllProfiles(t *testing.T) {
	profiles := make([]*profile.Profile, 0, 4)
	for _, name := range profile.Names() {
		p, err := profile.ByName(name)
		require.NoError(t, err)
		profiles = append(profiles, p)
	}

	var out bytes.Buffer
	err := ablate(context.Background(), &out, zap.NewNop(), profiles, sampleOutput(500))
	require.NoError(t, err)

	got := out.String()
	for _, name := range profile.Names() {
		assert.Contains(t, got, name)
	}
	assert.Contains(t, got, "PROFILE")
	assert.Contains(t, got, "LINES HIDDEN")
}

func TestAblate_UnconstrainedNeverFolds(t *testing.T) {
	p, err := profile.ByName("unconstrained")
	require.NoError(t, err)

	var out bytes.Buffer
	err = ablate(context.Background(), &out, zap.NewNop(), []*profile.Profile{p}, sampleOutput(10_000))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no")
}

func TestRenderTable_Alignment(t *testing.T) {
	table := renderTable([][]string{
		{"A", "LONG HEADER"},
		{"row", "x"},
	})
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "LONG HEADER")
	assert.Contains(t, lines[1], "row")
}
