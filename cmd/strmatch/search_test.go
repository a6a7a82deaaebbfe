package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCommand_Human(t *testing.T) {
	output, err := execute(t, newSearchCmd(), "world", "--text", "hello world", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, output, "Algorithm: Naive")
	assert.Contains(t, output, "Matches: 1 [6]")
	assert.Contains(t, output, "1:7 (offset 6) hello world")
}

func TestSearchCommand_JSON(t *testing.T) {
	output, err := execute(t, newSearchCmd(), "abab", "--text", "abababab", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Matches     []int  `json:"matches"`
		Selected    string `json:"selected"`
		Chosen      bool   `json:"chosen"`
		Occurrences []struct {
			Offset int `json:"offset"`
			Line   int `json:"line"`
		} `json:"occurrences"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, []int{0, 2, 4}, got.Matches)
	assert.True(t, got.Chosen)
	assert.NotEmpty(t, got.Selected)
	require.Len(t, got.Occurrences, 3)
	assert.Equal(t, 2, got.Occurrences[1].Offset)
}

func TestSearchCommand_Algorithm(t *testing.T) {
	output, err := execute(t, newSearchCmd(), "aa", "--text", "aaaa", "--algorithm", "boyer-moore", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, output, "Algorithm: BoyerMoore")
	assert.Contains(t, output, "Matches: 3 [0,1,2]")

	_, err = execute(t, newSearchCmd(), "aa", "--text", "aaaa", "--algorithm", "quantum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestSearchCommand_AllEnginesVerified(t *testing.T) {
	output, err := execute(t, newSearchCmd(), "issi",
		"--text", "mississippi", "--strategy", "all", "--verify", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, output, "Algorithm: all")
	assert.Contains(t, output, "Verified: ok")
	for _, name := range []string{"Naive", "KMP", "RabinKarp", "BoyerMoore", "GoCrazy"} {
		assert.Contains(t, output, name)
	}
	assert.Contains(t, output, "completed")
}

func TestSearchCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("first line\nsecond needle\n"), 0o644))

	output, err := execute(t, newSearchCmd(), "needle", "--file", path, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, output, "2:8 (offset 18) second needle")
}

func TestSearchCommand_Stdin(t *testing.T) {
	cmd := newSearchCmd()
	cmd.SetIn(strings.NewReader("xxabxx"))
	output, err := execute(t, cmd, "ab", "--file", "-", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, output, "Matches: 1 [2]")
}

func TestSearchCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"text and file", []string{"a", "--text", "a", "--file", "x"}, "mutually exclusive"},
		{"missing file", []string{"a", "--file", "/nonexistent/input.txt"}, "reading"},
		{"bad strategy", []string{"a", "--text", "a", "--strategy", "fastest"}, "unknown selection strategy"},
		{"bad format", []string{"a", "--text", "a", "--format", "xml"}, "unknown output format"},
		{"bad color", []string{"a", "--text", "a", "--color", "rainbow"}, "unknown color mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, newSearchCmd(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchCommand_NoMatch(t *testing.T) {
	output, err := execute(t, newSearchCmd(), "xyz", "--text", "abcdef", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, output, "Matches: 0 []")
}
