package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/praetorian-inc/strmatch/pkg/types"
	"golang.org/x/term"
)

// styles holds color formatters for human output
type styles struct {
	heading   *color.Color
	algorithm *color.Color
	match     *color.Color
	location  *color.Color
	pass      *color.Color
	fail      *color.Color
	dim       *color.Color
}

// newStyles creates color formatters for human output.
// enabled overrides the global color.NoColor detection.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:   color.New(color.Bold),
		algorithm: color.New(color.Bold, color.FgHiBlue),
		match:     color.New(color.FgYellow),
		location:  color.New(color.FgHiGreen),
		pass:      color.New(color.FgGreen),
		fail:      color.New(color.Bold, color.FgRed),
		dim:       color.New(color.Faint),
	}

	for _, c := range []*color.Color{s.heading, s.algorithm, s.match, s.location, s.pass, s.fail, s.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// colorEnabled resolves a --color mode. auto colors only a terminal and
// honours NO_COLOR.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

// readText resolves --text and --file. --file - reads stdin.
func readText(text, file string, stdin io.Reader) (string, error) {
	if file == "" {
		return text, nil
	}
	if text != "" {
		return "", fmt.Errorf("--text and --file are mutually exclusive")
	}
	if file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(data), nil
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printOccurrences prints one line per match with its position and context.
func printOccurrences(out io.Writer, s *styles, occurrences []types.Occurrence, limit int) {
	shown := occurrences
	if limit > 0 && len(shown) > limit {
		fmt.Fprintf(out, "Showing %d/%d matches:\n", limit, len(shown))
		shown = shown[:limit]
	}
	for _, occ := range shown {
		fmt.Fprintf(out, "  %s %s %s%s%s\n",
			s.location.Sprintf("%d:%d", occ.Line, occ.Column),
			s.dim.Sprintf("(offset %d)", occ.Offset),
			occ.Snippet.Before,
			s.match.Sprint(occ.Snippet.Matching),
			occ.Snippet.After)
	}
}
