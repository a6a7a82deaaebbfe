package suite

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/strmatch/pkg/types"
	"gopkg.in/yaml.v3"
)

// maxGeneratedSize caps generated texts so a typo in a case file cannot
// exhaust memory.
const maxGeneratedSize = 64 << 20

// Loader handles loading benchmark cases from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for built-in cases
}

// NewLoader creates a loader with built-in cases from embedded filesystem.
func NewLoader() *Loader {
	return &Loader{
		fs: builtinCasesFS,
	}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
// The filesystem must contain a "cases" directory.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{
		fs: fsys,
	}
}

// LoadCases parses and validates all cases in YAML bytes.
func (l *Loader) LoadCases(data []byte) ([]*types.Case, error) {
	var yamlFile yamlCasesFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(yamlFile.Cases) == 0 {
		return nil, fmt.Errorf("no cases found in YAML")
	}

	cases := make([]*types.Case, 0, len(yamlFile.Cases))
	for _, yc := range yamlFile.Cases {
		c, err := convertYAMLCase(yc)
		if err != nil {
			return nil, err
		}
		if err := ValidateCase(c); err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// LoadCaseFile loads cases from a YAML file path.
func (l *Loader) LoadCaseFile(path string) ([]*types.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	cases, err := l.LoadCases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// LoadCasePath loads a single case file, or every .yml/.yaml file in a directory.
func (l *Loader) LoadCasePath(path string) ([]*types.Case, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return l.LoadCaseFile(path)
	}

	var cases []*types.Case
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(p) {
			return nil
		}
		loaded, err := l.LoadCaseFile(p)
		if err != nil {
			return err
		}
		cases = append(cases, loaded...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := ValidateCases(cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// LoadBuiltinCases loads all built-in cases from embedded filesystem.
func (l *Loader) LoadBuiltinCases() ([]*types.Case, error) {
	var cases []*types.Case

	err := fs.WalkDir(l.fs, "cases", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		loaded, err := l.LoadCases(data)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		cases = append(cases, loaded...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := ValidateCases(cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

// convertYAMLCase converts yamlCase to types.Case, expanding generated text.
func convertYAMLCase(yc yamlCase) (*types.Case, error) {
	text := yc.Text
	if yc.Generate != nil {
		if yc.Text != "" {
			return nil, fmt.Errorf("case %s: text and generate are mutually exclusive", yc.ID)
		}
		generated, err := generateText(*yc.Generate)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", yc.ID, err)
		}
		text = generated
	}

	c := &types.Case{
		ID:          yc.ID,
		Name:        yc.Name,
		Description: yc.Description,
		Text:        text,
		Categories:  yc.Categories,
		Queries:     make([]types.Query, 0, len(yc.Queries)),
	}
	for _, yq := range yc.Queries {
		q := types.Query{Pattern: yq.Pattern}
		if yq.Expect != nil {
			q.Expect = types.MatchSet(yq.Expect)
		}
		c.Queries = append(c.Queries, q)
	}
	return c, nil
}

// generateText repeats g.Block to g.Size bytes and wraps it in prefix/suffix.
func generateText(g yamlGenerate) (string, error) {
	if g.Size < 0 || g.Size > maxGeneratedSize {
		return "", fmt.Errorf("generate size %d out of range [0, %d]", g.Size, maxGeneratedSize)
	}
	if g.Block == "" && g.Size > 0 {
		return "", fmt.Errorf("generate block is required when size > 0")
	}

	var sb strings.Builder
	sb.Grow(len(g.Prefix) + g.Size + len(g.Suffix))
	sb.WriteString(g.Prefix)
	for written := 0; written < g.Size; {
		chunk := g.Block
		if remaining := g.Size - written; len(chunk) > remaining {
			chunk = chunk[:remaining]
		}
		sb.WriteString(chunk)
		written += len(chunk)
	}
	sb.WriteString(g.Suffix)
	return sb.String(), nil
}
