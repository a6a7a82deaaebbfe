package suite

// yamlCase is the intermediate struct for parsing case files.
type yamlCase struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Text        string        `yaml:"text,omitempty"`
	Generate    *yamlGenerate `yaml:"generate,omitempty"`
	Categories  []string      `yaml:"categories,omitempty"`
	Queries     []yamlQuery   `yaml:"queries"`
}

// yamlGenerate builds a text by repeating block until it is size bytes long.
type yamlGenerate struct {
	Block  string `yaml:"block"`
	Size   int    `yaml:"size"`
	Prefix string `yaml:"prefix,omitempty"`
	Suffix string `yaml:"suffix,omitempty"`
}

// yamlQuery is one pattern with an optional expected result.
// A missing expect key leaves Expect nil; "expect: []" pins an empty result.
type yamlQuery struct {
	Pattern string `yaml:"pattern"`
	Expect  []int  `yaml:"expect,omitempty"`
}

// yamlCasesFile represents the top-level structure of a case file.
type yamlCasesFile struct {
	Cases []yamlCase `yaml:"cases"`
}
