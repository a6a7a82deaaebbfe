package suite

import "embed"

// builtinCasesFS embeds the built-in benchmark cases.
//
//go:embed cases/*.yml
var builtinCasesFS embed.FS
