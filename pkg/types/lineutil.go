package types

// ComputeLineColumn computes line and column numbers from a byte offset in content.
// Lines and columns are 1-indexed (first line is 1, first column is 1).
func ComputeLineColumn(content string, byteOffset int) (line, column int) {
	line = 1
	column = 1
	for i := 0; i < byteOffset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Snippet is a window of text around one match.
type Snippet struct {
	Before   string `json:"before"`
	Matching string `json:"matching"`
	After    string `json:"after"`
}

// ExtractSnippet returns the match at offset with up to width bytes of
// surrounding text on each side. Newlines in the context are cut off so the
// snippet stays on one line.
func ExtractSnippet(text string, offset, length, width int) Snippet {
	if offset < 0 || offset > len(text) {
		return Snippet{}
	}
	end := offset + length
	if end > len(text) {
		end = len(text)
	}

	start := offset - width
	if start < 0 {
		start = 0
	}
	for i := offset - 1; i >= start; i-- {
		if text[i] == '\n' {
			start = i + 1
			break
		}
	}

	stop := end + width
	if stop > len(text) {
		stop = len(text)
	}
	for i := end; i < stop; i++ {
		if text[i] == '\n' {
			stop = i
			break
		}
	}

	return Snippet{
		Before:   text[start:offset],
		Matching: text[offset:end],
		After:    text[end:stop],
	}
}

// Occurrence places one match in its text for display.
type Occurrence struct {
	Offset  int     `json:"offset"`
	Line    int     `json:"line"`
	Column  int     `json:"column"`
	Snippet Snippet `json:"snippet"`
}

// Locate computes line, column and a snippet for every offset in ms.
// Lines are counted in a single forward pass.
func Locate(text string, patternLen int, ms MatchSet, width int) []Occurrence {
	out := make([]Occurrence, 0, len(ms))
	line, column, pos := 1, 1, 0
	for _, off := range ms {
		for ; pos < off && pos < len(text); pos++ {
			if text[pos] == '\n' {
				line++
				column = 1
			} else {
				column++
			}
		}
		out = append(out, Occurrence{
			Offset:  off,
			Line:    line,
			Column:  column,
			Snippet: ExtractSnippet(text, off, patternLen, width),
		})
	}
	return out
}
