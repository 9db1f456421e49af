package rgbfile

import "strings"

const (
	rowSep   = '\n'
	pixelSep = '\t'
)

// document is the shared tokenization every check runs over.
type document struct {
	size  int
	lines []line
}

type line struct {
	index int
	text  string
	blank bool
	cells []cell
}

// cell is one tab-delimited pixel token. col is its index within the row.
type cell struct {
	col int
	raw string
}

func tokenize(text string) *document {
	lines := splitLines(text)
	doc := &document{size: len(text), lines: make([]line, 0, len(lines))}
	for i, l := range lines {
		ln := line{index: i, text: l, blank: l == ""}
		if !ln.blank {
			for col, raw := range strings.Split(l, string(pixelSep)) {
				ln.cells = append(ln.cells, cell{col: col, raw: raw})
			}
		}
		doc.lines = append(doc.lines, ln)
	}
	return doc
}

// splitLines breaks text into rows. A final unterminated row counts; the empty
// remainder after a trailing newline does not. "\r\n" endings are accepted.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, string(rowSep))
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSigned(r rune) bool { return isDigit(r) || r == '-' }

// isFieldSep matches the delimiters between the numbers of a pixel.
func isFieldSep(r rune) bool {
	switch r {
	case '(', ')', ',', pixelSep, ' ':
		return true
	}
	return false
}

// runs returns the maximal substrings of s whose runes all satisfy keep.
func runs(s string, keep func(rune) bool) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !keep(r) })
}

func digitRuns(s string) []string { return runs(s, isDigit) }

func signedRuns(s string) []string { return runs(s, isSigned) }

func numberFields(s string) []string { return strings.FieldsFunc(s, isFieldSep) }
