package rgbfile

import "fmt"

// Kind identifies which structural rule a file violates.
type Kind int

const (
	KindEmptyFile Kind = iota + 1
	KindBlankLine
	KindRange
	KindRagged
	KindParens
	KindCommas
	KindNumber
)

var kindTags = map[Kind]string{
	KindEmptyFile: "empty file",
	KindBlankLine: "blank line",
	KindRange:     "range",
	KindRagged:    "ragged",
	KindParens:    "parens",
	KindCommas:    "commas",
	KindNumber:    "number",
}

// String returns the human-readable tag used in error messages.
func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "unknown"
}

// FormatError reports the first location at which a file breaks the format.
//
// X is the pixel index within the row and Y is the row index, both 0-based.
// FormatError values are comparable, so tests can check kind and location with ==.
type FormatError struct {
	Kind Kind
	X    int
	Y    int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s (x=%d, y=%d)", e.Kind, e.X, e.Y)
}

func located(kind Kind, x, y int) *FormatError {
	return &FormatError{Kind: kind, X: x, Y: y}
}
