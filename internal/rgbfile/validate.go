package rgbfile

import (
	"strconv"
	"strings"
)

// check is one structural rule. It returns the first violation it finds.
type check func(doc *document) error

// pipeline lists the checks in the order they must run. Later checks rely on
// earlier ones having passed, and the first failure decides the reported error
// even when a file breaks several rules.
var pipeline = []check{
	checkCommas,
	checkParens,
	checkEmpty,
	checkBlankLines,
	checkRange,
	checkNumbers,
	checkRagged,
}

// Validate runs every structural check against text and returns the first
// *FormatError, or nil when the text is a well-formed RGB file.
func Validate(text string) error {
	return validate(tokenize(text))
}

func validate(doc *document) error {
	for _, c := range pipeline {
		if err := c(doc); err != nil {
			return err
		}
	}
	return nil
}

// eachCell visits the pixel tokens of all non-blank rows in order and stops at
// the first error.
func eachCell(doc *document, fn func(ln line, c cell) error) error {
	for _, ln := range doc.lines {
		for _, c := range ln.cells {
			if err := fn(ln, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkCommas(doc *document) error {
	return eachCell(doc, func(ln line, c cell) error {
		if strings.Count(c.raw, ",") != 2 {
			return located(KindCommas, c.col, ln.index)
		}
		return nil
	})
}

// checkParens requires one '(' followed later by one ')' in every pixel, which
// keeps the open and close counts equal at every pixel and row boundary.
func checkParens(doc *document) error {
	return eachCell(doc, func(ln line, c cell) error {
		open := strings.IndexByte(c.raw, '(')
		closing := strings.IndexByte(c.raw, ')')
		if strings.Count(c.raw, "(") != 1 || strings.Count(c.raw, ")") != 1 || open > closing {
			return located(KindParens, c.col, ln.index)
		}
		return nil
	})
}

func checkEmpty(doc *document) error {
	if doc.size == 0 {
		return located(KindEmptyFile, 0, 0)
	}
	return nil
}

func checkBlankLines(doc *document) error {
	for _, ln := range doc.lines {
		if ln.blank {
			return located(KindBlankLine, 0, ln.index)
		}
	}
	return nil
}

// checkRange looks at the first three signed integers of each pixel. Text that
// looks numeric but does not parse (a stray '-', overflow) is also a range error.
// Pixels with fewer than three candidates are left to checkNumbers.
func checkRange(doc *document) error {
	return eachCell(doc, func(ln line, c cell) error {
		vals := signedRuns(c.raw)
		if len(vals) < 3 {
			return nil
		}
		for _, s := range vals[:3] {
			v, err := strconv.Atoi(s)
			if err != nil || v < 0 || v > 255 {
				return located(KindRange, c.col, ln.index)
			}
		}
		return nil
	})
}

func checkNumbers(doc *document) error {
	return eachCell(doc, func(ln line, c cell) error {
		fields := numberFields(c.raw)
		if len(fields) != 3 {
			return located(KindNumber, c.col, ln.index)
		}
		for _, f := range fields {
			if _, err := strconv.Atoi(f); err != nil {
				return located(KindNumber, c.col, ln.index)
			}
		}
		return nil
	})
}

func checkRagged(doc *document) error {
	if len(doc.lines) == 0 {
		return nil
	}
	width := ComputeRowWidth(doc.lines[0].text)
	for _, ln := range doc.lines {
		if ComputeRowWidth(ln.text) != width {
			return located(KindRagged, 0, ln.index)
		}
	}
	return nil
}
