package rgbfile

// ComputeWidth returns the pixel count of the first row: the number of complete
// groups of three digit runs on it. Text without numbers has width 0.
func ComputeWidth(text string) int {
	lines := splitLines(text)
	if len(lines) == 0 {
		return 0
	}
	return ComputeRowWidth(lines[0])
}

// ComputeHeight returns the number of rows, blank ones included.
func ComputeHeight(text string) int {
	return len(splitLines(text))
}

// ComputeRowWidth counts complete digit triplets on a single row.
func ComputeRowWidth(row string) int {
	return len(digitRuns(row)) / 3
}
