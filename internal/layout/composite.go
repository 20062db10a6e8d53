package layout

// BoxHeight returns the outer height of a bordered box holding
// lineCount wrapped lines.
func BoxHeight(lineCount int, lineHeight, padding float64) float64 {
	return float64(lineCount)*lineHeight + 2*padding
}

// RowHeight returns the vertical advance of a two-column row: the
// taller column wins.
func RowHeight(leftLines, rightLines int, lineHeight float64) float64 {
	lines := leftLines
	if rightLines > lines {
		lines = rightLines
	}
	return float64(lines) * lineHeight
}
