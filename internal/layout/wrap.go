package layout

import "strings"

// Wrap splits text into lines that each render at most maxWidth wide
// under the given font. Tokenization is on whitespace; tokens are
// accumulated greedily and joined with single spaces, so joining the
// returned lines with spaces reconstructs the whitespace-normalized
// input.
//
// A single token wider than maxWidth is placed alone on its own line,
// unmodified; there is no hyphenation or character-level splitting.
// Empty (or all-whitespace) input yields one empty line so that blank
// paragraphs keep their vertical spacing.
func Wrap(text string, font FontSpec, maxWidth float64, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.Measure(candidate, font) <= maxWidth {
			current = candidate
			continue
		}
		if current == "" {
			// Oversized token: overflows rather than splitting.
			lines = append(lines, word)
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
