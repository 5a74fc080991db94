package tabular

import "strings"

// Candidate delimiters in priority order. Ties in score resolve to the
// earlier candidate.
var candidates = []rune{',', ';', '\t', '|'}

// detectSampleLines caps how many non-empty lines the detector inspects.
const detectSampleLines = 10

// Detect inspects a sample of text and returns the candidate delimiter that
// yields the most consistent multi-field split across the sampled lines.
// Inputs where no candidate produces more than one field per line, and empty
// inputs, default to comma.
func Detect(text string) rune {
	lines := sampleLines(text, detectSampleLines)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := 0.0

	for _, cand := range candidates {
		counts := make(map[int]int)
		for _, line := range lines {
			counts[countFields(line, cand)]++
		}

		// Modal field count and its occurrence rate across the sample.
		modal, freq := 0, 0
		for count, n := range counts {
			if n > freq || (n == freq && count > modal) {
				modal, freq = count, n
			}
		}
		if modal <= 1 {
			continue
		}

		score := float64(freq) / float64(len(lines)) * float64(modal)
		if score > bestScore {
			best, bestScore = cand, score
		}
	}

	return best
}

// sampleLines returns up to n non-empty lines from the start of text.
func sampleLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	}) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}

// countFields counts delimiter-separated fields in a single line, ignoring
// delimiters inside double-quoted sections.
func countFields(line string, delim rune) int {
	n := 1
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			n++
		}
	}
	return n
}
