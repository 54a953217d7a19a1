package tables

import (
	"strings"
	"unicode"
)

// rowRule is a single named predicate over a line of text. The rules
// run in order and short-circuit on the first match, which keeps the
// row heuristic auditable and each rule independently testable.
type rowRule struct {
	name  string
	match func(text string) bool
}

var rowRules = []rowRule{
	{name: "pipe-delimited", match: hasPipeDelimiter},
	{name: "mixed-numeric", match: hasMixedNumericWords},
	{name: "even-spacing", match: hasEvenWordSpacing},
}

// IsPotentialTableRow reports whether a line of text looks like a table
// row under any of the ordered predicate rules.
func IsPotentialTableRow(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, rule := range rowRules {
		if rule.match(text) {
			return true
		}
	}
	return false
}

// hasPipeDelimiter matches lines carrying an explicit column delimiter
func hasPipeDelimiter(text string) bool {
	return strings.Contains(text, "|")
}

// hasMixedNumericWords matches lines where some but not all words
// contain a digit. Pure prose rarely mixes numeric and non-numeric
// columns; table rows do.
func hasMixedNumericWords(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 {
		return false
	}

	numeric := 0
	for _, word := range words {
		if strings.ContainsFunc(word, unicode.IsDigit) {
			numeric++
		}
	}
	return numeric > 0 && numeric < len(words)
}

// hasEvenWordSpacing matches lines of at least two words whose
// inter-word whitespace runs are all within one character of each
// other, suggesting aligned columns.
func hasEvenWordSpacing(text string) bool {
	gaps := whitespaceRuns(text)
	if len(gaps) == 0 {
		return false
	}
	for _, g := range gaps {
		if g-gaps[0] > 1 || gaps[0]-g > 1 {
			return false
		}
	}
	return true
}

// whitespaceRuns returns the lengths of the interior whitespace runs
// separating words
func whitespaceRuns(text string) []int {
	var runs []int
	run := 0
	seenWord := false

	for _, r := range strings.TrimSpace(text) {
		if unicode.IsSpace(r) {
			if seenWord {
				run++
			}
			continue
		}
		if run > 0 {
			runs = append(runs, run)
			run = 0
		}
		seenWord = true
	}

	return runs
}
