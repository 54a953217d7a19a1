// Package layout composes flowing Markdown from a page's ordered text
// spans: spans group into lines, each line classifies as heading, table
// row or prose, and link anchors resolve to Markdown links.
package layout

import (
	"strings"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

// Vertical gap between consecutive spans that starts a new line.
const lineGapTolerance = 5.0

// Font size at which a single-span line becomes a heading.
const headingFontSize = 14.0

// Compose converts an ordered span sequence plus hyperlink anchors into
// a Markdown document. Lines classify in priority order: heading, table
// accretion, prose. Emitted units join with blank lines and the input's
// line order is always preserved.
func Compose(spans []pdf.SpanObject, links []pdf.Hyperlink) string {
	linkMap := make(map[string]string, len(links))
	for _, link := range links {
		linkMap[link.Text] = link.URL
	}

	var units []string
	var tableRows [][]string

	flushTable := func() {
		if len(tableRows) == 0 {
			return
		}
		if md := renderTextTable(tableRows); md != "" {
			units = append(units, md)
		}
		tableRows = nil
	}

	for _, line := range groupLines(spans) {
		// Heading: a lone span in a large font
		if len(line) == 1 && line[0].FontSize >= headingFontSize {
			flushTable()
			text := strings.TrimSpace(line[0].Text)
			if url, ok := linkMap[text]; ok {
				units = append(units, "["+text+"]("+url+")")
			} else {
				units = append(units, "# "+text)
			}
			continue
		}

		tokens := tokenizeLine(line)

		// Table accretion: open on a plausible header line, extend
		// while rows carry at least as many tokens as the header
		if len(tableRows) == 0 && isTableHeader(tokens) {
			tableRows = [][]string{tokens}
			continue
		}
		if len(tableRows) > 0 && len(tokens) >= len(tableRows[0]) {
			tableRows = append(tableRows, tokens)
			continue
		}

		flushTable()

		if text := proseLine(tokens, linkMap); text != "" {
			units = append(units, text)
		}
	}
	flushTable()

	return strings.Join(units, "\n\n")
}

// groupLines sorts spans by (y0, x0) and splits them into lines
// wherever the vertical gap between consecutive spans exceeds the
// tolerance
func groupLines(spans []pdf.SpanObject) [][]pdf.SpanObject {
	sorted := pdf.SortSpans(spans, 0)

	var lines [][]pdf.SpanObject
	var current []pdf.SpanObject
	var lastY float64

	for _, span := range sorted {
		if len(current) > 0 && (span.Y0-lastY > lineGapTolerance || lastY-span.Y0 > lineGapTolerance) {
			lines = append(lines, current)
			current = nil
		}
		current = append(current, span)
		lastY = span.Y0
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	return lines
}

// tokenizeLine splits a line's spans into word tokens. A span with
// several words contributes each of them; a single-word span
// contributes its trimmed text.
func tokenizeLine(line []pdf.SpanObject) []string {
	var tokens []string
	for _, span := range line {
		words := strings.Fields(span.Text)
		if len(words) > 1 {
			tokens = append(tokens, words...)
		} else {
			tokens = append(tokens, strings.TrimSpace(span.Text))
		}
	}
	return tokens
}

// isTableHeader reports whether the tokens can open a table: at least
// two, each non-empty and free of internal whitespace
func isTableHeader(tokens []string) bool {
	if len(tokens) < 2 {
		return false
	}
	for _, token := range tokens {
		if len(strings.Fields(token)) != 1 {
			return false
		}
	}
	return true
}

// proseLine joins tokens with single spaces, substituting any token
// that exactly matches a link anchor with a Markdown link
func proseLine(tokens []string, linkMap map[string]string) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if url, ok := linkMap[token]; ok {
			parts = append(parts, "["+token+"]("+url+")")
		} else {
			parts = append(parts, token)
		}
	}
	return strings.Join(parts, " ")
}

// renderTextTable renders accreted text rows as a pipe table with a
// ":---" separator. Rows pad to the widest row; fewer than two rows
// render nothing.
func renderTextTable(rows [][]string) string {
	if len(rows) < 2 {
		return ""
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = append([]string(nil), row...)
		for len(padded[i]) < cols {
			padded[i] = append(padded[i], "")
		}
	}

	separator := make([]string, cols)
	for i := range separator {
		separator[i] = ":---"
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "| "+strings.Join(padded[0], " | ")+" |")
	lines = append(lines, "| "+strings.Join(separator, " | ")+" |")
	for _, row := range padded[1:] {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}

	return strings.Join(lines, "\n")
}
