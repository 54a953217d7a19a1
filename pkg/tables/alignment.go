package tables

import (
	"strings"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

// DetectFromAlignment finds tables on a borderless page by classifying
// each text span as a potential table row and accreting consecutive
// row spans into candidates. A candidate closes on the first
// non-matching span and survives only if it validates.
func DetectFromAlignment(spans []pdf.SpanObject, metrics TableMetrics) Detection {
	if len(spans) == 0 {
		return Miss()
	}

	sorted := pdf.SortSpans(spans, 0)

	var found []*Table
	sawCandidate := false
	var current *Table

	flush := func() {
		if current == nil {
			return
		}
		sawCandidate = true
		if Validate(current, metrics) {
			found = append(found, current)
		}
		current = nil
	}

	for _, span := range sorted {
		if !IsPotentialTableRow(span.Text) {
			flush()
			continue
		}

		if current == nil {
			current = &Table{}
		}
		current.growBBox(span.GetBBox())
		if row := rowToCells(span, metrics); len(row) > 0 {
			current.AddRow(row)
		}
	}
	flush()

	if len(found) > 0 {
		return Detected(found...)
	}
	if sawCandidate {
		return Rejected()
	}
	return Miss()
}

// rowToCells splits one row span into cells. Pipe-delimited text splits
// on the pipes; otherwise words get synthetic x-spans interpolated
// proportionally across the span's width using cumulative character
// offsets. The interpolation is a positional estimate, not measured
// glyph geometry.
func rowToCells(span pdf.SpanObject, metrics TableMetrics) []TableCell {
	text := strings.TrimSpace(span.Text)

	if strings.Contains(text, "|") {
		return pipeCells(text, span)
	}

	words := strings.Fields(text)
	if len(words) < metrics.MinCols {
		return nil
	}

	// Cumulative character offsets, one space between words
	positions := make([]int, len(words))
	total := 0
	for i, word := range words {
		positions[i] = total
		total += len(word) + 1
	}

	width := span.X1 - span.X0
	cells := make([]TableCell, 0, len(words))
	for i, word := range words {
		cell := NewCell(word)
		cell.BBox = pdf.BoundingBox{
			X0: span.X0 + float64(positions[i])/float64(total)*width,
			Y0: span.Y0,
			X1: span.X0 + float64(positions[i]+len(word))/float64(total)*width,
			Y1: span.Y1,
		}
		cells = append(cells, cell)
	}

	return cells
}

// pipeCells splits pipe-delimited text. Empty edge fragments from
// leading or trailing pipes are dropped; interior empty cells survive
// so the column count is preserved.
func pipeCells(text string, span pdf.SpanObject) []TableCell {
	parts := strings.Split(text, "|")
	for len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	for len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	cells := make([]TableCell, 0, len(parts))
	for _, part := range parts {
		cell := NewCell(strings.TrimSpace(part))
		cell.BBox = span.GetBBox()
		cells = append(cells, cell)
	}

	return cells
}
