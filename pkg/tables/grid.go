package tables

import (
	"sort"
	"strings"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

// Vertical gap between consecutive spans that starts a new grid row.
const rowGapTolerance = 5.0

// Font size above which a cell's content is treated as centered.
const centerFontSize = 12.0

// BuildCellGrid clusters text spans confined to one table region into a
// rectangular cell grid. Spans group into rows by vertical gap, column
// boundaries fall at the midpoints between the deduped x-edges of all
// spans, and empty cells pad every row to a uniform width.
func BuildCellGrid(spans []pdf.SpanObject) [][]TableCell {
	if len(spans) == 0 {
		return nil
	}

	rows := groupIntoRows(spans)
	boundaries := columnBoundaries(rows)

	grid := make([][]TableCell, 0, len(rows))
	for _, rowSpans := range rows {
		row := make([]TableCell, 0, len(boundaries)+1)
		col := 0

		for _, span := range rowSpans {
			// Insert empty cells for any skipped columns
			for col < len(boundaries) && span.X0 > boundaries[col] {
				row = append(row, NewCell(""))
				col++
			}

			cell := NewCell(span.Text)
			cell.BBox = span.GetBBox()
			cell.IsHeader = strings.HasSuffix(span.Font, "-Bold")
			if span.FontSize > centerFontSize {
				cell.Alignment = AlignCenter
			}
			row = append(row, cell)
			col++
		}

		for col < len(boundaries)+1 {
			row = append(row, NewCell(""))
			col++
		}

		grid = append(grid, row)
	}

	return pruneEmptyColumns(grid)
}

// pruneEmptyColumns drops columns that hold no content in any row.
// Midpoint boundaries create one column per gap between x-edges, which
// over-segments rows whose spans have distinct widths; the all-empty
// columns that fall out carry no information.
func pruneEmptyColumns(grid [][]TableCell) [][]TableCell {
	if len(grid) == 0 {
		return grid
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	keep := make([]bool, width)
	for _, row := range grid {
		for i, cell := range row {
			if cell.Content != "" {
				keep[i] = true
			}
		}
	}

	pruned := make([][]TableCell, 0, len(grid))
	for _, row := range grid {
		next := make([]TableCell, 0, len(row))
		for i, cell := range row {
			if keep[i] {
				next = append(next, cell)
			}
		}
		pruned = append(pruned, next)
	}

	return pruned
}

// groupIntoRows sorts spans by y0 and splits them into rows wherever
// the next span sits more than the row gap below the row's first span.
// Each row is then ordered left to right.
func groupIntoRows(spans []pdf.SpanObject) [][]pdf.SpanObject {
	sorted := make([]pdf.SpanObject, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y0 < sorted[j].Y0
	})

	var rows [][]pdf.SpanObject
	var current []pdf.SpanObject
	rowY := sorted[0].Y0

	for _, span := range sorted {
		if span.Y0-rowY > rowGapTolerance || rowY-span.Y0 > rowGapTolerance {
			if len(current) > 0 {
				sortRowByX(current)
				rows = append(rows, current)
			}
			current = nil
			rowY = span.Y0
		}
		current = append(current, span)
	}
	if len(current) > 0 {
		sortRowByX(current)
		rows = append(rows, current)
	}

	return rows
}

func sortRowByX(row []pdf.SpanObject) {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X0 < row[j].X0
	})
}

// columnBoundaries collects every span's left and right x-edge, dedupes
// and sorts them, and returns the midpoints between consecutive edges
func columnBoundaries(rows [][]pdf.SpanObject) []float64 {
	seen := make(map[float64]struct{})
	var edges []float64
	for _, row := range rows {
		for _, span := range row {
			for _, x := range [2]float64{span.X0, span.X1} {
				if _, ok := seen[x]; !ok {
					seen[x] = struct{}{}
					edges = append(edges, x)
				}
			}
		}
	}
	sort.Float64s(edges)

	boundaries := make([]float64, 0, len(edges)-1)
	for i := 0; i+1 < len(edges); i++ {
		boundaries = append(boundaries, (edges[i]+edges[i+1])/2)
	}

	return boundaries
}
