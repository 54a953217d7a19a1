package tables

import (
	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

// Tolerance in page units when testing whether a span lies inside the
// detected table bounds.
const borderTolerance = 2.0

// DetectFromBorders reconstructs one table from ruled border lines.
// The table's bounding box spans the extremes of the vertical lines'
// x-coordinates and the horizontal lines' y-coordinates; all lines on
// the page pool into that single box. Spans inside the box (with a
// small tolerance) feed the cell grid builder, and the result must pass
// full validation.
func DetectFromBorders(objects pdf.Objects, spans []pdf.SpanObject, metrics TableMetrics) Detection {
	horizontal, vertical := ClassifySegments(objects, metrics)
	if len(horizontal) == 0 || len(vertical) == 0 {
		return Miss()
	}

	bbox := boundsFromSegments(horizontal, vertical)

	var inside []pdf.SpanObject
	for _, span := range spans {
		if bbox.Encloses(span.GetBBox(), borderTolerance) {
			inside = append(inside, span)
		}
	}
	if len(inside) == 0 {
		return Miss()
	}

	table := &Table{BBox: bbox}
	table.Rows = BuildCellGrid(inside)
	if len(table.Rows) > 0 && anyHeaderCell(table.Rows[0]) {
		table.HasHeader = true
	}

	if !Validate(table, metrics) {
		return Rejected()
	}

	return Detected(table)
}

// boundsFromSegments computes the table bounding box: x extent from the
// vertical lines, y extent from the horizontal lines
func boundsFromSegments(horizontal, vertical []Segment) pdf.BoundingBox {
	bbox := pdf.BoundingBox{
		X0: vertical[0].BBox.X0,
		X1: vertical[0].BBox.X1,
		Y0: horizontal[0].BBox.Y0,
		Y1: horizontal[0].BBox.Y1,
	}

	for _, v := range vertical[1:] {
		if v.BBox.X0 < bbox.X0 {
			bbox.X0 = v.BBox.X0
		}
		if v.BBox.X1 > bbox.X1 {
			bbox.X1 = v.BBox.X1
		}
	}
	for _, h := range horizontal[1:] {
		if h.BBox.Y0 < bbox.Y0 {
			bbox.Y0 = h.BBox.Y0
		}
		if h.BBox.Y1 > bbox.Y1 {
			bbox.Y1 = h.BBox.Y1
		}
	}

	return bbox
}

func anyHeaderCell(row []TableCell) bool {
	for _, cell := range row {
		if cell.IsHeader {
			return true
		}
	}
	return false
}
