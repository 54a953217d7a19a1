package tables

import (
	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

// Orientation tags a line segment as horizontal or vertical
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Segment is a drawing primitive classified as a ruled border line
type Segment struct {
	BBox        pdf.BoundingBox
	Orientation Orientation
}

// ClassifySegments sorts a page's drawing primitives into horizontal
// and vertical border segments. A primitive is horizontal when its
// height is at most 2 units and its width reaches the minimum border
// length; vertical is the transpose. Everything else is ignored.
func ClassifySegments(objects pdf.Objects, metrics TableMetrics) (horizontal, vertical []Segment) {
	classify := func(bbox pdf.BoundingBox) {
		switch {
		case bbox.Height() <= 2 && bbox.Width() >= metrics.MinBorderLength:
			horizontal = append(horizontal, Segment{BBox: bbox, Orientation: Horizontal})
		case bbox.Width() <= 2 && bbox.Height() >= metrics.MinBorderLength:
			vertical = append(vertical, Segment{BBox: bbox, Orientation: Vertical})
		}
	}

	for _, line := range pdf.ConsolidateLines(pdf.DeduplicateLines(objects.Lines)) {
		classify(line.GetBBox())
	}
	for _, rect := range objects.Rects {
		classify(rect.GetBBox())
	}

	return horizontal, vertical
}
