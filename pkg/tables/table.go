package tables

import (
	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

// Alignment describes the horizontal alignment of a cell's content
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// TableCell is a single cell of a table row
type TableCell struct {
	Content    string
	BBox       pdf.BoundingBox
	RowSpan    int
	ColSpan    int
	Alignment  Alignment
	IsHeader   bool
	Formatting []string
}

// NewCell creates a cell with the default span and alignment
func NewCell(content string) TableCell {
	return TableCell{
		Content:   content,
		RowSpan:   1,
		ColSpan:   1,
		Alignment: AlignLeft,
	}
}

// Table is an ordered sequence of cell rows with an overall bounding
// box. Tables are page-local: created by a detector, possibly grown by
// the merger, rendered once, then discarded.
type Table struct {
	Rows      [][]TableCell
	BBox      pdf.BoundingBox
	HasHeader bool
}

// AddRow appends a row of cells
func (t *Table) AddRow(row []TableCell) {
	t.Rows = append(t.Rows, row)
}

// NumRows returns the number of rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the column count of the first row, or 0 for an empty
// table
func (t *Table) NumCols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// growBBox expands the table's bounding box to enclose bbox
func (t *Table) growBBox(bbox pdf.BoundingBox) {
	if len(t.Rows) == 0 && t.BBox == (pdf.BoundingBox{}) {
		t.BBox = bbox
		return
	}
	t.BBox = t.BBox.Union(bbox)
}
