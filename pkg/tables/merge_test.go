package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

func tableWithRows(bbox pdf.BoundingBox, rows ...[]TableCell) *Table {
	return &Table{BBox: bbox, Rows: rows}
}

func rowOf(texts ...string) []TableCell {
	row := make([]TableCell, 0, len(texts))
	for _, text := range texts {
		row = append(row, NewCell(text))
	}
	return row
}

func TestMergeOverlappingFusesTables(t *testing.T) {
	upper := tableWithRows(pdf.BoundingBox{X0: 0, Y0: 0, X1: 100, Y1: 50},
		rowOf("a", "b"), rowOf("c", "d"))
	lower := tableWithRows(pdf.BoundingBox{X0: 0, Y0: 40, X1: 100, Y1: 90},
		rowOf("e", "f"), rowOf("g", "h"))

	merged := MergeOverlapping([]*Table{upper, lower})
	require.Len(t, merged, 1)

	got := merged[0]
	assert.Equal(t, pdf.BoundingBox{X0: 0, Y0: 0, X1: 100, Y1: 90}, got.BBox)
	require.Equal(t, 4, got.NumRows())
	assert.Equal(t, "a", got.Rows[0][0].Content)
	assert.Equal(t, "g", got.Rows[3][0].Content)
}

func TestMergeNonOverlappingKeepsTablesSorted(t *testing.T) {
	top := tableWithRows(pdf.BoundingBox{X0: 0, Y0: 0, X1: 100, Y1: 50}, rowOf("a", "b"))
	bottom := tableWithRows(pdf.BoundingBox{X0: 0, Y0: 100, X1: 100, Y1: 150}, rowOf("c", "d"))

	// Input deliberately out of order
	merged := MergeOverlapping([]*Table{bottom, top})
	require.Len(t, merged, 2)
	assert.Same(t, top, merged[0])
	assert.Same(t, bottom, merged[1])

	// Idempotent on already-merged input
	again := MergeOverlapping(merged)
	require.Len(t, again, 2)
	assert.Equal(t, merged[0].BBox, again[0].BBox)
	assert.Equal(t, merged[1].BBox, again[1].BBox)
}

func TestMergeHorizontallyDisjointStaysApart(t *testing.T) {
	left := tableWithRows(pdf.BoundingBox{X0: 0, Y0: 0, X1: 40, Y1: 50}, rowOf("a", "b"))
	right := tableWithRows(pdf.BoundingBox{X0: 200, Y0: 20, X1: 300, Y1: 70}, rowOf("c", "d"))

	merged := MergeOverlapping([]*Table{left, right})
	assert.Len(t, merged, 2)
}

func TestMergeEmpty(t *testing.T) {
	assert.Nil(t, MergeOverlapping(nil))
}
