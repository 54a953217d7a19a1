package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

func TestBuildCellGridRowsAndColumns(t *testing.T) {
	spans := []pdf.SpanObject{
		span("Name", 20, 20, 60, 30),
		span("Age", 120, 20, 150, 30),
		span("Alice", 20, 50, 65, 60),
		span("30", 120, 50, 140, 60),
	}

	grid := BuildCellGrid(spans)
	require.Len(t, grid, 2)
	for _, row := range grid {
		assert.Len(t, row, 2)
	}
	assert.Equal(t, "Name", grid[0][0].Content)
	assert.Equal(t, "Age", grid[0][1].Content)
	assert.Equal(t, "Alice", grid[1][0].Content)
	assert.Equal(t, "30", grid[1][1].Content)
}

func TestBuildCellGridSparseRowGetsEmptyCell(t *testing.T) {
	// The second row has no content under the middle column; the
	// column cursor must synthesize an empty cell there
	spans := []pdf.SpanObject{
		span("A", 10, 10, 30, 20),
		span("B", 100, 10, 120, 20),
		span("C", 200, 10, 220, 20),
		span("a", 10, 40, 30, 50),
		span("c", 200, 40, 220, 50),
	}

	grid := BuildCellGrid(spans)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	require.Len(t, grid[1], 3)
	assert.Equal(t, "a", grid[1][0].Content)
	assert.Equal(t, "", grid[1][1].Content)
	assert.Equal(t, "c", grid[1][2].Content)
}

func TestBuildCellGridHeaderAndAlignmentHeuristics(t *testing.T) {
	spans := []pdf.SpanObject{
		{Text: "Title", Font: "Helvetica-Bold", FontSize: 14, X0: 10, Y0: 10, X1: 60, Y1: 24},
		{Text: "Qty", Font: "Helvetica", FontSize: 10, X0: 100, Y0: 10, X1: 130, Y1: 24},
		{Text: "Widget", Font: "Helvetica", FontSize: 10, X0: 10, Y0: 40, X1: 65, Y1: 50},
		{Text: "3", Font: "Helvetica", FontSize: 10, X0: 100, Y0: 40, X1: 110, Y1: 50},
	}

	grid := BuildCellGrid(spans)
	require.Len(t, grid, 2)

	assert.True(t, grid[0][0].IsHeader, "bold suffix marks a header cell")
	assert.Equal(t, AlignCenter, grid[0][0].Alignment, "large font centers")
	assert.False(t, grid[0][1].IsHeader)
	assert.Equal(t, AlignLeft, grid[0][1].Alignment)
}

func TestBuildCellGridSameRowTolerance(t *testing.T) {
	// Spans within 5 units vertically stay on one row
	spans := []pdf.SpanObject{
		span("x", 10, 10, 20, 20),
		span("y", 50, 14, 60, 24),
		span("z", 10, 30, 20, 40),
		span("w", 50, 30, 60, 40),
	}

	grid := BuildCellGrid(spans)
	require.Len(t, grid, 2)
	assert.Equal(t, "x", grid[0][0].Content)
	assert.Equal(t, "y", grid[0][1].Content)
}

func TestBuildCellGridEmpty(t *testing.T) {
	assert.Nil(t, BuildCellGrid(nil))
}
