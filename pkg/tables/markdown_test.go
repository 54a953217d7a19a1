package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdownBasicTable(t *testing.T) {
	table := &Table{Rows: [][]TableCell{
		rowOf("Name", "Age"),
		rowOf("Alice", "30"),
		rowOf("Bob", "25"),
	}}

	want := strings.Join([]string{
		"| Name | Age |",
		"| :--- | :--- |",
		"| Alice | 30 |",
		"| Bob | 25 |",
	}, "\n")
	assert.Equal(t, want, table.ToMarkdown())
}

func TestToMarkdownAlignmentRow(t *testing.T) {
	header := rowOf("L", "C", "R")
	header[1].Alignment = AlignCenter
	header[2].Alignment = AlignRight

	table := &Table{Rows: [][]TableCell{header, rowOf("1", "2", "3")}}

	lines := strings.Split(table.ToMarkdown(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| :--- | :---: | ---: |", lines[1])
}

func TestToMarkdownEmptyCellPlaceholder(t *testing.T) {
	table := &Table{Rows: [][]TableCell{
		rowOf("A", "B", "C"),
		rowOf("a", "", "c"),
	}}

	lines := strings.Split(table.ToMarkdown(), "\n")
	assert.Equal(t, "| a | | c |", lines[2], "empty cell keeps its column")
}

func TestToMarkdownColSpanFillers(t *testing.T) {
	wide := NewCell("Spanning")
	wide.ColSpan = 2

	table := &Table{Rows: [][]TableCell{
		{wide, NewCell("End")},
		rowOf("a", "b", "c"),
	}}

	lines := strings.Split(table.ToMarkdown(), "\n")
	assert.Equal(t, "| Spanning | | End |", lines[0])
	assert.Equal(t, "| :--- | :--- | :--- |", lines[1])
}

func TestToMarkdownEmptyTable(t *testing.T) {
	assert.Equal(t, "", (&Table{}).ToMarkdown())
}

func TestFormatCellEmphasis(t *testing.T) {
	cell := NewCell("value")
	cell.Formatting = []string{"bold"}
	assert.Equal(t, "**value**", FormatCell(cell))

	cell.Formatting = []string{"italic"}
	assert.Equal(t, "*value*", FormatCell(cell))

	cell.Formatting = []string{"code"}
	assert.Equal(t, "`value`", FormatCell(cell))

	plain := NewCell("  padded  ")
	assert.Equal(t, "padded", FormatCell(plain))
}

// Rendering then re-parsing recovers the original cell text.
func TestMarkdownRoundTrip(t *testing.T) {
	table := &Table{Rows: [][]TableCell{
		rowOf("Name", "Age", "City"),
		rowOf("Alice", "30", "Portland"),
		rowOf("Bob", "", "Ando"),
	}}

	lines := strings.Split(table.ToMarkdown(), "\n")
	require.Len(t, lines, 4)

	parseRow := func(line string) []string {
		trimmed := strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")
		parts := strings.Split(trimmed, "|")
		cells := make([]string, 0, len(parts))
		for _, part := range parts {
			cells = append(cells, strings.TrimSpace(part))
		}
		return cells
	}

	// The alignment row at index 1 is skipped
	parsed := [][]string{parseRow(lines[0]), parseRow(lines[2]), parseRow(lines[3])}
	for i, row := range parsed {
		require.Len(t, row, 3)
		for j, text := range row {
			assert.Equal(t, table.Rows[i][j].Content, text)
		}
	}
}
