package tables

import (
	"strings"
)

// ToMarkdown renders the table as a GitHub-flavored pipe table. The
// first row is the header, followed by an alignment row derived from
// the header cells, then the data rows. Empty cells render as a single
// blank placeholder so the column count survives round-tripping, and a
// cell spanning multiple columns is followed by blank fillers since
// pipe tables have no native column merge.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, formatRow(t.Rows[0]))
	lines = append(lines, alignmentRow(t.Rows[0]))
	for _, row := range t.Rows[1:] {
		lines = append(lines, formatRow(row))
	}

	return strings.Join(lines, "\n")
}

// formatRow renders one row, expanding col spans into blank fillers
func formatRow(row []TableCell) string {
	var texts []string
	for _, cell := range row {
		texts = append(texts, FormatCell(cell))
		for i := 1; i < cell.ColSpan; i++ {
			texts = append(texts, "")
		}
	}

	parts := make([]string, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			parts = append(parts, " ")
		} else {
			parts = append(parts, " "+text+" ")
		}
	}

	return "|" + strings.Join(parts, "|") + "|"
}

// alignmentRow builds the separator row from the header cells'
// alignment, one entry per spanned column
func alignmentRow(header []TableCell) string {
	var marks []string
	for _, cell := range header {
		switch cell.Alignment {
		case AlignCenter:
			marks = append(marks, ":---:")
		case AlignRight:
			marks = append(marks, "---:")
		default:
			marks = append(marks, ":---")
		}
		for i := 1; i < cell.ColSpan; i++ {
			marks = append(marks, ":---")
		}
	}

	return "| " + strings.Join(marks, " | ") + " |"
}

// FormatCell returns a cell's content with its formatting tags applied
// as Markdown emphasis
func FormatCell(cell TableCell) string {
	content := strings.TrimSpace(cell.Content)
	if content == "" {
		return ""
	}

	for _, format := range cell.Formatting {
		switch format {
		case "bold":
			content = "**" + content + "**"
		case "italic":
			content = "*" + content + "*"
		case "code":
			content = "`" + content + "`"
		}
	}

	return content
}
