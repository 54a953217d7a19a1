package tables

// Validate checks a candidate table against the size and rectangularity
// invariants: bounding box at least MinWidth by MinHeight, at least two
// rows, every row at least two cells, and one uniform column count.
// Any violation rejects the whole table.
func Validate(t *Table, metrics TableMetrics) bool {
	if t.BBox.Width() < metrics.MinWidth || t.BBox.Height() < metrics.MinHeight {
		return false
	}
	return validateCells(t)
}

// validateCells enforces the structural invariants independent of
// geometry
func validateCells(t *Table) bool {
	if len(t.Rows) < 2 {
		return false
	}

	cols := len(t.Rows[0])
	for _, row := range t.Rows {
		if len(row) < 2 {
			return false
		}
		if len(row) != cols {
			return false
		}
	}

	return true
}
