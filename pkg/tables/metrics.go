// Package tables turns page-level geometry and text spans into
// structured tables: border-based and alignment-based detection, merge,
// validation, and GitHub-flavored Markdown rendering.
package tables

// TableMetrics holds the geometric thresholds for table detection.
// A value is passed explicitly into every detection call and never
// mutated mid-run.
type TableMetrics struct {
	MinRows              int
	MinCols              int
	LineSpacingThreshold float64
	MinCellWidth         float64
	MinCellHeight        float64
	MaxCellWidth         float64
	MaxCellHeight        float64
	MinRowAlignment      float64
	MinColAlignment      float64
	MaxColSpacing        float64
	MaxRowSpacing        float64
	MinBorderLength      float64
	MinWidth             float64
	MinHeight            float64
	MinAspectRatio       float64
}

// DefaultMetrics returns thresholds calibrated for simple grid tables
// with clear borders and standard cell sizes.
func DefaultMetrics() TableMetrics {
	return TableMetrics{
		MinRows:              2,
		MinCols:              2,
		LineSpacingThreshold: 15.0,
		MinCellWidth:         20.0,
		MinCellHeight:        10.0,
		MaxCellWidth:         500.0,
		MaxCellHeight:        100.0,
		MinRowAlignment:      0.8,
		MinColAlignment:      0.8,
		MaxColSpacing:        50.0,
		MaxRowSpacing:        20.0,
		MinBorderLength:      10.0,
		MinWidth:             50.0,
		MinHeight:            20.0,
		MinAspectRatio:       0.5,
	}
}
