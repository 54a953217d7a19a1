package tables

import (
	"sort"
)

// MergeOverlapping fuses table candidates whose bounding boxes overlap
// on both axes, as happens when the two detectors or adjacent pages
// report pieces of the same table. Candidates sort by (y0, x0); a
// running table absorbs the next candidate when its bottom reaches the
// candidate's top and their x-ranges overlap. On merge the bounding box
// grows to the union and the candidate's rows append verbatim; column
// counts are not reconciled. Non-overlapping input comes back unchanged
// in sorted order, so the operation is idempotent.
func MergeOverlapping(candidates []*Table) []*Table {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]*Table, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Y0 != sorted[j].BBox.Y0 {
			return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	merged := make([]*Table, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if overlaps(current, next) {
			current.BBox = current.BBox.Union(next.BBox)
			current.Rows = append(current.Rows, next.Rows...)
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// overlaps reports whether next's bounding box overlaps current's on
// both axes, given the (y0, x0) sort order
func overlaps(current, next *Table) bool {
	return current.BBox.Y1 >= next.BBox.Y0 &&
		current.BBox.X1 >= next.BBox.X0 &&
		current.BBox.X0 <= next.BBox.X1
}
