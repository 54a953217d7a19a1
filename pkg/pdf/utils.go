package pdf

import (
	"math"
	"sort"
)

// Tolerance for floating point comparisons
const FloatTolerance = 0.1

// DeduplicateLines removes duplicate lines based on coordinates
func DeduplicateLines(lines []LineObject) []LineObject {
	if len(lines) == 0 {
		return lines
	}

	sort.Slice(lines, func(i, j int) bool {
		if math.Abs(lines[i].Y0-lines[j].Y0) > FloatTolerance {
			return lines[i].Y0 < lines[j].Y0
		}
		if math.Abs(lines[i].X0-lines[j].X0) > FloatTolerance {
			return lines[i].X0 < lines[j].X0
		}
		if math.Abs(lines[i].Y1-lines[j].Y1) > FloatTolerance {
			return lines[i].Y1 < lines[j].Y1
		}
		return lines[i].X1 < lines[j].X1
	})

	result := []LineObject{lines[0]}
	for i := 1; i < len(lines); i++ {
		if !linesEqual(result[len(result)-1], lines[i]) {
			result = append(result, lines[i])
		}
	}

	return result
}

// linesEqual checks if two lines are essentially the same, in either
// direction
func linesEqual(a, b LineObject) bool {
	sameDirection := math.Abs(a.X0-b.X0) < FloatTolerance &&
		math.Abs(a.Y0-b.Y0) < FloatTolerance &&
		math.Abs(a.X1-b.X1) < FloatTolerance &&
		math.Abs(a.Y1-b.Y1) < FloatTolerance

	reversedDirection := math.Abs(a.X0-b.X1) < FloatTolerance &&
		math.Abs(a.Y0-b.Y1) < FloatTolerance &&
		math.Abs(a.X1-b.X0) < FloatTolerance &&
		math.Abs(a.Y1-b.Y0) < FloatTolerance

	return sameDirection || reversedDirection
}

// ConsolidateLines merges overlapping or nearly touching axis-aligned
// lines. Diagonal lines are dropped since ruled borders never need them.
func ConsolidateLines(lines []LineObject) []LineObject {
	if len(lines) == 0 {
		return lines
	}

	var horizontal, vertical []LineObject
	for _, line := range lines {
		if math.Abs(line.Y0-line.Y1) < FloatTolerance {
			horizontal = append(horizontal, line)
		} else if math.Abs(line.X0-line.X1) < FloatTolerance {
			vertical = append(vertical, line)
		}
	}

	return append(consolidateHorizontal(horizontal), consolidateVertical(vertical)...)
}

func consolidateHorizontal(lines []LineObject) []LineObject {
	if len(lines) == 0 {
		return lines
	}

	sort.Slice(lines, func(i, j int) bool {
		if math.Abs(lines[i].Y0-lines[j].Y0) > FloatTolerance {
			return lines[i].Y0 < lines[j].Y0
		}
		return lines[i].X0 < lines[j].X0
	})

	result := []LineObject{}
	current := lines[0]

	for _, line := range lines[1:] {
		sameLevel := math.Abs(line.Y0-current.Y0) < FloatTolerance &&
			math.Abs(line.Y1-current.Y1) < FloatTolerance
		if sameLevel && line.X0 <= current.X1+1 && line.X1 >= current.X0-1 {
			current.X0 = math.Min(current.X0, line.X0)
			current.X1 = math.Max(current.X1, line.X1)
			if line.Width > current.Width {
				current.Width = line.Width
			}
			continue
		}
		result = append(result, current)
		current = line
	}

	return append(result, current)
}

func consolidateVertical(lines []LineObject) []LineObject {
	if len(lines) == 0 {
		return lines
	}

	sort.Slice(lines, func(i, j int) bool {
		if math.Abs(lines[i].X0-lines[j].X0) > FloatTolerance {
			return lines[i].X0 < lines[j].X0
		}
		return lines[i].Y0 < lines[j].Y0
	})

	result := []LineObject{}
	current := lines[0]

	for _, line := range lines[1:] {
		sameLevel := math.Abs(line.X0-current.X0) < FloatTolerance &&
			math.Abs(line.X1-current.X1) < FloatTolerance
		if sameLevel && line.Y0 <= current.Y1+1 && line.Y1 >= current.Y0-1 {
			current.Y0 = math.Min(current.Y0, line.Y0)
			current.Y1 = math.Max(current.Y1, line.Y1)
			if line.Width > current.Width {
				current.Width = line.Width
			}
			continue
		}
		result = append(result, current)
		current = line
	}

	return append(result, current)
}

// SortSpans orders spans top to bottom, then left to right. Spans whose
// vertical positions differ by less than the tolerance count as being on
// the same line.
func SortSpans(spans []SpanObject, yTolerance float64) []SpanObject {
	sorted := make([]SpanObject, len(spans))
	copy(sorted, spans)

	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y0-sorted[j].Y0) > yTolerance {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	return sorted
}
