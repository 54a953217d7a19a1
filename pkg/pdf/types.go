package pdf

// ObjectType represents the type of page object
type ObjectType string

const (
	ObjectTypeSpan ObjectType = "span"
	ObjectTypeLine ObjectType = "line"
	ObjectTypeRect ObjectType = "rect"
	ObjectTypeAnno ObjectType = "annotation"
)

// BoundingBox represents a rectangular area in page coordinates.
// The origin is the top-left corner of the page and Y grows downward,
// so Y0 is the top edge and Y1 the bottom edge.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains checks if a point is within the bounding box
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// Union returns the smallest bounding box enclosing both boxes
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		X0: min(b.X0, other.X0),
		Y0: min(b.Y0, other.Y0),
		X1: max(b.X1, other.X1),
		Y1: max(b.Y1, other.Y1),
	}
}

// Encloses checks if other lies entirely inside b, allowing the given
// tolerance on every edge.
func (b BoundingBox) Encloses(other BoundingBox, tolerance float64) bool {
	return other.X0 >= b.X0-tolerance && other.X1 <= b.X1+tolerance &&
		other.Y0 >= b.Y0-tolerance && other.Y1 <= b.Y1+tolerance
}

// Objects represents a collection of page objects
type Objects struct {
	Spans []SpanObject
	Lines []LineObject
	Rects []RectObject
	Annos []AnnotationObject
}

// SpanObject represents a minimal run of text with uniform font and size
type SpanObject struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
}

// GetType returns the object type
func (s SpanObject) GetType() ObjectType {
	return ObjectTypeSpan
}

// GetBBox returns the span's bounding box
func (s SpanObject) GetBBox() BoundingBox {
	return BoundingBox{X0: s.X0, Y0: s.Y0, X1: s.X1, Y1: s.Y1}
}

// LineObject represents a stroked line on the page
type LineObject struct {
	X0    float64
	Y0    float64
	X1    float64
	Y1    float64
	Width float64
}

// GetType returns the object type
func (l LineObject) GetType() ObjectType {
	return ObjectTypeLine
}

// GetBBox returns the line's bounding box
func (l LineObject) GetBBox() BoundingBox {
	return BoundingBox{
		X0: min(l.X0, l.X1),
		Y0: min(l.Y0, l.Y1),
		X1: max(l.X0, l.X1),
		Y1: max(l.Y0, l.Y1),
	}
}

// RectObject represents a rectangle drawn on the page
type RectObject struct {
	X0     float64
	Y0     float64
	X1     float64
	Y1     float64
	Width  float64
	Filled bool
}

// GetType returns the object type
func (r RectObject) GetType() ObjectType {
	return ObjectTypeRect
}

// GetBBox returns the rectangle's bounding box
func (r RectObject) GetBBox() BoundingBox {
	return BoundingBox{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// AnnotationObject represents an annotation on the page
type AnnotationObject struct {
	Type     string
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
	Contents string
	URL      string
}

// GetType returns the object type
func (a AnnotationObject) GetType() ObjectType {
	return ObjectTypeAnno
}

// GetBBox returns the annotation's bounding box
func (a AnnotationObject) GetBBox() BoundingBox {
	return BoundingBox{X0: a.X0, Y0: a.Y0, X1: a.X1, Y1: a.Y1}
}

// Hyperlink pairs the text under a link annotation with its target URL
type Hyperlink struct {
	Text string
	URL  string
}

// Metadata represents PDF document metadata
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Helper functions
func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
