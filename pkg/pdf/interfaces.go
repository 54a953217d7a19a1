package pdf

// Document represents an opened PDF document
type Document interface {
	// GetMetadata returns the PDF metadata
	GetMetadata() Metadata

	// GetPages returns all pages in the document
	GetPages() []Page

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single page in a PDF document. Coordinates use a
// top-left origin with Y growing downward.
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// GetWidth returns the page width
	GetWidth() float64

	// GetHeight returns the page height
	GetHeight() float64

	// GetBBox returns the page bounding box
	GetBBox() BoundingBox

	// GetObjects returns all objects on the page
	GetObjects() (Objects, error)

	// GetSpans returns the page's text spans in reading order
	GetSpans() ([]SpanObject, error)

	// GetHyperlinks resolves link annotations to (anchor text, URL)
	// pairs using a textbox-under-rectangle query
	GetHyperlinks() ([]Hyperlink, error)

	// WithinBBox filters objects whose bounding box intersects bbox
	WithinBBox(bbox BoundingBox) (Objects, error)
}

// Object represents a page object (span, line, rect, annotation)
type Object interface {
	// GetType returns the object type
	GetType() ObjectType

	// GetBBox returns the object's bounding box
	GetBBox() BoundingBox
}
