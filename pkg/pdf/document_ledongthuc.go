package pdf

import (
	"fmt"
	"io"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using the
// ledongthuc/pdf library. It decodes embedded font encodings better
// than the raw content scanner, so it is the preferred backend.
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	pages    []Page
	metadata Metadata
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
	}

	if err := doc.initializePages(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

// initializePages initializes all pages in the document
func (d *LedongthucDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := NewLedongthucPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetMetadata returns the PDF metadata
func (d *LedongthucDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPages returns all pages in the document
func (d *LedongthucDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	reader     *lpdf.Reader
	pageNumber int
	page       lpdf.Page
	width      float64
	height     float64
	objects    *Objects
}

// NewLedongthucPage creates a new page using ledongthuc/pdf
func NewLedongthucPage(reader *lpdf.Reader, pageNumber int) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	// Page dimensions come from the MediaBox, defaulting to US Letter
	width, height := 612.0, 792.0
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		width = mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	return &LedongthucPage{
		reader:     reader,
		pageNumber: pageNumber,
		page:       page,
		width:      width,
		height:     height,
	}, nil
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *LedongthucPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *LedongthucPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *LedongthucPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// GetObjects returns all objects on the page. Text runs are read on
// first use and cached.
func (p *LedongthucPage) GetObjects() (Objects, error) {
	if p.objects != nil {
		return *p.objects, nil
	}

	objects := Objects{
		Spans: p.extractSpans(),
		Annos: p.extractAnnotations(),
	}

	p.objects = &objects
	return objects, nil
}

// extractSpans converts the library's text runs into spans. Consecutive
// runs that share a baseline and style merge into one span; Y is flipped
// from the PDF bottom-left origin to top-left.
func (p *LedongthucPage) extractSpans() []SpanObject {
	content := p.page.Content()

	var spans []SpanObject
	var cur *SpanObject
	var curBaseline float64

	for _, text := range content.Text {
		if text.S == "" {
			continue
		}

		// Baseline sits near 80% of the glyph height
		y0 := p.height - (text.Y + text.FontSize*0.8)

		adjacent := cur != nil &&
			cur.Font == text.Font &&
			abs(cur.FontSize-text.FontSize) < 0.1 &&
			abs(curBaseline-text.Y) < 0.5 &&
			text.X-cur.X1 < text.FontSize*0.3 &&
			text.X >= cur.X1-0.5

		if adjacent {
			cur.Text += text.S
			cur.X1 = text.X + text.W
			continue
		}

		if cur != nil {
			spans = append(spans, *cur)
		}
		cur = &SpanObject{
			Text:     text.S,
			Font:     text.Font,
			FontSize: text.FontSize,
			X0:       text.X,
			Y0:       y0,
			X1:       text.X + text.W,
			Y1:       y0 + text.FontSize,
		}
		curBaseline = text.Y
	}
	if cur != nil {
		spans = append(spans, *cur)
	}

	return spans
}

// extractAnnotations reads link annotations from the page value tree
func (p *LedongthucPage) extractAnnotations() []AnnotationObject {
	annots := p.page.V.Key("Annots")
	if annots.Kind() != lpdf.Array {
		return nil
	}

	var annos []AnnotationObject
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Kind() != lpdf.Dict {
			continue
		}
		if annot.Key("Subtype").Name() != "Link" {
			continue
		}

		anno := AnnotationObject{Type: "Link"}

		rect := annot.Key("Rect")
		if rect.Kind() == lpdf.Array && rect.Len() == 4 {
			x0, y0 := rect.Index(0).Float64(), rect.Index(1).Float64()
			x1, y1 := rect.Index(2).Float64(), rect.Index(3).Float64()
			anno.X0 = min(x0, x1)
			anno.X1 = max(x0, x1)
			anno.Y0 = p.height - max(y0, y1)
			anno.Y1 = p.height - min(y0, y1)
		}

		action := annot.Key("A")
		if action.Kind() == lpdf.Dict && action.Key("S").Name() == "URI" {
			anno.URL = action.Key("URI").Text()
		}

		annos = append(annos, anno)
	}

	return annos
}

// GetSpans returns the text spans on the page in reading order
func (p *LedongthucPage) GetSpans() ([]SpanObject, error) {
	objects, err := p.GetObjects()
	if err != nil {
		return nil, err
	}
	return objects.Spans, nil
}

// GetHyperlinks returns hyperlinks on the page, pairing each link
// annotation with the text its rectangle covers
func (p *LedongthucPage) GetHyperlinks() ([]Hyperlink, error) {
	objects, err := p.GetObjects()
	if err != nil {
		return nil, err
	}

	var links []Hyperlink
	for _, anno := range objects.Annos {
		if anno.URL == "" {
			continue
		}
		text := anchorTextFor(anno.GetBBox(), objects.Spans)
		if text == "" {
			text = strings.TrimSuffix(anno.URL, "/")
		}
		links = append(links, Hyperlink{Text: text, URL: anno.URL})
	}
	return links, nil
}

// WithinBBox filters page objects to those intersecting a bounding box
func (p *LedongthucPage) WithinBBox(bbox BoundingBox) (Objects, error) {
	objects, err := p.GetObjects()
	if err != nil {
		return Objects{}, err
	}

	filtered := Objects{}
	for _, span := range objects.Spans {
		if span.GetBBox().Intersects(bbox) {
			filtered.Spans = append(filtered.Spans, span)
		}
	}
	for _, anno := range objects.Annos {
		if anno.GetBBox().Intersects(bbox) {
			filtered.Annos = append(filtered.Annos, anno)
		}
	}

	return filtered, nil
}
