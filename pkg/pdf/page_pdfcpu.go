package pdf

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPUPage implements the Page interface using pdfcpu
type PDFCPUPage struct {
	ctx        *model.Context
	pageNumber int
	pageDict   types.Dict
	width      float64
	height     float64
	content    []byte
	objects    *Objects
}

// NewPDFCPUPage creates a new page using pdfcpu context
func NewPDFCPUPage(ctx *model.Context, pageNumber int) (*PDFCPUPage, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}

	if pageNumber < 1 || pageNumber > ctx.PageCount {
		return nil, fmt.Errorf("page number %d out of range [1, %d]", pageNumber, ctx.PageCount)
	}

	// Get page dictionary and inherited attributes
	pageDict, _, attrs, err := ctx.PageDict(pageNumber, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dict: %w", err)
	}

	// Page dimensions come from the MediaBox, defaulting to US Letter
	var width, height float64 = 612, 792
	if attrs != nil && attrs.MediaBox != nil {
		width = attrs.MediaBox.Width()
		height = attrs.MediaBox.Height()
	}

	page := &PDFCPUPage{
		ctx:        ctx,
		pageNumber: pageNumber,
		pageDict:   pageDict,
		width:      width,
		height:     height,
	}

	if err := page.extractContent(); err != nil {
		return nil, fmt.Errorf("failed to extract content: %w", err)
	}

	return page, nil
}

// extractContent extracts the raw content stream bytes from the page
func (p *PDFCPUPage) extractContent() error {
	contents := p.pageDict["Contents"]
	if contents == nil {
		return nil
	}

	var streams [][]byte

	appendStream := func(ref types.IndirectRef) {
		sd, _, err := p.ctx.DereferenceStreamDict(ref)
		if err != nil || sd == nil {
			return
		}
		if len(sd.Content) == 0 {
			if err := sd.Decode(); err != nil {
				return
			}
		}
		streams = append(streams, sd.Content)
	}

	switch v := contents.(type) {
	case types.IndirectRef:
		appendStream(v)
	case *types.IndirectRef:
		appendStream(*v)
	case types.Array:
		for _, item := range v {
			switch ref := item.(type) {
			case types.IndirectRef:
				appendStream(ref)
			case *types.IndirectRef:
				appendStream(*ref)
			}
		}
	}

	var combined []byte
	for _, s := range streams {
		combined = append(combined, s...)
		combined = append(combined, '\n')
	}
	p.content = combined

	return nil
}

// GetPageNumber returns the page number (1-based)
func (p *PDFCPUPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *PDFCPUPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *PDFCPUPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *PDFCPUPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// GetObjects returns all objects on the page. The content stream is
// scanned on first use and the result cached.
func (p *PDFCPUPage) GetObjects() (Objects, error) {
	if p.objects != nil {
		return *p.objects, nil
	}

	scanner := NewContentScanner(p.ctx, p.pageDict, p.height)
	objects, err := scanner.Scan(p.content)
	if err != nil {
		return Objects{}, fmt.Errorf("failed to scan content stream: %w", err)
	}

	annos, err := p.extractAnnotations()
	if err != nil {
		return Objects{}, err
	}
	objects.Annos = annos

	p.objects = &objects
	return objects, nil
}

// GetSpans returns the text spans on the page in reading order
func (p *PDFCPUPage) GetSpans() ([]SpanObject, error) {
	objects, err := p.GetObjects()
	if err != nil {
		return nil, err
	}
	return objects.Spans, nil
}

// GetHyperlinks returns hyperlinks on the page. Each link annotation is
// paired with the text of the spans its rectangle covers.
func (p *PDFCPUPage) GetHyperlinks() ([]Hyperlink, error) {
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

// anchorTextFor collects the text of spans whose box falls within the
// annotation rectangle, joined left to right.
func anchorTextFor(bbox BoundingBox, spans []SpanObject) string {
	var parts []string
	for _, span := range spans {
		if bbox.Encloses(span.GetBBox(), 2.0) {
			parts = append(parts, span.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// extractAnnotations reads link annotations from the page /Annots array
func (p *PDFCPUPage) extractAnnotations() ([]AnnotationObject, error) {
	annots := p.pageDict["Annots"]
	if annots == nil {
		return nil, nil
	}

	arr, err := p.ctx.DereferenceArray(annots)
	if err != nil || arr == nil {
		return nil, nil
	}

	var annos []AnnotationObject
	for _, item := range arr {
		dict, err := p.ctx.DereferenceDict(item)
		if err != nil || dict == nil {
			continue
		}

		subtype := dictName(dict, "Subtype")
		if subtype != "Link" {
			continue
		}

		anno := AnnotationObject{Type: subtype}

		if rect, ok := dict["Rect"].(types.Array); ok && len(rect) == 4 {
			x0, y0 := numValue(rect[0]), numValue(rect[1])
			x1, y1 := numValue(rect[2]), numValue(rect[3])
			// PDF rects are bottom-left origin; flip to top-left
			anno.X0 = min(x0, x1)
			anno.X1 = max(x0, x1)
			anno.Y0 = p.height - max(y0, y1)
			anno.Y1 = p.height - min(y0, y1)
		}

		if action, err := p.ctx.DereferenceDict(dict["A"]); err == nil && action != nil {
			if dictName(action, "S") == "URI" {
				anno.URL = dictString(action, "URI")
			}
		}

		annos = append(annos, anno)
	}

	return annos, nil
}

// WithinBBox filters page objects to those intersecting a bounding box
func (p *PDFCPUPage) WithinBBox(bbox BoundingBox) (Objects, error) {
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
	for _, line := range objects.Lines {
		if line.GetBBox().Intersects(bbox) {
			filtered.Lines = append(filtered.Lines, line)
		}
	}
	for _, rect := range objects.Rects {
		if rect.GetBBox().Intersects(bbox) {
			filtered.Rects = append(filtered.Rects, rect)
		}
	}
	for _, anno := range objects.Annos {
		if anno.GetBBox().Intersects(bbox) {
			filtered.Annos = append(filtered.Annos, anno)
		}
	}

	return filtered, nil
}

func dictName(dict types.Dict, key string) string {
	if name, ok := dict[key].(types.Name); ok {
		return string(name)
	}
	return ""
}

func dictString(dict types.Dict, key string) string {
	switch v := dict[key].(type) {
	case types.StringLiteral:
		return string(v)
	case types.HexLiteral:
		s, err := types.HexLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	}
	return ""
}

func numValue(obj types.Object) float64 {
	switch v := obj.(type) {
	case types.Float:
		return float64(v)
	case types.Integer:
		return float64(v)
	}
	return 0
}
