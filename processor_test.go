package pdfprocessor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

type fakePage struct {
	number  int
	objects pdf.Objects
	links   []pdf.Hyperlink
	err     error
}

func (p *fakePage) GetPageNumber() int       { return p.number }
func (p *fakePage) GetWidth() float64        { return 612 }
func (p *fakePage) GetHeight() float64       { return 792 }
func (p *fakePage) GetBBox() pdf.BoundingBox { return pdf.BoundingBox{X1: 612, Y1: 792} }

func (p *fakePage) GetObjects() (pdf.Objects, error) {
	if p.err != nil {
		return pdf.Objects{}, p.err
	}
	return p.objects, nil
}

func (p *fakePage) GetSpans() ([]pdf.SpanObject, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.objects.Spans, nil
}

func (p *fakePage) GetHyperlinks() ([]pdf.Hyperlink, error) {
	return p.links, nil
}

func (p *fakePage) WithinBBox(bbox pdf.BoundingBox) (pdf.Objects, error) {
	return p.objects, nil
}

type fakeDocument struct {
	pages []pdf.Page
}

func (d *fakeDocument) GetMetadata() pdf.Metadata { return pdf.Metadata{} }
func (d *fakeDocument) GetPages() []pdf.Page      { return d.pages }
func (d *fakeDocument) PageCount() int            { return len(d.pages) }
func (d *fakeDocument) Close() error              { return nil }

func (d *fakeDocument) GetPage(index int) (pdf.Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, pdf.ErrNoPages
	}
	return d.pages[index], nil
}

func textSpan(text string, x0, y0, x1, y1 float64) pdf.SpanObject {
	return pdf.SpanObject{Text: text, FontSize: 10, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func borderedTablePage(number int) *fakePage {
	return &fakePage{
		number: number,
		objects: pdf.Objects{
			Lines: []pdf.LineObject{
				{X0: 5, Y0: 10, X1: 205, Y1: 10},
				{X0: 5, Y0: 70, X1: 205, Y1: 70},
				{X0: 5, Y0: 10, X1: 5, Y1: 70},
				{X0: 205, Y0: 10, X1: 205, Y1: 70},
			},
			Spans: []pdf.SpanObject{
				textSpan("Name", 20, 20, 60, 30),
				textSpan("Age", 120, 20, 150, 30),
				textSpan("Alice", 20, 50, 65, 60),
				textSpan("30", 120, 50, 140, 60),
			},
		},
	}
}

func TestDetectTablesBorderedPage(t *testing.T) {
	doc := &fakeDocument{pages: []pdf.Page{borderedTablePage(1)}}
	proc := NewProcessor(DefaultMetrics(), nil)

	found := proc.DetectTables(doc)
	require.Len(t, found, 1)
	assert.Equal(t, pdf.BoundingBox{X0: 5, Y0: 10, X1: 205, Y1: 70}, found[0].BBox)
	assert.Equal(t, 2, found[0].NumRows())
}

func TestDetectTablesAlignmentFallback(t *testing.T) {
	// No ruled lines on the page, so detection falls through to the
	// alignment scanner
	page := &fakePage{
		number: 1,
		objects: pdf.Objects{
			Spans: []pdf.SpanObject{
				textSpan("Col1 Col2 Col3", 10, 10, 160, 22),
				textSpan("a1 a2 a3", 10, 30, 150, 42),
				textSpan("b1 b2 b3", 10, 50, 150, 62),
			},
		},
	}
	doc := &fakeDocument{pages: []pdf.Page{page}}
	proc := NewProcessor(DefaultMetrics(), nil)

	found := proc.DetectTables(doc)
	require.Len(t, found, 1)
	assert.Equal(t, 3, found[0].NumRows())
	assert.Equal(t, "Col1", found[0].Rows[0][0].Content)
}

func TestDetectTablesSkipsFailingPage(t *testing.T) {
	doc := &fakeDocument{pages: []pdf.Page{
		&fakePage{number: 1, err: errors.New("corrupt stream")},
		borderedTablePage(2),
	}}
	proc := NewProcessor(DefaultMetrics(), nil)

	found := proc.DetectTables(doc)
	assert.Len(t, found, 1)
}

func TestDetectTablesEmptyDocument(t *testing.T) {
	proc := NewProcessor(DefaultMetrics(), nil)

	assert.Empty(t, proc.DetectTables(&fakeDocument{}))
}

func TestToMarkdownHeadingAndLink(t *testing.T) {
	page := &fakePage{
		number: 1,
		objects: pdf.Objects{
			Spans: []pdf.SpanObject{
				{Text: "Report", FontSize: 16, X0: 10, Y0: 10, X1: 70, Y1: 26},
				{Text: "Click here", FontSize: 16, X0: 10, Y0: 50, X1: 100, Y1: 66},
			},
		},
		links: []pdf.Hyperlink{{Text: "Click here", URL: "http://x"}},
	}
	doc := &fakeDocument{pages: []pdf.Page{page}}
	proc := NewProcessor(DefaultMetrics(), nil)

	assert.Equal(t, "# Report\n\n[Click here](http://x)", proc.ToMarkdown(doc))
}

func TestExtractTextGroupsLines(t *testing.T) {
	page := &fakePage{
		number: 1,
		objects: pdf.Objects{
			Spans: []pdf.SpanObject{
				textSpan("world", 60, 12, 100, 22),
				textSpan("Hello", 10, 10, 50, 20),
				textSpan("Next", 10, 40, 50, 50),
			},
		},
	}
	doc := &fakeDocument{pages: []pdf.Page{page}}
	proc := NewProcessor(DefaultMetrics(), nil)

	assert.Equal(t, "Hello world\nNext", proc.ExtractText(doc))
}

func TestProcessFileRejectsMissingInput(t *testing.T) {
	proc := NewProcessor(DefaultMetrics(), nil)
	path := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := proc.ProcessFile(path, Options{Text: true, OutputDir: t.TempDir()})
	assert.True(t, errors.Is(err, pdf.ErrNotFound))
}
