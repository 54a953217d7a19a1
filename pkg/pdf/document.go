package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPUDocument implements the Document interface using pdfcpu
type PDFCPUDocument struct {
	ctx      *model.Context
	filepath string
	pages    []Page
	metadata Metadata
}

// Open opens a PDF file with pdfcpu and returns a Document
func Open(filepath string) (Document, error) {
	return OpenWithPassword(filepath, "")
}

// OpenWithPassword opens a password-protected PDF file
func OpenWithPassword(filepath string, password string) (Document, error) {
	var ctx *model.Context
	var err error

	if password == "" {
		ctx, err = api.ReadContextFile(filepath)
	} else {
		conf := model.NewDefaultConfiguration()
		conf.UserPW = password
		conf.OwnerPW = password

		var f *os.File
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("failed to open PDF: %w", err)
		}
		defer f.Close()
		ctx, err = api.ReadContext(f, conf)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	doc := &PDFCPUDocument{
		ctx:      ctx,
		filepath: filepath,
	}

	doc.extractMetadata()

	if err := doc.initializePages(); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

// extractMetadata extracts PDF metadata from the document info dictionary
func (d *PDFCPUDocument) extractMetadata() {
	if d.ctx.Info == nil {
		return
	}

	dict, err := d.ctx.DereferenceDict(*d.ctx.Info)
	if err != nil || dict == nil {
		return
	}

	d.metadata = Metadata{
		Title:    getStringFromDict(dict, "Title"),
		Author:   getStringFromDict(dict, "Author"),
		Subject:  getStringFromDict(dict, "Subject"),
		Keywords: getStringFromDict(dict, "Keywords"),
		Creator:  getStringFromDict(dict, "Creator"),
		Producer: getStringFromDict(dict, "Producer"),
	}
}

// initializePages initializes all pages in the document
func (d *PDFCPUDocument) initializePages() error {
	pageCount := d.ctx.PageCount
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := NewPDFCPUPage(d.ctx, i)
		if err != nil {
			return fmt.Errorf("failed to create page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetMetadata returns the PDF metadata
func (d *PDFCPUDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPages returns all pages in the document
func (d *PDFCPUDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *PDFCPUDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *PDFCPUDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *PDFCPUDocument) Close() error {
	d.ctx = nil
	d.pages = nil
	return nil
}

func getStringFromDict(dict types.Dict, key string) string {
	if dict == nil {
		return ""
	}

	obj := dict[key]
	if obj == nil {
		return ""
	}

	switch v := obj.(type) {
	case types.StringLiteral:
		return string(v)
	case types.HexLiteral:
		return string(v)
	default:
		return ""
	}
}
