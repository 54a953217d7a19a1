// Package pdfprocessor extracts structured tables and Markdown from PDF
// files: border and alignment based table detection, merge and
// validation, plus a layout-aware Markdown composer.
package pdfprocessor

import (
	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
	"github.com/pyhub-apps/pdfprocessor-golang/pkg/tables"
)

// Re-export types from the internal packages for the public API
type (
	Document     = pdf.Document
	Page         = pdf.Page
	Objects      = pdf.Objects
	SpanObject   = pdf.SpanObject
	LineObject   = pdf.LineObject
	RectObject   = pdf.RectObject
	BoundingBox  = pdf.BoundingBox
	Hyperlink    = pdf.Hyperlink
	Metadata     = pdf.Metadata
	Table        = tables.Table
	TableCell    = tables.TableCell
	TableMetrics = tables.TableMetrics
	Detection    = tables.Detection
	Outcome      = tables.Outcome
)

// Re-export the detection outcome kinds
const (
	OutcomeDetected = tables.OutcomeDetected
	OutcomeMiss     = tables.OutcomeMiss
	OutcomeRejected = tables.OutcomeRejected
	OutcomeFailure  = tables.OutcomeFailure
)

// DefaultMetrics returns the default table detection thresholds
func DefaultMetrics() TableMetrics {
	return tables.DefaultMetrics()
}

// Open opens a PDF file and returns a Document
func Open(filepath string) (pdf.Document, error) {
	// Try ledongthuc first as it has the most accurate text extraction
	doc, err := pdf.OpenWithLedongthuc(filepath)
	if err == nil {
		return doc, nil
	}

	// Fall back to the pdfcpu implementation
	return pdf.Open(filepath)
}

// OpenWithPassword opens a password-protected PDF file
func OpenWithPassword(filepath string, password string) (pdf.Document, error) {
	return pdf.OpenWithPassword(filepath, password)
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (pdf.Document, error) {
	return pdf.OpenWithLedongthuc(filepath)
}

// ValidateFile checks that a path points to a readable, well-formed PDF
func ValidateFile(path string) error {
	return pdf.ValidateFile(path)
}
