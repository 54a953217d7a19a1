package pdfprocessor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/layout"
	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
	"github.com/pyhub-apps/pdfprocessor-golang/pkg/tables"
)

// Processor runs the detection and rendering pipeline over whole
// documents. Pages process strictly one at a time in document order; a
// failure reading one page is logged and yields an empty result for
// that page only.
type Processor struct {
	metrics tables.TableMetrics
	logger  *slog.Logger
}

// NewProcessor creates a processor with the given detection thresholds.
// A nil logger falls back to slog.Default.
func NewProcessor(metrics tables.TableMetrics, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{metrics: metrics, logger: logger}
}

// DetectTables finds tables across all pages. Each page tries the
// border detector first and falls back to alignment detection when no
// bordered table is found; candidates from all pages then merge by
// overlap.
func (p *Processor) DetectTables(doc pdf.Document) []*tables.Table {
	var found []*tables.Table

	for _, page := range doc.GetPages() {
		objects, err := page.GetObjects()
		if err != nil {
			p.logger.Warn("failed to read page objects",
				"page", page.GetPageNumber(), "error", err)
			continue
		}

		det := tables.DetectFromBorders(objects, objects.Spans, p.metrics)
		if det.Outcome != tables.OutcomeDetected {
			det = tables.DetectFromAlignment(objects.Spans, p.metrics)
		}

		switch det.Outcome {
		case tables.OutcomeDetected:
			p.logger.Debug("tables detected",
				"page", page.GetPageNumber(), "count", len(det.Tables))
			found = append(found, det.Tables...)
		case tables.OutcomeRejected:
			p.logger.Debug("table candidate rejected", "page", page.GetPageNumber())
		case tables.OutcomeFailure:
			p.logger.Warn("table detection failed",
				"page", page.GetPageNumber(), "error", det.Err)
		}
	}

	return tables.MergeOverlapping(found)
}

// ToMarkdown composes a Markdown document from the layout of every
// page, in order. Pages whose text cannot be read contribute nothing.
func (p *Processor) ToMarkdown(doc pdf.Document) string {
	var parts []string

	for _, page := range doc.GetPages() {
		spans, err := page.GetSpans()
		if err != nil {
			p.logger.Warn("failed to read page text",
				"page", page.GetPageNumber(), "error", err)
			continue
		}

		links, err := page.GetHyperlinks()
		if err != nil {
			p.logger.Warn("failed to read page hyperlinks",
				"page", page.GetPageNumber(), "error", err)
			links = nil
		}

		if md := layout.Compose(spans, links); md != "" {
			parts = append(parts, md)
		}
	}

	return strings.Join(parts, "\n\n")
}

// ExtractText returns the document's plain text, one line per visual
// line, pages separated by a blank line
func (p *Processor) ExtractText(doc pdf.Document) string {
	var pages []string

	for _, page := range doc.GetPages() {
		spans, err := page.GetSpans()
		if err != nil {
			p.logger.Warn("failed to read page text",
				"page", page.GetPageNumber(), "error", err)
			continue
		}

		var lines []string
		var current []string
		var lastY float64

		for _, span := range pdf.SortSpans(spans, 0) {
			gap := span.Y0 - lastY
			if len(current) > 0 && (gap > 5 || gap < -5) {
				lines = append(lines, strings.Join(current, " "))
				current = nil
			}
			if text := strings.TrimSpace(span.Text); text != "" {
				current = append(current, text)
			}
			lastY = span.Y0
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}

		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}

	return strings.Join(pages, "\n\n")
}

// Options selects which artifacts ProcessFile produces
type Options struct {
	Text     bool
	Markdown bool
	Images   bool
	// OutputDir receives the artifacts; it must already exist
	OutputDir string
}

// ProcessFile validates a PDF and writes the requested artifacts into
// the output directory: output.txt for plain text, output.md for
// Markdown, and one file per embedded image. It returns the paths of
// the files it wrote.
func (p *Processor) ProcessFile(path string, opts Options) ([]string, error) {
	if err := pdf.ValidateFile(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("invalid output directory %s: %w", opts.OutputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", opts.OutputDir)
	}

	doc, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer doc.Close()

	var outputs []string

	if opts.Text {
		outPath := filepath.Join(opts.OutputDir, "output.txt")
		if err := os.WriteFile(outPath, []byte(p.ExtractText(doc)), 0o644); err != nil {
			return nil, fmt.Errorf("failed to save text: %w", err)
		}
		p.logger.Info("text extracted", "path", outPath)
		outputs = append(outputs, outPath)
	}

	if opts.Images {
		if err := pdf.ExtractImages(path, opts.OutputDir, nil); err != nil {
			return nil, err
		}
		p.logger.Info("images extracted", "dir", opts.OutputDir)
	}

	if opts.Markdown {
		outPath := filepath.Join(opts.OutputDir, "output.md")
		if err := os.WriteFile(outPath, []byte(p.ToMarkdown(doc)), 0o644); err != nil {
			return nil, fmt.Errorf("failed to save markdown: %w", err)
		}
		p.logger.Info("markdown generated", "path", outPath)
		outputs = append(outputs, outPath)
	}

	return outputs, nil
}
