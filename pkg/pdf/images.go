package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ExtractImages writes every embedded image of the PDF into outDir,
// creating the directory if needed. Pages may narrow the extraction
// (pdfcpu page selection syntax, e.g. "1-3"); nil selects all pages.
func ExtractImages(filepath, outDir string, pages []string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	if err := api.ExtractImagesFile(filepath, outDir, pages, nil); err != nil {
		return fmt.Errorf("failed to extract images: %w", err)
	}

	return nil
}
