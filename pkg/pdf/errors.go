package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Sentinel errors for input validation
var (
	ErrNotFound  = errors.New("pdf file not found")
	ErrNotAFile  = errors.New("not a file")
	ErrNotPDF    = errors.New("not a pdf file")
	ErrEmptyFile = errors.New("empty pdf file")
	ErrNoPages   = errors.New("pdf has no pages")
)

// ValidateFile checks that path points to a readable, well-formed PDF:
// the path exists and is a regular file with a .pdf extension, the file
// is non-empty, and pdfcpu accepts it.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: %s", ErrNotPDF, path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s (%v)", ErrNotPDF, path, err)
	}
	if ctx.PageCount == 0 {
		return fmt.Errorf("%w: %s", ErrNoPages, path)
	}
	return nil
}
