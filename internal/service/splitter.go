package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"payslip-processor/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFSplitter splits a batch PDF into one file per page using pdfcpu.
type PDFSplitter struct {
	logger domain.Logger
}

// NewPDFSplitter creates a new splitter instance
func NewPDFSplitter(logger domain.Logger) *PDFSplitter {
	return &PDFSplitter{logger: logger}
}

// Split writes one single-page PDF per source page into pagesDir and returns
// the units in source order. Page files are named temp_page_NNN.pdf so that
// ordering on disk matches page ordering.
func (s *PDFSplitter) Split(ctx context.Context, inputPath, pagesDir string) ([]domain.PageUnit, error) {
	pageCount, err := api.PageCountFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}
	if pageCount < 1 {
		return nil, fmt.Errorf("%w: zero pages", domain.ErrCorruptDocument)
	}

	if err := os.MkdirAll(pagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating pages directory: %w", err)
	}

	units := make([]domain.PageUnit, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outPath := filepath.Join(pagesDir, fmt.Sprintf("temp_page_%03d.pdf", page))
		if err := api.TrimFile(inputPath, outPath, []string{strconv.Itoa(page)}, nil); err != nil {
			return nil, fmt.Errorf("extracting page %d/%d: %w", page, pageCount, err)
		}
		units = append(units, domain.PageUnit{Index: page, Path: outPath})
	}

	s.logger.Info("Split PDF into pages", "input", inputPath, "pages", pageCount)
	return units, nil
}
