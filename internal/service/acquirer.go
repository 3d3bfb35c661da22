package service

import (
	"context"
	"errors"
	"strings"

	"payslip-processor/internal/domain"

	"github.com/gen2brain/go-fitz"
)

const (
	// Payslips sometimes repeat header text on a continuation area, so the
	// native pass reads up to the first two pages of a unit.
	maxHeaderPages = 2

	// Identity-focused recognition renders at full resolution; the inline
	// secondary pass uses a lighter raster.
	identityDPI  = 300
	secondaryDPI = 200
)

// FitzTextAcquirer extracts page text through go-fitz, with a layered
// strategy: native text layer first, then rasterize and recognize.
type FitzTextAcquirer struct {
	recognizer domain.Recognizer
	language   string
	logger     domain.Logger
}

// NewFitzTextAcquirer creates a new text acquirer. The recognizer may be nil
// when no OCR capability exists; acquisition then stops at the native layer.
func NewFitzTextAcquirer(recognizer domain.Recognizer, language string, logger domain.Logger) *FitzTextAcquirer {
	if language == "" {
		language = "fra"
	}
	return &FitzTextAcquirer{
		recognizer: recognizer,
		language:   language,
		logger:     logger,
	}
}

// Acquire returns best-effort text for the page file. It never fails: open,
// render and recognition problems all degrade to an empty SourceNone result.
func (a *FitzTextAcquirer) Acquire(ctx context.Context, pagePath string, forceOCR bool) domain.AcquiredText {
	doc, err := fitz.New(pagePath)
	if err != nil {
		a.logger.Warn("Could not open page document", "path", pagePath, "error", err)
		return domain.AcquiredText{Source: domain.SourceNone}
	}
	defer doc.Close()

	if !forceOCR {
		if text := a.nativeText(doc); strings.TrimSpace(text) != "" {
			return domain.AcquiredText{RawText: text, Source: domain.SourceNative}
		}
	}

	dpi := secondaryDPI
	if forceOCR {
		dpi = identityDPI
	}

	text, err := a.recognizedText(ctx, doc, dpi)
	if err != nil {
		if !errors.Is(err, domain.ErrRecognitionUnavailable) {
			a.logger.Warn("Text recognition failed", "path", pagePath, "error", err)
		}
		return domain.AcquiredText{Source: domain.SourceNone}
	}
	if strings.TrimSpace(text) == "" {
		return domain.AcquiredText{Source: domain.SourceNone}
	}
	return domain.AcquiredText{RawText: text, Source: domain.SourceOCR}
}

// nativeText reads the embedded text layer of up to the first two pages.
func (a *FitzTextAcquirer) nativeText(doc *fitz.Document) string {
	pages := doc.NumPage()
	if pages > maxHeaderPages {
		pages = maxHeaderPages
	}

	var sb strings.Builder
	for i := 0; i < pages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			a.logger.Debug("Native text extraction failed", "page", i+1, "error", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (a *FitzTextAcquirer) recognizedText(ctx context.Context, doc *fitz.Document, dpi int) (string, error) {
	if a.recognizer == nil || !a.recognizer.Available() {
		return "", domain.ErrRecognitionUnavailable
	}
	png, err := doc.ImagePNG(0, float64(dpi))
	if err != nil {
		return "", err
	}
	return a.recognizer.Recognize(ctx, png, a.language)
}
