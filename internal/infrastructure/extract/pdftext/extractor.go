// Package pdftext extracts plain text from PDF uploads using the pure Go
// ledongthuc/pdf reader, so no external binary is needed for the PDF path.
package pdftext

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mhire/seev-services/internal/core/domain"
)

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractPDF pulls text page by page. Each page's text is appended as-is
// with a blank line between pages, and only the final result is trimmed.
// Pages that fail to decode are skipped rather than failing the whole
// document, since scanned PDFs commonly mix text and image-only pages.
// A PDF with no extractable text (an image-only scan) yields an empty
// string, not an error.
func (e *Extractor) ExtractPDF(ctx context.Context, content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "open pdf", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", domain.WrapError(domain.ErrExtraction, "extract pdf", err)
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			e.logger.Warn("pdf.page_skipped", "page", i, "error", "missing page object")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("pdf.page_skipped", "page", i, "error", err)
			continue
		}
		pages = append(pages, text)
	}
	return strings.TrimSpace(joinPages(pages)), nil
}

func joinPages(pages []string) string {
	return strings.Join(pages, "\n\n")
}
