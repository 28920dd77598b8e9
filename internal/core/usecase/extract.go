package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mhire/seev-services/internal/core/domain"
	"github.com/mhire/seev-services/internal/core/ports"
)

// ExtractTextUseCase classifies an upload and dispatches to the PDF or
// image extraction path.
type ExtractTextUseCase struct {
	pdf    ports.PDFTextExtractor
	image  ports.ImageTextExtractor
	logger *slog.Logger
}

func NewExtractTextUseCase(pdf ports.PDFTextExtractor, image ports.ImageTextExtractor, logger *slog.Logger) *ExtractTextUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractTextUseCase{pdf: pdf, image: image, logger: logger}
}

func (uc *ExtractTextUseCase) ExtractText(ctx context.Context, doc domain.UploadedDocument) (string, error) {
	kind, err := domain.DetectFileKind(doc.MimeType, doc.Filename)
	if err != nil {
		uc.logger.Warn("extract.unsupported_type",
			"mime_type", doc.MimeType,
			"filename", doc.Filename,
		)
		return "", err
	}

	start := time.Now()
	var text string
	switch kind {
	case domain.KindPDF:
		text, err = uc.pdf.ExtractPDF(ctx, doc.Content)
	case domain.KindImage:
		text, err = uc.image.ExtractImage(ctx, doc.Content)
	}
	if err != nil {
		uc.logger.Error("extract.failed",
			"kind", kind,
			"filename", doc.Filename,
			"error", err,
		)
		return "", err
	}

	text = strings.TrimSpace(text)
	uc.logger.Info("extract.ok",
		"kind", kind,
		"filename", doc.Filename,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
