package ports

import (
	"context"

	"github.com/mhire/seev-services/internal/core/domain"
)

// AnalysisPayload is the provider's parsed JSON for the analysis flow,
// before shaping. Categories arrive unfiltered in model order.
type AnalysisPayload struct {
	OverallScore int
	Title        string
	Categories   []domain.CategoryScore
	Summary      string
}

// BiasAnalysisModel scores a text against the SEEV rubric.
type BiasAnalysisModel interface {
	AnalyzeBias(ctx context.Context, text string) (AnalysisPayload, error)
}

// BiasRewriteModel rewrites a text with its detected biases removed and
// returns the bias-free text.
type BiasRewriteModel interface {
	RewriteBias(ctx context.Context, req domain.RewriteRequest) (string, error)
}

// VariantModel rewrites a text under a named perspective. Unlike the
// analysis and rewrite flows it returns free text, not JSON.
type VariantModel interface {
	GenerateVariant(ctx context.Context, variantType, description, text, cleanedText string) (string, error)
}

// PDFTextExtractor pulls plain text from PDF bytes, page texts joined in
// page order.
type PDFTextExtractor interface {
	ExtractPDF(ctx context.Context, content []byte) (string, error)
}

// ImageTextExtractor runs OCR over raster image bytes.
type ImageTextExtractor interface {
	ExtractImage(ctx context.Context, content []byte) (string, error)
}

// OCRHealthChecker probes the OCR engine installation.
type OCRHealthChecker interface {
	OCRVersion(ctx context.Context) (string, error)
}
