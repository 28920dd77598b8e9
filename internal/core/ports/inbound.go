package ports

import (
	"context"

	"github.com/mhire/seev-services/internal/core/domain"
)

// TextAnalyzer is the inbound contract for single-document bias analysis.
type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) (domain.BiasAnalysis, error)
}

// BatchAnalyzer analyzes a list of documents with skip-on-failure
// semantics: one bad document must not abort the batch.
type BatchAnalyzer interface {
	AnalyzeBatch(ctx context.Context, documents []domain.BatchDocument) (domain.BatchAnalysis, error)
}

// BiasRewriter produces a bias-mitigated rewrite of a text.
type BiasRewriter interface {
	Rewrite(ctx context.Context, req domain.RewriteRequest) (domain.BiasRewrite, error)
}

// VariantGenerator produces the synthetic rewrite variants of a text.
type VariantGenerator interface {
	GenerateVariants(ctx context.Context, documentID, text string) (domain.VariantSet, error)
}

// DocumentTextExtractor is the inbound contract of the extraction surface.
type DocumentTextExtractor interface {
	ExtractText(ctx context.Context, doc domain.UploadedDocument) (string, error)
}
