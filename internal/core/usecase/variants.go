package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/mhire/seev-services/internal/core/domain"
	"github.com/mhire/seev-services/internal/core/ports"
)

type variantKind struct {
	name        string
	description string
}

var variantKinds = []variantKind{
	{"SEEV-screened revised version", "A bias-mitigated, neutral version focusing on clarity and accuracy"},
	{"Left-leaning neutral version", "A version that maintains neutrality while acknowledging progressive perspectives"},
	{"Right-leaning neutral version", "A version that maintains neutrality while acknowledging conservative perspectives"},
	{"Centrist version", "A strictly balanced version avoiding any political lean"},
	{"International perspective version", "A version reframed for global/international audience"},
	{"Fact-only version", "A version stripped to verifiable facts and data only"},
	{"Child-accessible version", "A version simplified for younger readers while maintaining accuracy"},
}

// VariantsUseCase generates the synthetic rewrite set for a text. The
// first variant is the bias-free rewrite produced by the analysis+rewrite
// flows; the remaining ones are generated per perspective and skipped on
// failure, like batch documents.
type VariantsUseCase struct {
	analyzer ports.TextAnalyzer
	rewriter ports.BiasRewriter
	model    ports.VariantModel
	logger   *slog.Logger
}

func NewVariantsUseCase(
	analyzer ports.TextAnalyzer,
	rewriter ports.BiasRewriter,
	model ports.VariantModel,
	logger *slog.Logger,
) *VariantsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &VariantsUseCase{analyzer: analyzer, rewriter: rewriter, model: model, logger: logger}
}

func (uc *VariantsUseCase) GenerateVariants(ctx context.Context, documentID, text string) (domain.VariantSet, error) {
	if strings.TrimSpace(text) == "" {
		return domain.VariantSet{}, domain.WrapError(domain.ErrEmptyInput, "generate variants",
			errors.New("text cannot be empty"))
	}

	analysis, err := uc.analyzer.Analyze(ctx, text)
	if err != nil {
		return domain.VariantSet{}, err
	}

	rewrite, err := uc.rewriter.Rewrite(ctx, domain.NewRewriteFromAnalysis(text, analysis))
	if err != nil {
		return domain.VariantSet{}, err
	}

	variants := make([]domain.SyntheticVariant, 0, len(variantKinds))
	variants = append(variants, domain.SyntheticVariant{
		VariantType: variantKinds[0].name,
		Text:        rewrite.BiasFreeText,
		Description: variantKinds[0].description,
	})

	for _, kind := range variantKinds[1:] {
		variantText, err := uc.model.GenerateVariant(ctx, kind.name, kind.description, text, rewrite.BiasFreeText)
		if err != nil {
			uc.logger.Warn("variants.generation_failed",
				"document_id", documentID,
				"variant_type", kind.name,
				"error", err,
			)
			continue
		}
		variants = append(variants, domain.SyntheticVariant{
			VariantType: kind.name,
			Text:        variantText,
			Description: kind.description,
		})
	}

	return domain.VariantSet{
		DocumentID:  documentID,
		Variants:    variants,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
