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

const defaultAnalysisTitle = "Bias Analysis Session"

type AnalyzeTextUseCase struct {
	model  ports.BiasAnalysisModel
	logger *slog.Logger
}

func NewAnalyzeTextUseCase(model ports.BiasAnalysisModel, logger *slog.Logger) *AnalyzeTextUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeTextUseCase{model: model, logger: logger}
}

// Analyze scores a text against the rubric and shapes the provider payload
// into a typed result. Empty or whitespace-only text fails before any
// provider call.
func (uc *AnalyzeTextUseCase) Analyze(ctx context.Context, text string) (domain.BiasAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return domain.BiasAnalysis{}, domain.WrapError(domain.ErrEmptyInput, "analyze text",
			errors.New("text cannot be empty"))
	}

	start := time.Now()
	uc.logger.Debug("analyze.start", "text_len", len(text))

	payload, err := uc.model.AnalyzeBias(ctx, text)
	if err != nil {
		uc.logger.Error("analyze.model_failed", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return domain.BiasAnalysis{}, err
	}

	analysis := shapeAnalysis(payload)
	uc.logger.Info("analyze.ok",
		"overall_score", analysis.OverallSEEVScore,
		"bias_type", analysis.BiasType,
		"detected", analysis.DetectedBiasCount,
		"breakdown", len(analysis.BiasBreakdown),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return analysis, nil
}

// shapeAnalysis derives bias_type and detected_bias_count, clamps scores
// and filters zero-score categories. The detected count runs over the
// unfiltered category list.
func shapeAnalysis(payload ports.AnalysisPayload) domain.BiasAnalysis {
	categories := make([]domain.CategoryScore, 0, len(payload.Categories))
	for _, c := range payload.Categories {
		categories = append(categories, domain.CategoryScore{
			CategoryName: c.CategoryName,
			Score:        domain.ClampScore(c.Score),
		})
	}

	overall := domain.ClampScore(payload.OverallScore)
	title := payload.Title
	if strings.TrimSpace(title) == "" {
		title = defaultAnalysisTitle
	}

	return domain.BiasAnalysis{
		OverallSEEVScore:  overall,
		Title:             title,
		BiasBreakdown:     domain.FormatBreakdown(categories),
		BiasType:          domain.BiasTypeFromScore(overall),
		AnalysisSummary:   payload.Summary,
		DetectedBiasCount: domain.DetectedBiasCount(categories),
	}
}
