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

// RewriteUseCase serves both remove-bias wire shapes; the adapters reduce
// them to one domain.RewriteRequest before this point.
type RewriteUseCase struct {
	model  ports.BiasRewriteModel
	logger *slog.Logger
}

func NewRewriteUseCase(model ports.BiasRewriteModel, logger *slog.Logger) *RewriteUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RewriteUseCase{model: model, logger: logger}
}

func (uc *RewriteUseCase) Rewrite(ctx context.Context, req domain.RewriteRequest) (domain.BiasRewrite, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.BiasRewrite{}, domain.WrapError(domain.ErrEmptyInput, "rewrite text",
			errors.New("text cannot be empty"))
	}

	start := time.Now()
	uc.logger.Debug("rewrite.start",
		"text_len", len(req.Text),
		"detected", len(req.Detected),
		"overall_score", req.OverallScore,
	)

	biasFree, err := uc.model.RewriteBias(ctx, req)
	if err != nil {
		uc.logger.Error("rewrite.model_failed", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return domain.BiasRewrite{}, err
	}

	uc.logger.Info("rewrite.ok",
		"rewritten_len", len(biasFree),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return domain.BiasRewrite{BiasFreeText: biasFree}, nil
}
