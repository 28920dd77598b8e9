package bootstrap

import (
	"log/slog"
	"time"

	"github.com/mhire/seev-services/internal/config"
	"github.com/mhire/seev-services/internal/core/ports"
	"github.com/mhire/seev-services/internal/core/usecase"
	"github.com/mhire/seev-services/internal/infrastructure/extract/imageocr"
	"github.com/mhire/seev-services/internal/infrastructure/extract/pdftext"
	"github.com/mhire/seev-services/internal/infrastructure/llm/openai"
	"github.com/mhire/seev-services/internal/observability/metrics"
)

// App holds the wired use cases behind their inbound ports plus the
// shared infrastructure the HTTP layer needs.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.HTTPServerMetrics

	ExtractUC  ports.DocumentTextExtractor
	AnalyzeUC  ports.TextAnalyzer
	BatchUC    ports.BatchAnalyzer
	RewriteUC  ports.BiasRewriter
	VariantsUC ports.VariantGenerator
	OCRHealth  ports.OCRHealthChecker
}

func New(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	llm := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: time.Duration(cfg.OpenAITimeoutSeconds) * time.Second,
	}, logger)

	pdfExtractor := pdftext.NewExtractor(logger)
	imageExtractor := imageocr.NewExtractor(imageocr.Config{
		Tesseract: cfg.TesseractBin,
		Lang:      cfg.OCRLang,
	}, logger)

	analyzeUC := usecase.NewAnalyzeTextUseCase(llm, logger)
	rewriteUC := usecase.NewRewriteUseCase(llm, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewHTTPServerMetrics("seev-api"),

		ExtractUC:  usecase.NewExtractTextUseCase(pdfExtractor, imageExtractor, logger),
		AnalyzeUC:  analyzeUC,
		BatchUC:    usecase.NewBatchAnalyzeUseCase(analyzeUC, logger),
		RewriteUC:  rewriteUC,
		VariantsUC: usecase.NewVariantsUseCase(analyzeUC, rewriteUC, llm, logger),
		OCRHealth:  imageExtractor,
	}
}
