package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/mhire/seev-services/internal/adapters/http"
	"github.com/mhire/seev-services/internal/bootstrap"
	"github.com/mhire/seev-services/internal/config"
	"github.com/mhire/seev-services/internal/observability/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("seev-api", cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.OpenAIConfigured() {
		logger.Warn("OPENAI_API_KEY not set, analysis and rewrite calls will fail")
	}

	app := bootstrap.New(cfg, logger)

	router := httpadapter.NewRouter(httpadapter.RouterDeps{
		Extractor:        app.ExtractUC,
		Analyzer:         app.AnalyzeUC,
		Batch:            app.BatchUC,
		Rewriter:         app.RewriteUC,
		Variants:         app.VariantsUC,
		OCRHealth:        app.OCRHealth,
		OpenAIConfigured: cfg.OpenAIConfigured(),
		MaxUploadBytes:   cfg.MaxUploadBytes,
		Metrics:          app.Metrics,
	}).Handler()

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("api server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api shutdown error", "error", err)
	}
}
