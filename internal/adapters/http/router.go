package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/mhire/seev-services/internal/core/ports"
	"github.com/mhire/seev-services/internal/observability/metrics"
)

const serviceName = "seev-api"

// Router wires the HTTP surface to the inbound use case ports.
type Router struct {
	extractor ports.DocumentTextExtractor
	analyzer  ports.TextAnalyzer
	batch     ports.BatchAnalyzer
	rewriter  ports.BiasRewriter
	variants  ports.VariantGenerator
	ocrHealth ports.OCRHealthChecker

	openaiConfigured bool
	maxUploadBytes   int64
	metrics          *metrics.HTTPServerMetrics
}

type RouterDeps struct {
	Extractor ports.DocumentTextExtractor
	Analyzer  ports.TextAnalyzer
	Batch     ports.BatchAnalyzer
	Rewriter  ports.BiasRewriter
	Variants  ports.VariantGenerator
	OCRHealth ports.OCRHealthChecker

	OpenAIConfigured bool
	MaxUploadBytes   int64
	Metrics          *metrics.HTTPServerMetrics
}

func NewRouter(deps RouterDeps) *Router {
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = 20 << 20
	}
	return &Router{
		extractor:        deps.Extractor,
		analyzer:         deps.Analyzer,
		batch:            deps.Batch,
		rewriter:         deps.Rewriter,
		variants:         deps.Variants,
		ocrHealth:        deps.OCRHealth,
		openaiConfigured: deps.OpenAIConfigured,
		maxUploadBytes:   deps.MaxUploadBytes,
		metrics:          deps.Metrics,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", rt.root)
	mux.HandleFunc("/health", rt.serviceHealth)

	mux.HandleFunc("/extraction/extract", rt.extractText)
	mux.HandleFunc("/extraction/health", rt.extractionHealth)

	mux.HandleFunc("/api/v1/analyze", rt.analyzeText)
	mux.HandleFunc("/api/v1/analyze/batch", rt.analyzeBatch)
	mux.HandleFunc("/api/v1/generate-variants", rt.generateVariants)
	mux.HandleFunc("/api/v1/remove-bias", rt.removeBiasV1)
	mux.HandleFunc("/api/v2/remove-bias", rt.removeBiasV2)

	mux.HandleFunc("/api/v1/health", rt.serviceHealth)
	mux.HandleFunc("/api/v2/health", rt.serviceHealth)
	mux.HandleFunc("/api/v1/bias-free/health", rt.serviceHealth)
	mux.HandleFunc("/api/v2/bias-free/health", rt.serviceHealth)

	var handler http.Handler = mux
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) root(w http.ResponseWriter, r *http.Request) {
	// The root pattern also catches unknown paths.
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "SEEV Bias Services API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"/extraction/extract":       "POST - Extract text from image or PDF",
			"/extraction/health":        "GET - Health check for OCR service",
			"/api/v1/analyze":           "POST - Analyze text for bias",
			"/api/v1/analyze/batch":     "POST - Analyze a batch of documents",
			"/api/v1/generate-variants": "POST - Generate synthetic variants",
			"/api/v1/remove-bias":       "POST - Remove bias (analysis metadata shape)",
			"/api/v2/remove-bias":       "POST - Remove bias (flagged categories shape)",
		},
	})
}

func (rt *Router) serviceHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "healthy",
		"openai_configured": rt.openaiConfigured,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
