package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/mhire/seev-services/internal/core/domain"
)

func (rt *Router) analyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	analysis, err := rt.analyzer.Analyze(r.Context(), req.Text)

	if rt.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		rt.metrics.RecordAnalysis(serviceName, outcome, analysis.OverallSEEVScore)
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (rt *Router) analyzeBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Documents []domain.BatchDocument `json:"documents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	// An empty documents list is processed like any other batch and
	// reports total_documents of zero.
	if rt.metrics != nil {
		rt.metrics.RecordBatch(serviceName, len(req.Documents))
	}

	batch, err := rt.batch.AnalyzeBatch(r.Context(), req.Documents)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

func (rt *Router) generateVariants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		DocumentID string `json:"document_id"`
		Text       string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	set, err := rt.variants.GenerateVariants(r.Context(), req.DocumentID, req.Text)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordVariants(serviceName, len(set.Variants))
	}
	writeJSON(w, http.StatusOK, set)
}
