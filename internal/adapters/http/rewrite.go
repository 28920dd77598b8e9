package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/mhire/seev-services/internal/core/domain"
)

// Two wire shapes feed the same rewrite flow. v1 carries the full
// analysis metadata returned by /api/v1/analyze; v2 carries a flat score
// with coded bias flags from an external analysis.

func (rt *Router) removeBiasV1(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Text         string              `json:"text"`
		BiasMetadata domain.BiasAnalysis `json:"bias_metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	rt.handleRewrite(w, r, "v1", domain.NewRewriteFromAnalysis(req.Text, req.BiasMetadata))
}

func (rt *Router) removeBiasV2(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Text        string                   `json:"text"`
		Score       int                      `json:"score"`
		Flags       string                   `json:"flags"`
		BiasTypes   []domain.FlaggedBiasType `json:"bias_types"`
		Explanation string                   `json:"explanation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	rt.handleRewrite(w, r, "v2",
		domain.NewRewriteFromFlags(req.Text, req.Score, req.Flags, req.BiasTypes, req.Explanation))
}

func (rt *Router) handleRewrite(w http.ResponseWriter, r *http.Request, shape string, rewriteReq domain.RewriteRequest) {
	rewrite, err := rt.rewriter.Rewrite(r.Context(), rewriteReq)

	if rt.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		rt.metrics.RecordRewrite(serviceName, shape, outcome)
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rewrite)
}
