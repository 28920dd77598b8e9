package httpadapter

import (
	"io"
	"net/http"

	"github.com/mhire/seev-services/internal/core/domain"
)

func (rt *Router) extractText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, rt.maxUploadBytes)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	doc := domain.UploadedDocument{
		Content:  content,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Filename: fileHeader.Filename,
	}

	text, err := rt.extractor.ExtractText(r.Context(), doc)

	if rt.metrics != nil {
		kind, _ := domain.DetectFileKind(doc.MimeType, doc.Filename)
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		rt.metrics.RecordExtraction(serviceName, string(kind), outcome)
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (rt *Router) extractionHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	version, err := rt.ocrHealth.OCRVersion(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"tesseract": version,
	})
}
