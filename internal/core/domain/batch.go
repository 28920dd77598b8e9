package domain

import "time"

// BatchDocument is one entry of a batch analysis request.
type BatchDocument struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// BatchAnalysis reports the succeeded subset of a batch. Failed documents
// are skipped, so TotalDocuments counts results, not submissions, and the
// average is computed over successes only.
type BatchAnalysis struct {
	BatchID               string         `json:"batch_id"`
	TotalDocuments        int            `json:"total_documents"`
	Results               []BiasAnalysis `json:"results"`
	AverageSEEVScore      float64        `json:"average_seev_score"`
	ProcessingTimeSeconds float64        `json:"processing_time_seconds"`
}

type SyntheticVariant struct {
	VariantType string `json:"variant_type"`
	Text        string `json:"text"`
	Description string `json:"description"`
}

type VariantSet struct {
	DocumentID  string             `json:"document_id"`
	Variants    []SyntheticVariant `json:"variants"`
	GeneratedAt time.Time          `json:"generation_timestamp"`
}
