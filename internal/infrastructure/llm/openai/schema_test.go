package openai

import (
	"errors"
	"testing"

	"github.com/mhire/seev-services/internal/core/domain"
)

func TestParseAnalysisPayload(t *testing.T) {
	payload, err := parseAnalysisPayload([]byte(`{
		"overall_score": 45,
		"title": "Job Posting - Developer Role",
		"categories": [
			{"category_name": "Gender Bias", "score": 15},
			{"category_name": "Age Bias", "score": 20}
		],
		"summary": "Gendered and age-coded language throughout."
	}`))
	if err != nil {
		t.Fatalf("parseAnalysisPayload: %v", err)
	}
	if payload.OverallScore != 45 {
		t.Errorf("OverallScore = %d", payload.OverallScore)
	}
	if len(payload.Categories) != 2 || payload.Categories[1].CategoryName != "Age Bias" {
		t.Errorf("Categories = %+v", payload.Categories)
	}
}

func TestParseAnalysisPayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", "overall_score: 45", domain.ErrUpstream},
		{"missing categories", `{"overall_score": 45, "summary": "s"}`, domain.ErrValidation},
		{"score not integer", `{"overall_score": "45", "categories": [], "summary": "s"}`, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnalysisPayload([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRewritePayload(t *testing.T) {
	got, err := parseRewritePayload([]byte(`{"bias_free_text": "Neutral text."}`))
	if err != nil {
		t.Fatalf("parseRewritePayload: %v", err)
	}
	if got != "Neutral text." {
		t.Errorf("got %q", got)
	}

	if _, err := parseRewritePayload([]byte(`{}`)); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty object: err = %v, want ErrValidation", err)
	}
}
