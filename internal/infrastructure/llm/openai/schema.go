package openai

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mhire/seev-services/internal/core/domain"
	"github.com/mhire/seev-services/internal/core/ports"
)

// The provider is asked for strict JSON but is not trusted to deliver it.
// Parse failures are upstream errors; structurally valid JSON missing
// required fields is a validation error.

const analysisSchemaJSON = `{
  "type": "object",
  "required": ["overall_score", "categories", "summary"],
  "properties": {
    "overall_score": {"type": "integer"},
    "title": {"type": "string"},
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category_name", "score"],
        "properties": {
          "category_name": {"type": "string"},
          "score": {"type": "integer"}
        }
      }
    },
    "summary": {"type": "string"}
  }
}`

const rewriteSchemaJSON = `{
  "type": "object",
  "required": ["bias_free_text"],
  "properties": {
    "bias_free_text": {"type": "string"}
  }
}`

var (
	analysisSchema = jsonschema.MustCompileString("analysis.json", analysisSchemaJSON)
	rewriteSchema  = jsonschema.MustCompileString("rewrite.json", rewriteSchemaJSON)
)

func validateAgainst(schema *jsonschema.Schema, operation string, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.WrapError(domain.ErrUpstream, operation,
			fmt.Errorf("response is not valid JSON: %w", err))
	}
	if err := schema.Validate(v); err != nil {
		return domain.WrapError(domain.ErrValidation, operation, err)
	}
	return nil
}

func parseAnalysisPayload(data []byte) (ports.AnalysisPayload, error) {
	if err := validateAgainst(analysisSchema, "parse analysis response", data); err != nil {
		return ports.AnalysisPayload{}, err
	}

	var parsed struct {
		OverallScore int                    `json:"overall_score"`
		Title        string                 `json:"title"`
		Categories   []domain.CategoryScore `json:"categories"`
		Summary      string                 `json:"summary"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return ports.AnalysisPayload{}, domain.WrapError(domain.ErrValidation,
			"parse analysis response", err)
	}

	return ports.AnalysisPayload{
		OverallScore: parsed.OverallScore,
		Title:        parsed.Title,
		Categories:   parsed.Categories,
		Summary:      parsed.Summary,
	}, nil
}

func parseRewritePayload(data []byte) (string, error) {
	if err := validateAgainst(rewriteSchema, "parse rewrite response", data); err != nil {
		return "", err
	}

	var parsed struct {
		BiasFreeText string `json:"bias_free_text"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", domain.WrapError(domain.ErrValidation, "parse rewrite response", err)
	}
	return parsed.BiasFreeText, nil
}
