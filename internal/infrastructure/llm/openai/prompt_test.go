package openai

import (
	"strings"
	"testing"

	"github.com/mhire/seev-services/internal/core/domain"
)

func TestBuildAnalysisPromptIncludesRubricAndText(t *testing.T) {
	prompt := buildAnalysisPrompt("Young and energetic candidates only.")

	if !strings.Contains(prompt, "Young and energetic candidates only.") {
		t.Error("prompt must embed the input text verbatim")
	}
	for _, c := range domain.BiasCategories {
		if !strings.Contains(prompt, c.Code+": "+c.Name) {
			t.Errorf("prompt missing category %s: %s", c.Code, c.Name)
		}
	}
	if !strings.Contains(prompt, `"overall_score"`) {
		t.Error("prompt must spell out the expected JSON structure")
	}
}

func TestBuildRewritePromptOmitsEmptySections(t *testing.T) {
	req := domain.RewriteRequest{
		Text:           "Original.",
		OverallScore:   55,
		Classification: string(domain.BiasTypeModerate),
		DetectedCount:  0,
		Explanation:    "Minor concerns.",
	}
	prompt := buildRewritePrompt(req)

	if strings.Contains(prompt, "Flag Status") {
		t.Error("flag line must be omitted when no flags are set")
	}
	if strings.Contains(prompt, "DETECTED BIAS CATEGORIES") {
		t.Error("detected section must be omitted when nothing was detected")
	}
	if !strings.Contains(prompt, "Bias Score: 55/100") {
		t.Error("prompt must carry the overall score")
	}
}

func TestBuildRewritePromptWithFlagsAndDetails(t *testing.T) {
	req := domain.RewriteRequest{
		Text:           "Original.",
		OverallScore:   20,
		Classification: "High Bias (severely problematic)",
		Flags:          "2 flagged categories",
		DetectedCount:  2,
		Explanation:    "Serious issues.",
		Detected: []domain.RewriteBiasItem{
			{Label: "Gender Bias", Detail: "Score: 15/100 - High Bias"},
			{Label: "B3: Age Bias"},
		},
	}
	prompt := buildRewritePrompt(req)

	if !strings.Contains(prompt, "Flag Status: 2 flagged categories") {
		t.Error("flag line missing")
	}
	if !strings.Contains(prompt, "- Gender Bias (Score: 15/100 - High Bias)") {
		t.Error("detailed item missing")
	}
	if !strings.Contains(prompt, "- B3: Age Bias\n") {
		t.Error("bare item must render without parentheses")
	}
}

func TestBuildVariantPrompt(t *testing.T) {
	prompt := buildVariantPrompt("simplified_version", "Plain language rendition", "orig", "clean")

	for _, want := range []string{"simplified_version", "Plain language rendition", "orig", "clean"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
