package domain

import (
	"strings"
	"testing"
)

func TestNewRewriteFromAnalysisKeepsProblematicCategoriesOnly(t *testing.T) {
	analysis := BiasAnalysis{
		OverallSEEVScore: 45,
		BiasBreakdown: []CategoryScore{
			{CategoryName: "Age Bias", Score: 25},
			{CategoryName: "Framing Bias", Score: 80},
			{CategoryName: "Loaded Language / Labeling Bias", Score: 35},
		},
		BiasType:          BiasTypeModerate,
		AnalysisSummary:   "contains age bias",
		DetectedBiasCount: 2,
	}

	req := NewRewriteFromAnalysis("some text", analysis)

	if len(req.Detected) != 2 {
		t.Fatalf("Detected has %d items, want 2", len(req.Detected))
	}
	if req.Detected[0].Label != "Age Bias" || !strings.Contains(req.Detected[0].Detail, "High Bias") {
		t.Fatalf("first item = %+v, want Age Bias marked High Bias", req.Detected[0])
	}
	if req.Detected[1].Label != "Loaded Language / Labeling Bias" || !strings.Contains(req.Detected[1].Detail, "Moderate Bias") {
		t.Fatalf("second item = %+v, want Loaded Language marked Moderate Bias", req.Detected[1])
	}
	if req.Classification != string(BiasTypeModerate) || req.Explanation != "contains age bias" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestNewRewriteFromFlags(t *testing.T) {
	req := NewRewriteFromFlags("text", 20, "red", []FlaggedBiasType{
		{Code: "B10", Label: "Gender Bias"},
		{Code: "B12", Label: "Age Bias"},
	}, "strongly slanted")

	if req.DetectedCount != 2 {
		t.Fatalf("DetectedCount = %d, want 2", req.DetectedCount)
	}
	if req.Detected[0].Label != "B10: Gender Bias" {
		t.Fatalf("first label = %q", req.Detected[0].Label)
	}
	if !strings.Contains(req.Classification, "High Bias") {
		t.Fatalf("classification = %q, want High Bias for score 20", req.Classification)
	}
	if req.Flags != "red" {
		t.Fatalf("flags = %q", req.Flags)
	}
}

func TestClassifyFlaggedScoreBoundaries(t *testing.T) {
	if got := classifyFlaggedScore(33); !strings.HasPrefix(got, "High") {
		t.Errorf("score 33 classified %q", got)
	}
	if got := classifyFlaggedScore(34); !strings.HasPrefix(got, "Moderate") {
		t.Errorf("score 34 classified %q", got)
	}
	if got := classifyFlaggedScore(66); !strings.HasPrefix(got, "Moderate") {
		t.Errorf("score 66 classified %q", got)
	}
	if got := classifyFlaggedScore(67); !strings.HasPrefix(got, "Low") {
		t.Errorf("score 67 classified %q", got)
	}
}
