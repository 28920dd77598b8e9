package domain

import "fmt"

// RewriteBiasItem is one detected bias carried into a rewrite prompt.
type RewriteBiasItem struct {
	Label  string
	Detail string
}

// RewriteRequest is the unified input of the rewrite flow. The two wire
// shapes (v1 full analysis metadata, v2 flagged score) both reduce to
// this; one prompt and one usecase serve both routes.
type RewriteRequest struct {
	Text           string
	OverallScore   int
	Classification string
	Flags          string
	DetectedCount  int
	Explanation    string
	Detected       []RewriteBiasItem
}

// NewRewriteFromAnalysis builds a RewriteRequest from a prior analysis
// result. Only categories under the detection threshold are carried into
// the prompt.
func NewRewriteFromAnalysis(text string, analysis BiasAnalysis) RewriteRequest {
	var detected []RewriteBiasItem
	for _, c := range analysis.BiasBreakdown {
		if c.Score >= DetectionThreshold {
			continue
		}
		severity := "Moderate Bias"
		if c.Score < moderateThreshold {
			severity = "High Bias"
		}
		detected = append(detected, RewriteBiasItem{
			Label:  c.CategoryName,
			Detail: fmt.Sprintf("Score: %d/100 - %s", c.Score, severity),
		})
	}
	return RewriteRequest{
		Text:           text,
		OverallScore:   analysis.OverallSEEVScore,
		Classification: string(analysis.BiasType),
		DetectedCount:  analysis.DetectedBiasCount,
		Explanation:    analysis.AnalysisSummary,
		Detected:       detected,
	}
}

// FlaggedBiasType is the v2 wire representation of one detected bias.
type FlaggedBiasType struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// NewRewriteFromFlags builds a RewriteRequest from the v2 wire shape,
// where the caller supplies a flat score, a flag color and coded bias
// types instead of a full analysis result.
func NewRewriteFromFlags(text string, score int, flags string, biasTypes []FlaggedBiasType, explanation string) RewriteRequest {
	detected := make([]RewriteBiasItem, 0, len(biasTypes))
	for _, bt := range biasTypes {
		detected = append(detected, RewriteBiasItem{Label: bt.Code + ": " + bt.Label})
	}
	return RewriteRequest{
		Text:           text,
		OverallScore:   score,
		Classification: classifyFlaggedScore(score),
		Flags:          flags,
		DetectedCount:  len(biasTypes),
		Explanation:    explanation,
		Detected:       detected,
	}
}

func classifyFlaggedScore(score int) string {
	switch {
	case score <= 33:
		return "High Bias (severely problematic)"
	case score <= 66:
		return "Moderate Bias (some concerns)"
	default:
		return "Low Bias (trustworthy, neutral)"
	}
}
