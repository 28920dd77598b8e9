package openai

import (
	"fmt"
	"strings"

	"github.com/mhire/seev-services/internal/core/domain"
)

// Prompts interpolate the caller's text verbatim. That is an accepted
// trust boundary: the service does not defend against prompt injection.

const (
	analysisSystemPrompt = "You are SEEV Intelligence™. Return only valid JSON."
	rewriteSystemPrompt  = "You are SEEV Intelligence™. Return only valid JSON with bias-free rewritten text."
	variantSystemPrompt  = "You are a professional content rewriter. Return only the rewritten text."
)

func rubricList() string {
	var b strings.Builder
	for _, c := range domain.BiasCategories {
		fmt.Fprintf(&b, "%s: %s - %s\n", c.Code, c.Name, c.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildAnalysisPrompt(text string) string {
	var b strings.Builder
	b.WriteString("You are SEEV Intelligence™, an expert bias detection AI.\n\n")
	b.WriteString("Analyze this text for bias. Here are the 25 possible bias categories:\n\n")
	b.WriteString(rubricList())
	b.WriteString("\n\nText to analyze:\n---\n")
	b.WriteString(text)
	b.WriteString("\n---\n\n")
	b.WriteString(`CRITICAL INSTRUCTIONS:
1. ONLY INCLUDE CATEGORIES THAT ARE RELEVANT to this specific text.
   - If the text doesn't contain statistics, DON'T include "Statistical Misrepresentation"
   - If the text doesn't cite sources, DON'T include "Source Attribution Bias"
   - Only include categories where the text actually addresses that topic/dimension

2. For RELEVANT categories only, assign a score from 0-100 where:
   - 0-33 = High Bias (severely problematic)
   - 34-66 = Moderate Bias (some concerns)
   - 67-100 = Low Bias (trustworthy, neutral)

3. IMPORTANT: Higher scores = better/more neutral content.

4. Be SELECTIVE - only return 5-15 categories that are actually applicable to this text.

5. Think about the text type:
   - Job posting: likely Gender, Age, Racial/Ethnic, Cultural, Socioeconomic biases
   - News article: likely Source Attribution, Political, Framing, Loaded Language
   - Research paper: likely Statistical Misrepresentation, Cherry-Picking, Confirmation Bias
   - Opinion piece: likely Political, Appeal to Emotion, Ad Hominem, False Dichotomy

Calculate an overall SEEV score (weighted average of ONLY the relevant categories you include).

Generate a concise title (3-7 words) for this analysis session based on the text content.

Provide a brief 2-3 sentence summary of the main bias issues found.

Return response as valid JSON in this EXACT structure:
{
  "overall_score": 45,
  "title": "Job Posting - Developer Role",
  "categories": [
    {"category_name": "Gender Bias", "score": 15},
    {"category_name": "Age Bias", "score": 20}
  ],
  "summary": "Brief analysis summary explaining the main biases found..."
}

Return ONLY valid JSON, no markdown formatting.`)
	return b.String()
}

func buildRewritePrompt(req domain.RewriteRequest) string {
	var b strings.Builder
	b.WriteString("You are SEEV Intelligence™, an expert at rewriting text to remove biases while preserving meaning.\n\n")
	b.WriteString("**ORIGINAL TEXT:**\n---\n")
	b.WriteString(req.Text)
	b.WriteString("\n---\n\n")

	b.WriteString("**BIAS ANALYSIS RESULTS:**\n")
	fmt.Fprintf(&b, "- Bias Score: %d/100\n", req.OverallScore)
	fmt.Fprintf(&b, "- Bias Classification: %s\n", req.Classification)
	if req.Flags != "" {
		fmt.Fprintf(&b, "- Flag Status: %s\n", req.Flags)
	}
	fmt.Fprintf(&b, "- Number of Detected Biases: %d\n", req.DetectedCount)
	fmt.Fprintf(&b, "- Analysis Summary: %s\n", req.Explanation)

	if len(req.Detected) > 0 {
		b.WriteString("\n**DETECTED BIAS CATEGORIES:**\n")
		for _, item := range req.Detected {
			if item.Detail != "" {
				fmt.Fprintf(&b, "- %s (%s)\n", item.Label, item.Detail)
			} else {
				fmt.Fprintf(&b, "- %s\n", item.Label)
			}
		}
	}

	b.WriteString(`
**YOUR TASK:**
Rewrite the text to remove ALL detected biases while:

1. Preserving Core Meaning: keep the essential message and intent intact
2. Maintaining Professional Tone: use neutral, professional language
3. Removing Biased Language: address each detected bias category:
   - Remove loaded/emotionally charged words
   - Eliminate stereotypes and generalizations
   - Replace biased terms with neutral alternatives
   - Remove age, gender, racial, cultural, or other identity-based language
   - Use inclusive language
4. Keeping Structure: maintain similar length and format when possible
5. Being Specific: make concrete changes based on the detected bias categories

**IMPORTANT GUIDELINES:**
- If the text is a job posting, use inclusive, skills-focused language
- If it's news/article content, ensure balanced, factual presentation
- Remove sensationalism and appeal to emotion
- Avoid overcorrection - keep natural language flow

Return your response as valid JSON in this EXACT structure:
{
  "bias_free_text": "The complete rewritten text with all biases removed..."
}

Return ONLY valid JSON, no markdown formatting.`)
	return b.String()
}

func buildVariantPrompt(variantType, description, text, cleanedText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rewrite the following text as: %s\n\n", variantType)
	fmt.Fprintf(&b, "Description: %s\n\n", description)
	b.WriteString("Original text:\n---\n")
	b.WriteString(text)
	b.WriteString("\n---\n\n")
	b.WriteString("Cleaned/bias-mitigated version:\n---\n")
	b.WriteString(cleanedText)
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "Create a %s that maintains factual accuracy while applying the specified perspective or approach.\n", variantType)
	b.WriteString("Return ONLY the rewritten text, no explanation or formatting.")
	return b.String()
}
