package domain

// The SEEV rubric scores text along 25 fixed dimensions. Scores run 0-100
// with higher meaning more neutral, so a low category score is a problem,
// not an absence of one.

type BiasCategory struct {
	Code        string
	Name        string
	Description string
}

var BiasCategories = []BiasCategory{
	{"B1", "Source Attribution Bias", "Failure to properly cite or attribute sources"},
	{"B2", "Statistical Misrepresentation", "Misleading use of statistics or data"},
	{"B3", "Cherry-Picking Evidence", "Selective presentation of supporting evidence"},
	{"B4", "False Equivalence", "Treating unequal things as equivalent"},
	{"B5", "Omission Bias", "Leaving out important contextual information"},
	{"B6", "Framing Bias", "Presenting information in a way that influences perception"},
	{"B7", "Loaded Language / Labeling Bias", "Using emotionally charged or provocative language"},
	{"B8", "Sensationalism", "Exaggerating or dramatizing for effect"},
	{"B9", "Stereotyping", "Applying generalized assumptions to groups"},
	{"B10", "Gender Bias", "Unfair treatment based on gender"},
	{"B11", "Racial/Ethnic Bias", "Prejudice based on race or ethnicity"},
	{"B12", "Age Bias", "Discrimination or assumptions based on age"},
	{"B13", "Socioeconomic Bias", "Bias related to social or economic status"},
	{"B14", "Geographic/Regional Bias", "Prejudice based on location or region"},
	{"B15", "Cultural Bias", "Favoring one cultural perspective over others"},
	{"B16", "Religious Bias", "Prejudice related to religious beliefs"},
	{"B17", "Political Bias", "Favoring one political perspective"},
	{"B18", "Corporate/Commercial Bias", "Influence from commercial interests"},
	{"B19", "Authority/Credential Bias", "Over-reliance on or dismissal of authority"},
	{"B20", "Temporal Bias", "Unfair focus on or dismissal of time periods"},
	{"B21", "Confirmation Bias Indicators", "Seeking only confirming evidence"},
	{"B22", "Appeal to Emotion", "Using emotions rather than logic"},
	{"B23", "False Dichotomy", "Presenting only two options when more exist"},
	{"B24", "Ad Hominem Elements", "Attacking the person rather than the argument"},
	{"B25", "Hasty Generalization", "Drawing broad conclusions from limited evidence"},
}

type BiasType string

const (
	BiasTypeLow      BiasType = "Low Bias"
	BiasTypeModerate BiasType = "Moderate Bias"
	BiasTypeHigh     BiasType = "High Bias"
)

// DetectionThreshold separates detected bias (score below) from clean
// categories; it is also the Low Bias boundary.
const DetectionThreshold = 67

const moderateThreshold = 34

type CategoryScore struct {
	CategoryName string `json:"category_name"`
	Score        int    `json:"score"`
}

type BiasAnalysis struct {
	OverallSEEVScore  int             `json:"overall_seev_score"`
	Title             string          `json:"title"`
	BiasBreakdown     []CategoryScore `json:"bias_breakdown"`
	BiasType          BiasType        `json:"bias_type"`
	AnalysisSummary   string          `json:"analysis_summary"`
	DetectedBiasCount int             `json:"detected_bias_count"`
}

type BiasRewrite struct {
	BiasFreeText string `json:"bias_free_text"`
}

// BiasTypeFromScore maps an overall score onto the three-level
// classification: [67,100] Low, [34,66] Moderate, [0,33] High.
func BiasTypeFromScore(score int) BiasType {
	switch {
	case score >= DetectionThreshold:
		return BiasTypeLow
	case score >= moderateThreshold:
		return BiasTypeModerate
	default:
		return BiasTypeHigh
	}
}

// DetectedBiasCount counts categories scoring below the detection
// threshold. It runs over the unfiltered category list, before zero-score
// entries are dropped from the breakdown.
func DetectedBiasCount(categories []CategoryScore) int {
	count := 0
	for _, c := range categories {
		if c.Score < DetectionThreshold {
			count++
		}
	}
	return count
}

// FormatBreakdown drops zero-score entries and preserves the order the
// model returned. The model decides which categories are relevant; the
// shaper only filters out "not detected".
func FormatBreakdown(categories []CategoryScore) []CategoryScore {
	breakdown := make([]CategoryScore, 0, len(categories))
	for _, c := range categories {
		if c.Score > 0 {
			breakdown = append(breakdown, c)
		}
	}
	return breakdown
}

// ClampScore forces a score into [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
