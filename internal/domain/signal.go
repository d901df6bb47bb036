package domain

type SignalKind string

const (
	SignalBullish SignalKind = "bullish"
	SignalBearish SignalKind = "bearish"
	SignalNeutral SignalKind = "neutral"
)

func (s SignalKind) Valid() bool {
	switch s {
	case SignalBullish, SignalBearish, SignalNeutral:
		return true
	}
	return false
}

// ScoreBreakdown is the output of one rubric pass. Achieved never exceeds
// MaxAchievable; a field the provider omitted contributes to neither and
// leaves no entry in Reasons.
type ScoreBreakdown struct {
	Achieved      int               `json:"achieved"`
	MaxAchievable int               `json:"max_achievable"`
	Reasons       map[string]string `json:"reasons"`
}

func EmptyScoreBreakdown() ScoreBreakdown {
	return ScoreBreakdown{Reasons: map[string]string{}}
}

type Signal struct {
	Kind       SignalKind `json:"signal"`
	Confidence float64    `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
}

type AnalysisDetails struct {
	CoreScore          int     `json:"core_score"`
	AdvancedScore      int     `json:"advanced_score"`
	ComprehensiveScore float64 `json:"comprehensive_score"`
}

// TickerAnalysis is the per-ticker pipeline output: the (possibly
// LLM-reviewed) signal plus the deterministic scores that produced it.
type TickerAnalysis struct {
	Signal
	Details AnalysisDetails `json:"analysis_details"`
}
