package internal

import (
	"fundsignal/internal/domain"
)

const (
	roeWeight            = 3
	debtToEquityWeight   = 2
	revenueGrowthWeight  = 3
	earningsGrowthWeight = 2
)

// present treats nil and zero the same way: a provider that omits a ratio
// should not have the ticker punished as if it scored the worst tier.
func present(v *float64) bool {
	return v != nil && *v != 0
}

// ScoreCoreMetrics scores profitability and leverage off the latest snapshot.
// Each field only widens MaxAchievable when the provider actually reported it,
// which keeps the later normalization fair under missing data.
func ScoreCoreMetrics(metrics []domain.FinancialMetrics) domain.ScoreBreakdown {
	breakdown := domain.EmptyScoreBreakdown()
	if len(metrics) == 0 {
		return breakdown
	}
	latest := metrics[0]

	if present(latest.ReturnOnEquity) {
		roe := *latest.ReturnOnEquity
		switch {
		case roe > 0.15:
			breakdown.Achieved += 3
			breakdown.Reasons["roe"] = "excellent ROE (above 15%)"
		case roe > 0.10:
			breakdown.Achieved += 2
			breakdown.Reasons["roe"] = "good ROE (10-15%)"
		case roe > 0.05:
			breakdown.Achieved += 1
			breakdown.Reasons["roe"] = "moderate ROE (5-10%)"
		default:
			breakdown.Reasons["roe"] = "low ROE (below 5%)"
		}
		breakdown.MaxAchievable += roeWeight
	}

	if present(latest.DebtToEquity) {
		dte := *latest.DebtToEquity
		switch {
		case dte < 0.3:
			breakdown.Achieved += 2
			breakdown.Reasons["debt"] = "conservative debt level (D/E below 0.3)"
		case dte < 0.5:
			breakdown.Achieved += 1
			breakdown.Reasons["debt"] = "adequate debt level (D/E 0.3-0.5)"
		default:
			breakdown.Reasons["debt"] = "high debt level (D/E above 0.5)"
		}
		breakdown.MaxAchievable += debtToEquityWeight
	}

	return breakdown
}

// ScoreGrowthMetrics scores growth off the current snapshot, but only when a
// prior period exists to have grown from. With fewer than two snapshots the
// breakdown stays empty, which is a missing-data case rather than an error.
func ScoreGrowthMetrics(metrics []domain.FinancialMetrics) domain.ScoreBreakdown {
	breakdown := domain.EmptyScoreBreakdown()
	if len(metrics) < 2 {
		return breakdown
	}
	current := metrics[0]

	if present(current.RevenueGrowth) {
		growth := *current.RevenueGrowth
		switch {
		case growth > 0.20:
			breakdown.Achieved += 3
			breakdown.Reasons["revenue_growth"] = "strong revenue growth (above 20%)"
		case growth > 0.10:
			breakdown.Achieved += 2
			breakdown.Reasons["revenue_growth"] = "good revenue growth (10-20%)"
		case growth > 0.05:
			breakdown.Achieved += 1
			breakdown.Reasons["revenue_growth"] = "moderate revenue growth (5-10%)"
		default:
			breakdown.Reasons["revenue_growth"] = "low revenue growth (below 5%)"
		}
		breakdown.MaxAchievable += revenueGrowthWeight
	}

	if present(current.EarningsGrowth) {
		growth := *current.EarningsGrowth
		switch {
		case growth > 0.25:
			breakdown.Achieved += 2
			breakdown.Reasons["earnings_growth"] = "strong earnings growth (above 25%)"
		case growth > 0.15:
			breakdown.Achieved += 1
			breakdown.Reasons["earnings_growth"] = "good earnings growth (15-25%)"
		default:
			breakdown.Reasons["earnings_growth"] = "moderate earnings growth (below 15%)"
		}
		breakdown.MaxAchievable += earningsGrowthWeight
	}

	return breakdown
}

// ComprehensiveScore normalizes the two breakdowns into [0, 100]. When
// neither rubric had a scorable field the result is 0 by definition.
func ComprehensiveScore(core, growth domain.ScoreBreakdown) float64 {
	maxPossible := core.MaxAchievable + growth.MaxAchievable
	if maxPossible == 0 {
		return 0
	}
	return float64(core.Achieved+growth.Achieved) / float64(maxPossible) * 100
}
