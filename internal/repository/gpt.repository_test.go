package repository

import (
	"testing"

	"fundsignal/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_BuildReviewPrompt(t *testing.T) {
	prompt, err := BuildReviewPrompt(map[string]domain.TickerAnalysis{
		"AAPL": {
			Signal: domain.Signal{
				Kind:       domain.SignalBullish,
				Confidence: 100,
				Reasoning:  "comprehensive score 100.0%: very strong investment candidate",
			},
			Details: domain.AnalysisDetails{
				CoreScore:          5,
				AdvancedScore:      0,
				ComprehensiveScore: 100,
			},
		},
	})
	require.NoError(t, err)

	require.Contains(t, prompt, "Review the following analysis results")
	require.Contains(t, prompt, `"AAPL"`)
	require.Contains(t, prompt, `"signal": "bullish"`)
	require.Contains(t, prompt, `"core_score": 5`)
}

func Test_ParseReviewedSignals(t *testing.T) {
	t.Run("well formed response", func(t *testing.T) {
		out, err := ParseReviewedSignals(`{
			"AAPL": {"signal": "bullish", "confidence": 85, "reasoning": "strong fundamentals"},
			"MSFT": {"signal": "neutral", "confidence": 50, "reasoning": "mixed picture"}
		}`)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(map[string]domain.Signal{
			"AAPL": {Kind: domain.SignalBullish, Confidence: 85, Reasoning: "strong fundamentals"},
			"MSFT": {Kind: domain.SignalNeutral, Confidence: 50, Reasoning: "mixed picture"},
		}, out))
	})

	t.Run("non json reply", func(t *testing.T) {
		_, err := ParseReviewedSignals("Sure! Here are my thoughts on the tickers:")
		require.ErrorContains(t, err, "failed to parse review response")
	})

	t.Run("unknown signal value", func(t *testing.T) {
		_, err := ParseReviewedSignals(`{"AAPL": {"signal": "hold", "confidence": 50, "reasoning": "x"}}`)
		require.ErrorContains(t, err, "invalid signal")
	})

	t.Run("confidence out of range", func(t *testing.T) {
		_, err := ParseReviewedSignals(`{"AAPL": {"signal": "bullish", "confidence": 120, "reasoning": "x"}}`)
		require.ErrorContains(t, err, "out of range confidence")
	})
}
