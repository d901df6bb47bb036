package internal

import (
	"testing"

	"fundsignal/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ClassifySignal(t *testing.T) {
	mc := decimal.NewFromInt(1_000_000_000)

	t.Run("80 and above is strongly bullish", func(t *testing.T) {
		for _, score := range []float64{80, 92.5, 100} {
			out := ClassifySignal(score, mc)
			require.Equal(t, domain.SignalBullish, out.Kind)
			require.Equal(t, score, out.Confidence)
			require.Contains(t, out.Reasoning, "very strong investment candidate")
		}
	})

	t.Run("60 to 80 is bullish", func(t *testing.T) {
		for _, score := range []float64{60, 70, 79.999} {
			out := ClassifySignal(score, mc)
			require.Equal(t, domain.SignalBullish, out.Kind)
			require.Equal(t, score, out.Confidence)
			require.Contains(t, out.Reasoning, "good investment candidate")
		}
	})

	t.Run("40 to 60 is neutral with fixed confidence", func(t *testing.T) {
		for _, score := range []float64{40, 50, 59.999} {
			out := ClassifySignal(score, mc)
			require.Equal(t, domain.SignalNeutral, out.Kind)
			require.Equal(t, float64(50), out.Confidence)
		}
	})

	t.Run("below 40 is bearish with inverted confidence", func(t *testing.T) {
		for _, score := range []float64{0, 25, 39.999} {
			out := ClassifySignal(score, mc)
			require.Equal(t, domain.SignalBearish, out.Kind)
			require.Equal(t, 100-score, out.Confidence)
			require.Contains(t, out.Reasoning, "caution warranted")
		}
	})

	t.Run("market cap does not alter classification", func(t *testing.T) {
		a := ClassifySignal(75, decimal.Zero)
		b := ClassifySignal(75, decimal.NewFromInt(3_000_000_000_000))
		require.Equal(t, a, b)
	})
}
