package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Profile(t *testing.T) {
	t.Run("spans marshal with their subspans", func(t *testing.T) {
		profile, endProfile := NewProfile()

		scoring, endScoring := profile.StartNewSpan("scoring tickers")
		sub, endSub := NewSpan("AAPL")
		endSub()
		scoring.AttachSubSpan(sub)
		endScoring()

		_, endReview := profile.StartNewSpan("llm review")
		endReview()
		endProfile()

		require.NotNil(t, profile.TotalMs)

		bytes, err := profile.ToJsonBytes()
		require.NoError(t, err)
		require.Contains(t, string(bytes), `"scoring tickers"`)
		require.Contains(t, string(bytes), `"AAPL"`)
		require.Contains(t, string(bytes), `"llm review"`)
	})

	t.Run("starting a span ends the previous one", func(t *testing.T) {
		profile, _ := NewProfile()

		first, _ := profile.StartNewSpan("first")
		profile.StartNewSpan("second")

		require.NotNil(t, first.Elapsed)
	})

	t.Run("ending twice keeps the first measurement", func(t *testing.T) {
		span, endSpan := NewSpan("once")
		endSpan()
		elapsed := span.Elapsed
		endSpan()

		require.Same(t, elapsed, span.Elapsed)
	})

	t.Run("missing profile on context yields a usable one", func(t *testing.T) {
		profile, endProfile := GetProfile(context.Background())
		require.NotNil(t, profile)

		endProfile()
		require.NotNil(t, profile.TotalMs)
	})
}
