package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_progressServiceHandler(t *testing.T) {
	t.Run("latest update per ticker wins", func(t *testing.T) {
		progress := NewProgressService()

		progress.Update("fundamental_signal", "AAPL", "fetching financial data")
		progress.Update("fundamental_signal", "AAPL", "analyzing core metrics")
		progress.Update("fundamental_signal", "AAPL", "done")

		status, ok := progress.Status("AAPL")
		require.True(t, ok)
		require.Equal(t, "done", status)
	})

	t.Run("tickerless updates key by agent", func(t *testing.T) {
		progress := NewProgressService()

		progress.Update("fundamental_signal", "", "warming up")

		status, ok := progress.Status("fundamental_signal")
		require.True(t, ok)
		require.Equal(t, "warming up", status)

		_, ok = progress.Status("AAPL")
		require.False(t, ok)
	})

	t.Run("snapshot is detached from later updates", func(t *testing.T) {
		progress := NewProgressService()

		progress.Update("fundamental_signal", "MSFT", "fetching financial data")
		snapshot := progress.Snapshot()
		progress.Update("fundamental_signal", "MSFT", "done")

		require.Equal(t, "fetching financial data", snapshot["MSFT"])
	})

	t.Run("concurrent updates across tickers", func(t *testing.T) {
		progress := NewProgressService()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ticker := fmt.Sprintf("TICK%d", i)
				progress.Update("fundamental_signal", ticker, "fetching financial data")
				progress.Update("fundamental_signal", ticker, "done")
			}(i)
		}
		wg.Wait()

		snapshot := progress.Snapshot()
		require.Len(t, snapshot, 50)
		for _, status := range snapshot {
			require.Equal(t, "done", status)
		}
	})
}
