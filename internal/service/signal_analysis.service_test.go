package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fundsignal/internal/domain"
	mock_repository "fundsignal/internal/repository/mocks"
	"fundsignal/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fPtr(f float64) *float64 {
	return &f
}

func testEndDate() time.Time {
	return util.NewDate(2025, 6, 30)
}

func expectFundamentals(m *mock_repository.MockFundamentalsRepository, ticker string, metrics []domain.FinancialMetrics) {
	m.EXPECT().
		GetFinancialMetrics(gomock.Any(), ticker, testEndDate(), metricsHistoryLimit).
		Return(metrics, nil)
	m.EXPECT().
		SearchLineItems(gomock.Any(), ticker, domain.CanonicalLineItems, testEndDate()).
		Return([]domain.LineItem{}, nil)
	m.EXPECT().
		GetMarketCap(gomock.Any(), ticker, testEndDate()).
		Return(domain.MarketCap{
			Ticker: ticker,
			Value:  decimal.NewFromInt(1_000_000_000),
			Date:   testEndDate(),
		}, nil)
}

func Test_signalAnalysisServiceHandler_Analyze(t *testing.T) {
	t.Run("single strong ticker scores 100 and review replaces the signal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := signalAnalysisServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			GptRepository:          gptRepository,
			ProgressService:        NewProgressService(),
		}

		expectFundamentals(fundamentalsRepository, "AAPL", []domain.FinancialMetrics{
			{
				Ticker:         "AAPL",
				ReturnOnEquity: fPtr(0.18),
				DebtToEquity:   fPtr(0.25),
			},
		})

		gptRepository.EXPECT().
			ReviewSignals(gomock.Any(), "", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, analyses map[string]domain.TickerAnalysis) (map[string]domain.Signal, error) {
				// the deterministic baseline must already be final-shaped
				require.Equal(t, domain.SignalBullish, analyses["AAPL"].Kind)
				require.Equal(t, float64(100), analyses["AAPL"].Confidence)
				require.Equal(t, 5, analyses["AAPL"].Details.CoreScore)
				require.Equal(t, 0, analyses["AAPL"].Details.AdvancedScore)
				require.Equal(t, float64(100), analyses["AAPL"].Details.ComprehensiveScore)

				return map[string]domain.Signal{
					"AAPL": {
						Kind:       domain.SignalNeutral,
						Confidence: 55,
						Reasoning:  "reviewer disagrees",
					},
				}, nil
			})

		out, err := handler.Analyze(context.Background(), SignalAnalysisRequest{
			Tickers: []string{"AAPL"},
			EndDate: testEndDate(),
		})
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			map[string]domain.TickerAnalysis{
				"AAPL": {
					Signal: domain.Signal{
						Kind:       domain.SignalNeutral,
						Confidence: 55,
						Reasoning:  "reviewer disagrees",
					},
					Details: domain.AnalysisDetails{
						CoreScore:          5,
						AdvancedScore:      0,
						ComprehensiveScore: 100,
					},
				},
			},
			out,
		))
	})

	t.Run("review failure falls back to deterministic signals unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := signalAnalysisServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			GptRepository:          gptRepository,
			ProgressService:        NewProgressService(),
		}

		expectFundamentals(fundamentalsRepository, "MSFT", []domain.FinancialMetrics{
			{
				Ticker:         "MSFT",
				ReturnOnEquity: fPtr(0.12),
				DebtToEquity:   fPtr(0.4),
				RevenueGrowth:  fPtr(0.15),
			},
			{Ticker: "MSFT"},
		})

		var deterministic map[string]domain.TickerAnalysis
		gptRepository.EXPECT().
			ReviewSignals(gomock.Any(), "", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, analyses map[string]domain.TickerAnalysis) (map[string]domain.Signal, error) {
				deterministic = analyses
				return nil, fmt.Errorf("review call failed: connection reset")
			})

		out, err := handler.Analyze(context.Background(), SignalAnalysisRequest{
			Tickers: []string{"MSFT"},
			EndDate: testEndDate(),
		})
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(deterministic, out))
	})

	t.Run("requested model is forwarded to the reviewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := signalAnalysisServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			GptRepository:          gptRepository,
			ProgressService:        NewProgressService(),
		}

		expectFundamentals(fundamentalsRepository, "GOOG", []domain.FinancialMetrics{{Ticker: "GOOG"}})

		gptRepository.EXPECT().
			ReviewSignals(gomock.Any(), "gpt-4o", gomock.Any()).
			Return(nil, fmt.Errorf("nope"))

		_, err := handler.Analyze(context.Background(), SignalAnalysisRequest{
			Tickers: []string{"GOOG"},
			EndDate: testEndDate(),
			Model:   "gpt-4o",
		})
		require.NoError(t, err)
	})

	t.Run("no scorable fields yields bearish baseline at score zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := signalAnalysisServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			GptRepository:          gptRepository,
			ProgressService:        NewProgressService(),
		}

		expectFundamentals(fundamentalsRepository, "EMPT", []domain.FinancialMetrics{{Ticker: "EMPT"}})

		gptRepository.EXPECT().
			ReviewSignals(gomock.Any(), "", gomock.Any()).
			Return(nil, fmt.Errorf("nope"))

		out, err := handler.Analyze(context.Background(), SignalAnalysisRequest{
			Tickers: []string{"EMPT"},
			EndDate: testEndDate(),
		})
		require.NoError(t, err)

		require.Equal(t, domain.SignalBearish, out["EMPT"].Kind)
		require.Equal(t, float64(100), out["EMPT"].Confidence)
		require.Equal(t, float64(0), out["EMPT"].Details.ComprehensiveScore)
	})

	t.Run("cancelled context aborts the batch without hanging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := signalAnalysisServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			GptRepository:          gptRepository,
			ProgressService:        NewProgressService(),
		}

		// workers may race a ticker or two through before observing
		// cancellation; every fetch they attempt fails with the ctx error
		fundamentalsRepository.EXPECT().
			GetFinancialMetrics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, context.Canceled).
			AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		tickers := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
		_, err := handler.Analyze(ctx, SignalAnalysisRequest{
			Tickers: tickers,
			EndDate: testEndDate(),
		})
		require.Error(t, err)
	})

	t.Run("data provider failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)

		handler := signalAnalysisServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			GptRepository:          gptRepository,
			ProgressService:        NewProgressService(),
		}

		fundamentalsRepository.EXPECT().
			GetFinancialMetrics(gomock.Any(), "AAPL", testEndDate(), metricsHistoryLimit).
			Return(nil, fmt.Errorf("provider unavailable"))

		_, err := handler.Analyze(context.Background(), SignalAnalysisRequest{
			Tickers: []string{"AAPL"},
			EndDate: testEndDate(),
		})
		require.ErrorContains(t, err, "provider unavailable")
	})

	t.Run("empty ticker list rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := signalAnalysisServiceHandler{
			FundamentalsRepository: mock_repository.NewMockFundamentalsRepository(ctrl),
			GptRepository:          mock_repository.NewMockGptRepository(ctrl),
			ProgressService:        NewProgressService(),
		}

		_, err := handler.Analyze(context.Background(), SignalAnalysisRequest{})
		require.Error(t, err)
	})
}
