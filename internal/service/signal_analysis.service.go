package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fundsignal/internal"
	"fundsignal/internal/domain"
	"fundsignal/internal/logger"
	"fundsignal/internal/repository"
)

const agentID = "fundamental_signal"

// metricsHistoryLimit is how many trailing periods we request; the rubric
// reads at most two but the extra history is cheap and useful in responses.
const metricsHistoryLimit = 5

type SignalAnalysisRequest struct {
	Tickers []string
	EndDate time.Time
	// Model optionally names the review model; empty uses the configured
	// default.
	Model string
}

// SignalAnalysisService runs the full pipeline: fetch fundamentals per
// ticker, score them deterministically, then have the review model adjudicate
// the whole batch in one call. The deterministic result is the baseline the
// review can never take away.
type SignalAnalysisService interface {
	Analyze(ctx context.Context, req SignalAnalysisRequest) (map[string]domain.TickerAnalysis, error)
}

type signalAnalysisServiceHandler struct {
	FundamentalsRepository repository.FundamentalsRepository
	GptRepository          repository.GptRepository
	ProgressService        ProgressService
}

func NewSignalAnalysisService(
	fundamentalsRepository repository.FundamentalsRepository,
	gptRepository repository.GptRepository,
	progressService ProgressService,
) SignalAnalysisService {
	return signalAnalysisServiceHandler{
		FundamentalsRepository: fundamentalsRepository,
		GptRepository:          gptRepository,
		ProgressService:        progressService,
	}
}

type tickerWorkResult struct {
	Ticker   string
	Analysis domain.TickerAnalysis
	Span     *domain.Span
	Err      error
}

func (h signalAnalysisServiceHandler) Analyze(ctx context.Context, req SignalAnalysisRequest) (map[string]domain.TickerAnalysis, error) {
	if len(req.Tickers) == 0 {
		return nil, fmt.Errorf("cannot analyze 0 tickers")
	}

	profile, _ := domain.GetProfile(ctx)
	scoringSpan, endScoringSpan := profile.StartNewSpan("scoring tickers")

	inputCh := make(chan string, len(req.Tickers))
	resultCh := make(chan tickerWorkResult, len(req.Tickers))
	var wg sync.WaitGroup
	for _, ticker := range req.Tickers {
		wg.Add(1)
		inputCh <- ticker
	}
	close(inputCh)

	numGoroutines := 5
	if len(req.Tickers) < numGoroutines {
		numGoroutines = len(req.Tickers)
	}
	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// unprocessed tickers still hold wg slots; release
					// them so the collector can finish and close resultCh
					for range inputCh {
						wg.Done()
					}
					return
				case ticker, ok := <-inputCh:
					if !ok {
						return
					}
					span, endSpan := domain.NewSpan(ticker)
					analysis, err := h.analyzeTicker(ctx, ticker, req.EndDate)
					endSpan()
					resultCh <- tickerWorkResult{
						Ticker:   ticker,
						Analysis: analysis,
						Span:     span,
						Err:      err,
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	analyses := map[string]domain.TickerAnalysis{}
	for res := range resultCh {
		scoringSpan.AttachSubSpan(res.Span)
		if res.Err != nil {
			// data-provider failures have no fallback at this layer
			return nil, fmt.Errorf("failed to analyze %s: %w", res.Ticker, res.Err)
		}
		analyses[res.Ticker] = res.Analysis
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	endScoringSpan()

	_, endReviewSpan := profile.StartNewSpan("llm review")
	defer endReviewSpan()

	return h.reviewSignals(ctx, req.Model, analyses), nil
}

func (h signalAnalysisServiceHandler) analyzeTicker(ctx context.Context, ticker string, endDate time.Time) (domain.TickerAnalysis, error) {
	h.ProgressService.Update(agentID, ticker, "fetching financial data")

	metrics, err := h.FundamentalsRepository.GetFinancialMetrics(ctx, ticker, endDate, metricsHistoryLimit)
	if err != nil {
		return domain.TickerAnalysis{}, err
	}

	// fetched alongside metrics; the rubric only availability-checks these
	_, err = h.FundamentalsRepository.SearchLineItems(ctx, ticker, domain.CanonicalLineItems, endDate)
	if err != nil {
		return domain.TickerAnalysis{}, err
	}

	marketCap, err := h.FundamentalsRepository.GetMarketCap(ctx, ticker, endDate)
	if err != nil {
		return domain.TickerAnalysis{}, err
	}

	h.ProgressService.Update(agentID, ticker, "analyzing core metrics")
	core := internal.ScoreCoreMetrics(metrics)

	h.ProgressService.Update(agentID, ticker, "running advanced analysis")
	growth := internal.ScoreGrowthMetrics(metrics)

	h.ProgressService.Update(agentID, ticker, "combining scores")
	comprehensive := internal.ComprehensiveScore(core, growth)
	signal := internal.ClassifySignal(comprehensive, marketCap.Value)

	h.ProgressService.Update(agentID, ticker, "done")

	return domain.TickerAnalysis{
		Signal: signal,
		Details: domain.AnalysisDetails{
			CoreScore:          core.Achieved,
			AdvancedScore:      growth.Achieved,
			ComprehensiveScore: comprehensive,
		},
	}, nil
}

// reviewSignals sends the whole batch to the review model exactly once. Any
// failure - transport or malformed response - falls back to the deterministic
// signals unchanged; the review is a second opinion, never a gate.
func (h signalAnalysisServiceHandler) reviewSignals(ctx context.Context, model string, analyses map[string]domain.TickerAnalysis) map[string]domain.TickerAnalysis {
	for ticker := range analyses {
		h.ProgressService.Update(agentID, ticker, "awaiting signal review")
	}

	reviewed, err := h.GptRepository.ReviewSignals(ctx, model, analyses)
	if err != nil {
		logger.FromContext(ctx).Warnf("signal review failed, keeping deterministic signals: %v", err)
		for ticker := range analyses {
			h.ProgressService.Update(agentID, ticker, "review skipped")
		}
		return analyses
	}

	// the reviewed mapping replaces the signal set wholesale; the
	// deterministic scores ride along as metadata
	out := make(map[string]domain.TickerAnalysis, len(reviewed))
	for ticker, signal := range reviewed {
		out[ticker] = domain.TickerAnalysis{
			Signal:  signal,
			Details: analyses[ticker].Details,
		}
		h.ProgressService.Update(agentID, ticker, "review complete")
	}

	return out
}
