package repository

import (
	"context"
	"fmt"
	"time"

	"fundsignal/internal/domain"
	"fundsignal/internal/util"
	"fundsignal/pkg/fundata"

	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
)

// FundamentalsRepository is the boundary to the financial data provider.
// Failures here propagate to the caller; the pipeline has no fallback for
// missing market data, only for the review step.
type FundamentalsRepository interface {
	GetFinancialMetrics(ctx context.Context, ticker string, endDate time.Time, limit int) ([]domain.FinancialMetrics, error)
	SearchLineItems(ctx context.Context, ticker string, lineItems []string, endDate time.Time) ([]domain.LineItem, error)
	GetMarketCap(ctx context.Context, ticker string, endDate time.Time) (domain.MarketCap, error)
}

type fundamentalsRepositoryHandler struct {
	Client fundata.Client
}

func NewFundamentalsRepository(client fundata.Client) FundamentalsRepository {
	return fundamentalsRepositoryHandler{
		Client: client,
	}
}

func (h fundamentalsRepositoryHandler) GetFinancialMetrics(ctx context.Context, ticker string, endDate time.Time, limit int) ([]domain.FinancialMetrics, error) {
	response, err := h.Client.GetFinancialMetrics(ctx, ticker, endDate, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FinancialMetrics, 0, len(response.FinancialMetrics))
	for _, fields := range response.FinancialMetrics {
		reportPeriod, err := time.Parse(time.DateOnly, fields.ReportPeriod)
		if err != nil {
			return nil, fmt.Errorf("failed to parse report period %q for %s: %w", fields.ReportPeriod, ticker, err)
		}
		// the provider filters on report_period_lte; skip anything newer
		if !util.DateLte(reportPeriod, endDate) {
			continue
		}
		out = append(out, domain.FinancialMetrics{
			Ticker:          fields.Ticker,
			ReportPeriod:    reportPeriod,
			Period:          fields.Period,
			Currency:        fields.Currency,
			ReturnOnEquity:  fields.ReturnOnEquity,
			DebtToEquity:    fields.DebtToEquity,
			RevenueGrowth:   fields.RevenueGrowth,
			EarningsGrowth:  fields.EarningsGrowth,
			OperatingMargin: fields.OperatingMargin,
		})
	}

	return out, nil
}

func (h fundamentalsRepositoryHandler) SearchLineItems(ctx context.Context, ticker string, lineItems []string, endDate time.Time) ([]domain.LineItem, error) {
	response, err := h.Client.SearchLineItems(ctx, ticker, lineItems, endDate)
	if err != nil {
		return nil, err
	}

	out := make([]domain.LineItem, 0, len(response.SearchResults))
	for _, fields := range response.SearchResults {
		reportPeriod, err := time.Parse(time.DateOnly, fields.ReportPeriod)
		if err != nil {
			return nil, fmt.Errorf("failed to parse report period %q for %s: %w", fields.ReportPeriod, ticker, err)
		}
		out = append(out, domain.LineItem{
			Ticker:       fields.Ticker,
			Name:         fields.Name,
			Value:        fields.Value,
			ReportPeriod: reportPeriod,
			Currency:     fields.Currency,
		})
	}

	return out, nil
}

// GetMarketCap returns the market cap from the current quote. The quote
// provider has no as-of-date lookup, so endDate only stamps the result and
// the value is always today's; nothing downstream classifies on it. ctx is
// unused for the same reason: the quote client offers no context-aware call.
func (h fundamentalsRepositoryHandler) GetMarketCap(ctx context.Context, ticker string, endDate time.Time) (domain.MarketCap, error) {
	q, err := equity.Get(ticker)
	if err != nil {
		return domain.MarketCap{}, fmt.Errorf("failed to get market cap for %s: %w", ticker, err)
	}
	if q == nil {
		return domain.MarketCap{}, fmt.Errorf("no quote returned for %s", ticker)
	}

	return domain.MarketCap{
		Ticker: ticker,
		Value:  decimal.NewFromInt(q.MarketCap),
		Date:   endDate,
	}, nil
}
