package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialMetrics is one point-in-time set of fundamental ratios for a
// ticker. Providers return these ordered most-recent-first, so index 0 is the
// current period and index 1 the prior one. Ratio pointers are nil when the
// provider omitted the field.
type FinancialMetrics struct {
	Ticker          string    `json:"ticker"`
	ReportPeriod    time.Time `json:"report_period"`
	Period          string    `json:"period"`
	Currency        string    `json:"currency"`
	ReturnOnEquity  *float64  `json:"return_on_equity"`
	DebtToEquity    *float64  `json:"debt_to_equity"`
	RevenueGrowth   *float64  `json:"revenue_growth"`
	EarningsGrowth  *float64  `json:"earnings_growth"`
	OperatingMargin *float64  `json:"operating_margin"`
}

// LineItem is a single reported line-item value (revenue, net income, etc).
type LineItem struct {
	Ticker       string    `json:"ticker"`
	Name         string    `json:"name"`
	Value        float64   `json:"value"`
	ReportPeriod time.Time `json:"report_period"`
	Currency     string    `json:"currency"`
}

// CanonicalLineItems are the fields requested alongside every metrics fetch.
var CanonicalLineItems = []string{
	"revenue",
	"net_income",
	"total_assets",
	"total_debt",
	"free_cash_flow",
}

type MarketCap struct {
	Ticker string          `json:"ticker"`
	Value  decimal.Decimal `json:"value"`
	Date   time.Time       `json:"date"`
}
