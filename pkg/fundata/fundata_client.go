package fundata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"fundsignal/internal/logger"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const baseUrl = "https://api.financialdatasets.ai"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
}

type FinancialMetricsFields struct {
	Ticker          string   `json:"ticker"`
	ReportPeriod    string   `json:"report_period"`
	Period          string   `json:"period"`
	Currency        string   `json:"currency"`
	ReturnOnEquity  *float64 `json:"return_on_equity"`
	DebtToEquity    *float64 `json:"debt_to_equity"`
	RevenueGrowth   *float64 `json:"revenue_growth"`
	EarningsGrowth  *float64 `json:"earnings_growth"`
	OperatingMargin *float64 `json:"operating_margin"`
}

type FinancialMetricsResponse struct {
	FinancialMetrics []FinancialMetricsFields `json:"financial_metrics"`
}

type LineItemFields struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	ReportPeriod string  `json:"report_period"`
	Currency     string  `json:"currency"`
}

type LineItemSearchResponse struct {
	SearchResults []LineItemFields `json:"search_results"`
}

func (c Client) GetFinancialMetrics(ctx context.Context, ticker string, endDate time.Time, limit int) (*FinancialMetricsResponse, error) {
	query := url.Values{}
	query.Set("ticker", ticker)
	query.Set("report_period_lte", endDate.Format(time.DateOnly))
	query.Set("period", "ttm")
	query.Set("limit", strconv.Itoa(limit))

	responseJson := FinancialMetricsResponse{}
	err := c.do(ctx, http.MethodGet, "/financial-metrics?"+query.Encode(), nil, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to get financial metrics for %s: %w", ticker, err)
	}

	return &responseJson, nil
}

func (c Client) SearchLineItems(ctx context.Context, ticker string, lineItems []string, endDate time.Time) (*LineItemSearchResponse, error) {
	body := map[string]interface{}{
		"tickers":    []string{ticker},
		"line_items": lineItems,
		"end_date":   endDate.Format(time.DateOnly),
		"period":     "ttm",
	}

	responseJson := LineItemSearchResponse{}
	err := c.do(ctx, http.MethodPost, "/financials/search/line-items", body, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to search line items for %s: %w", ticker, err)
	}

	return &responseJson, nil
}

func (c Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseUrl+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-KEY", c.ApiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		logger.Debug("hit rate limit. sleeping...")
		time.Sleep(30 * time.Second)
		return c.do(ctx, method, path, body, out)
	} else if response.StatusCode != 200 {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	return json.Unmarshal(responseBytes, out)
}
