package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fundsignal/internal/domain"
	"fundsignal/internal/logger"
	"fundsignal/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyzeRequest struct {
	Tickers []string `json:"tickers"`
	EndDate string   `json:"endDate"`
	Model   *string  `json:"model"`
}

func (m ApiHandler) analyze(c *gin.Context) {
	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)
	ctx = context.WithValue(ctx, logger.ContextKey, logger.FromContext(c))

	var requestBody AnalyzeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if len(requestBody.Tickers) == 0 {
		returnErrorJsonCode(fmt.Errorf("no tickers provided"), c, 400)
		return
	}

	endDate := time.Now().UTC()
	if requestBody.EndDate != "" {
		parsed, err := time.Parse(time.DateOnly, requestBody.EndDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid endDate: %w", err), c, 400)
			return
		}
		endDate = parsed
	}

	model := ""
	if requestBody.Model != nil {
		model = *requestBody.Model
	}

	analyses, err := m.SignalAnalysisService.Analyze(ctx, service.SignalAnalysisRequest{
		Tickers: requestBody.Tickers,
		EndDate: endDate,
		Model:   model,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	endProfile()
	if spans, err := profile.ToJsonBytes(); err == nil {
		logger.FromContext(c).Infow("analysis profile",
			"spans", json.RawMessage(spans),
			"totalMs", *profile.TotalMs,
		)
	}

	c.JSON(200, analyses)
}
