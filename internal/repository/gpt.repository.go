package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fundsignal/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

// GptRepository reviews a batch of deterministic signals in one structured
// exchange. It either returns a full replacement mapping or an error; it
// never retries, and it never partially merges.
type GptRepository interface {
	ReviewSignals(ctx context.Context, model string, analyses map[string]domain.TickerAnalysis) (map[string]domain.Signal, error)
}

type gptRepositoryHandler struct {
	GptClient    *chatgpt.Client
	DefaultModel string
}

func NewGptRepository(apiKey string, defaultModel string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient:    client,
		DefaultModel: defaultModel,
	}, nil
}

const reviewSystemPrompt = `You are an investment analysis expert reviewing the output of a quantitative screening pipeline.

You will receive, per ticker, a deterministic signal with its confidence, reasoning, and the underlying scores (core, advanced, comprehensive).

For each ticker decide:
1. the final signal (bullish/bearish/neutral)
2. a confidence between 0 and 100
3. a concise reasoning

Respond with strict JSON only, no surrounding text, shaped as:
{
  "TICKER": {
    "signal": "bullish|bearish|neutral",
    "confidence": 0,
    "reasoning": "..."
  }
}`

// BuildReviewPrompt serializes the deterministic analyses into the user
// message for the review call. Pure function of its input, independent of the
// transport.
func BuildReviewPrompt(analyses map[string]domain.TickerAnalysis) (string, error) {
	analysisJson, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize analyses for review: %w", err)
	}

	return fmt.Sprintf("Review the following analysis results and decide the final signal for each ticker.\n\n%s", string(analysisJson)), nil
}

func (h gptRepositoryHandler) ReviewSignals(ctx context.Context, model string, analyses map[string]domain.TickerAnalysis) (map[string]domain.Signal, error) {
	userPrompt, err := BuildReviewPrompt(analyses)
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = h.DefaultModel
	}

	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.ChatGPTModel(model),
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: reviewSystemPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: userPrompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("review call failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("review call returned no choices")
	}

	return ParseReviewedSignals(response.Choices[0].Message.Content)
}

// ParseReviewedSignals decodes the model's reply. Anything other than the
// exact expected shape is an error so the caller can fall back to the
// deterministic signals.
func ParseReviewedSignals(content string) (map[string]domain.Signal, error) {
	parsed := map[string]domain.Signal{}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse review response: %w", err)
	}

	for ticker, signal := range parsed {
		if !signal.Kind.Valid() {
			return nil, fmt.Errorf("review response for %s has invalid signal %q", ticker, signal.Kind)
		}
		if signal.Confidence < 0 || signal.Confidence > 100 {
			return nil, fmt.Errorf("review response for %s has out of range confidence %f", ticker, signal.Confidence)
		}
	}

	return parsed, nil
}
