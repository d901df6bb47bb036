package service

import "fundsignal/internal/domain"

type catalogEntry struct {
	Provider    domain.ModelProvider
	DisplayName string
	ModelName   string
}

func (e catalogEntry) Descriptor() domain.ModelDescriptor {
	return domain.ModelDescriptor{
		Provider:    string(e.Provider),
		DisplayName: e.DisplayName,
		ModelName:   e.ModelName,
	}
}

// modelCatalog is the static cloud-model catalog, kept in release order per
// provider. Local models never appear here; they are probed live.
var modelCatalog = []catalogEntry{
	{domain.ProviderAnthropic, "[anthropic] claude haiku 3.5", "claude-3-5-haiku-latest"},
	{domain.ProviderAnthropic, "[anthropic] claude sonnet 4", "claude-sonnet-4-20250514"},
	{domain.ProviderAnthropic, "[anthropic] claude opus 4", "claude-opus-4-20250514"},
	{domain.ProviderDeepSeek, "[deepseek] deepseek r1", "deepseek-reasoner"},
	{domain.ProviderDeepSeek, "[deepseek] deepseek v3", "deepseek-chat"},
	{domain.ProviderGoogle, "[google] gemini 2.0 flash", "gemini-2.0-flash"},
	{domain.ProviderGoogle, "[google] gemini 2.5 pro", "gemini-2.5-pro"},
	{domain.ProviderGroq, "[groq] llama 4 scout (17b)", "meta-llama/llama-4-scout-17b-16e-instruct"},
	{domain.ProviderGroq, "[groq] llama 4 maverick (17b)", "meta-llama/llama-4-maverick-17b-128e-instruct"},
	{domain.ProviderOpenAI, "[openai] gpt 4o", "gpt-4o"},
	{domain.ProviderOpenAI, "[openai] gpt 4o mini", "gpt-4o-mini"},
	{domain.ProviderOpenAI, "[openai] o3", "o3"},
	{domain.ProviderOpenAI, "[openai] o4 mini", "o4-mini"},
	{domain.ProviderXAI, "[xai] grok 3", "grok-3"},
	{domain.ProviderXAI, "[xai] grok 3 mini", "grok-3-mini"},
	{domain.ProviderGigaChat, "[gigachat] gigachat 2 max", "GigaChat-2-Max"},
	{domain.ProviderOpenRouter, "[openrouter] gpt 4o", "openai/gpt-4o"},
	{domain.ProviderAzureOpenAI, "[azure] gpt 4o", "azure-gpt-4o"},
}
