package domain

import "fmt"

// ModelProvider enumerates the cloud providers the model catalog knows about.
// Locally probed models (Ollama) are outside this enum on purpose: they are
// discovered live, never gated on a credential.
type ModelProvider string

const (
	ProviderOpenAI      ModelProvider = "OpenAI"
	ProviderAnthropic   ModelProvider = "Anthropic"
	ProviderGoogle      ModelProvider = "Google"
	ProviderGroq        ModelProvider = "Groq"
	ProviderXAI         ModelProvider = "xAI"
	ProviderDeepSeek    ModelProvider = "DeepSeek"
	ProviderGigaChat    ModelProvider = "GigaChat"
	ProviderOpenRouter  ModelProvider = "OpenRouter"
	ProviderAzureOpenAI ModelProvider = "Azure OpenAI"
)

var allProviders = []ModelProvider{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderGoogle,
	ProviderGroq,
	ProviderXAI,
	ProviderDeepSeek,
	ProviderGigaChat,
	ProviderOpenRouter,
	ProviderAzureOpenAI,
}

// providerCredentialNames maps each provider to the credential identifier the
// key store uses for it. A provider missing from this table can never pass
// credential filtering.
var providerCredentialNames = map[ModelProvider]string{
	ProviderOpenAI:      "OPENAI_API_KEY",
	ProviderAnthropic:   "ANTHROPIC_API_KEY",
	ProviderGoogle:      "GOOGLE_API_KEY",
	ProviderGroq:        "GROQ_API_KEY",
	ProviderXAI:         "XAI_API_KEY",
	ProviderDeepSeek:    "DEEPSEEK_API_KEY",
	ProviderGigaChat:    "GIGACHAT_API_KEY",
	ProviderOpenRouter:  "OPENROUTER_API_KEY",
	ProviderAzureOpenAI: "AZURE_OPENAI_API_KEY",
}

// CredentialName returns the key-store identifier for the provider, and
// whether the provider participates in credential filtering at all.
func (p ModelProvider) CredentialName() (string, bool) {
	name, ok := providerCredentialNames[p]
	return name, ok
}

type ModelDescriptor struct {
	Provider    string `json:"provider"`
	DisplayName string `json:"display_name"`
	ModelName   string `json:"model_name"`
}

func init() {
	// every enumerated provider must have a credential mapping; catching a
	// gap here beats silently never listing that provider's models
	for _, p := range allProviders {
		if _, ok := providerCredentialNames[p]; !ok {
			panic(fmt.Sprintf("model provider %q has no credential mapping", p))
		}
	}
}
