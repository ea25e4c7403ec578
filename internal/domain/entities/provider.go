package entities

import "strings"

// Provider identifies a summarization/chat back-end
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// DefaultProvider is used when no provider was selected or recorded
const DefaultProvider = ProviderGemini

// Providers lists every known back-end in display order
var Providers = []Provider{ProviderGemini, ProviderOpenAI}

// ParseProvider maps a user-supplied key onto a known provider.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseProvider(key string) (Provider, bool) {
	switch Provider(strings.ToLower(strings.TrimSpace(key))) {
	case ProviderGemini:
		return ProviderGemini, true
	case ProviderOpenAI:
		return ProviderOpenAI, true
	}
	return "", false
}

// String returns the storage/wire form of the provider
func (p Provider) String() string {
	return string(p)
}
