// Package enhance sends a user's prompt to a hosted text-generation model and
// returns the model's rewritten ("enhanced") version of it.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrEnhancement is wrapped by every error a Client returns. Transport,
// authentication and response failures are not distinguished.
var ErrEnhancement = errors.New("failed to enhance prompt")

// InstructionTemplate wraps the user's prompt verbatim
const InstructionTemplate = "Enhance the following prompt to make it more detailed and effective: \"%s\""

// Provider names
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// Default models per provider
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Default endpoints, used when Config.BaseURL is empty
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1/"
)

// Client enhances a prompt with one request to a hosted model.
// Callers validate the prompt; clients never re-validate or trim it.
type Client interface {
	Name() string
	Enhance(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures a provider. Key, model and endpoint are
// always handed to the SDKs explicitly, so SDK variables such as
// OPENAI_BASE_URL or GOOGLE_GEMINI_BASE_URL cannot redirect a request.
// The OpenAI SDK still adds organization and project headers from
// OPENAI_ORG_ID and OPENAI_PROJECT_ID.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint (proxies, tests)
	BaseURL string
	// HTTPClient overrides the transport; nil uses the provider default
	HTTPClient *http.Client
}

// BuildInstruction returns the single instruction sent to the model
func BuildInstruction(prompt string) string {
	return fmt.Sprintf(InstructionTemplate, prompt)
}

// New creates the client for cfg.Provider. A missing API key is not an
// error here: it surfaces as ErrEnhancement on the first Enhance call.
func New(cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case ProviderMock:
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (available: %s, %s, %s)",
			cfg.Provider, ProviderGemini, ProviderOpenAI, ProviderMock)
	}
}

// wrap attaches ErrEnhancement to a provider failure
func wrap(provider, op string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrEnhancement, provider, op, err)
}
