package enhance

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

var errMissingAPIKey = errors.New("API key is not configured")

// GeminiClient talks to the Gemini API through the official genai SDK.
// The SDK client is created on first use so that configuration problems
// are reported through Enhance like any other failure.
type GeminiClient struct {
	cfg   Config
	model string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiClient creates a Gemini-backed client
func NewGeminiClient(cfg Config) *GeminiClient {
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{cfg: cfg, model: model}
}

func (c *GeminiClient) Name() string {
	return fmt.Sprintf("Gemini (%s)", c.model)
}

func (c *GeminiClient) init(ctx context.Context) error {
	c.once.Do(func() {
		if c.cfg.APIKey == "" {
			c.initErr = errMissingAPIKey
			return
		}
		baseURL := c.cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultGeminiBaseURL
		}
		c.client, c.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      c.cfg.APIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  c.cfg.HTTPClient,
			HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
		})
	})
	return c.initErr
}

// Enhance sends the instruction and returns the response text verbatim
func (c *GeminiClient) Enhance(ctx context.Context, prompt string) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", wrap("gemini", "init", err)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(BuildInstruction(prompt)), nil)
	if err != nil {
		return "", wrap("gemini", "request", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", wrap("gemini", "response", errors.New("no candidates returned"))
	}

	text := resp.Text()
	if text == "" {
		return "", wrap("gemini", "response", errors.New("empty text"))
	}
	return text, nil
}
