package enhance

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint
type OpenAIClient struct {
	cfg    Config
	model  string
	client openai.Client
}

// NewOpenAIClient creates an OpenAI-backed client
func NewOpenAIClient(cfg Config) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		// One request per enhancement; the SDK would otherwise retry.
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &OpenAIClient{
		cfg:    cfg,
		model:  model,
		client: openai.NewClient(opts...),
	}
}

func (c *OpenAIClient) Name() string {
	return fmt.Sprintf("OpenAI (%s)", c.model)
}

// Enhance sends the instruction as a single user message and returns the
// first choice verbatim
func (c *OpenAIClient) Enhance(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", wrap("openai", "init", errMissingAPIKey)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildInstruction(prompt)),
		},
	})
	if err != nil {
		return "", wrap("openai", "request", err)
	}
	if len(resp.Choices) == 0 {
		return "", wrap("openai", "response", errors.New("no choices returned"))
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", wrap("openai", "response", errors.New("empty text"))
	}
	return text, nil
}
