package enhance

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockClient simulates a model with canned rewrites. Used by --dummy mode
// so the UI can be exercised without an API key or network.
type MockClient struct {
	// Latency is how long Enhance pauses before answering
	Latency time.Duration
}

// NewMockClient creates a mock client with a short artificial latency
func NewMockClient() *MockClient {
	return &MockClient{Latency: 600 * time.Millisecond}
}

func (m *MockClient) Name() string {
	return "Mock (offline)"
}

var mockRewrites = map[string]string{
	"write a story": "Write a vivid short story of about 800 words set in a coastal town during a storm. " +
		"Introduce a protagonist with a clear goal, build tension through a mid-story complication, " +
		"and end with a resolution that reveals something new about the character. " +
		"Use sensory detail and natural dialogue.",
	"explain recursion": "Explain recursion to a beginner programmer. Start with an everyday analogy, " +
		"then walk through a small example (factorial) step by step, showing each call on the stack. " +
		"Cover the base case, the recursive case, and one common pitfall such as missing termination.",
	"summarize this article": "Summarize the article below in five bullet points for a busy executive. " +
		"Lead with the main finding, keep each bullet under 25 words, and finish with one recommended action.",
}

// Enhance returns a canned rewrite for known prompts and a generic
// elaboration for anything else
func (m *MockClient) Enhance(ctx context.Context, prompt string) (string, error) {
	if m.Latency > 0 {
		select {
		case <-time.After(m.Latency):
		case <-ctx.Done():
			return "", wrap("mock", "request", ctx.Err())
		}
	}

	key := strings.ToLower(strings.TrimSpace(prompt))
	if text, ok := mockRewrites[key]; ok {
		return text, nil
	}

	for known, text := range mockRewrites {
		if strings.Contains(key, known) {
			return text, nil
		}
	}

	return fmt.Sprintf("Act as an expert in the subject of the following request: %q. "+
		"State the goal and the intended audience, list the constraints (length, tone, format), "+
		"and describe what a great answer must include. Ask for a structured response with headings "+
		"and a short summary at the end.", strings.TrimSpace(prompt)), nil
}
