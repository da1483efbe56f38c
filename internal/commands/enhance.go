package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/promptenhancer/internal/enhance"
	"github.com/renato0307/promptenhancer/internal/logging"
	"github.com/renato0307/promptenhancer/internal/types"
)

// EnhanceCommand returns a tea.Cmd that performs one enhancement call and
// reports the outcome as a types.EnhanceResultMsg. The call runs to
// completion: there is no timeout and nothing cancels it.
func EnhanceCommand(client enhance.Client, prompt string) tea.Cmd {
	return func() tea.Msg {
		return runEnhance(context.Background(), client, prompt)
	}
}

func runEnhance(ctx context.Context, client enhance.Client, prompt string) types.EnhanceResultMsg {
	timing := logging.Start("enhance prompt")
	text, err := client.Enhance(ctx, prompt)
	logging.EndWithError(timing, err,
		"provider", client.Name(),
		"prompt_chars", len(prompt),
		"result_chars", len(text),
	)

	if err != nil {
		return types.EnhanceResultMsg{Prompt: prompt, Err: err}
	}
	return types.EnhanceResultMsg{Prompt: prompt, Text: text}
}
