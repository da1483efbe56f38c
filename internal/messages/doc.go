// Package messages defines message handling patterns and conventions for the
// prompt enhancer. Notifications are either info or destructive.
//
// # Message Handling Patterns by Layer
//
// ## Client Layer (internal/enhance)
//
// Return standard Go errors. Clients are pure transport and must not depend
// on UI concerns. Every failure wraps the package sentinel so callers can
// test for it without inspecting the cause:
//
//	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(instruction), nil)
//	if err != nil {
//	    return "", fmt.Errorf("%w: gemini request: %v", ErrEnhancement, err)
//	}
//
// ## Command Layer (internal/commands)
//
// Return tea.Cmd that produces a result message (types.EnhanceResultMsg,
// types.CopyResultMsg). Commands run off the event loop and report back
// through the Bubble Tea message system. They log the underlying cause;
// they never format user-facing text.
//
// ## Controller Layer (internal/screens)
//
// Convert result messages into notifications with ErrorCmd, InfoCmd or
// NotifyCmd. This is the only place where user-facing wording
// lives, and nothing propagates past it:
//
//	case types.EnhanceResultMsg:
//	    s.busy = false
//	    if msg.Err != nil {
//	        return s, messages.ErrorCmd(MsgEnhanceFailed)
//	    }
//
// ## UI Layer (internal/app, internal/components)
//
// Display notifications via the Notifications component. Components do not
// format error messages; they receive pre-formatted StatusMsg values. Each
// notification clears itself after NotificationDisplayDuration (5s).
// Severity colors: red for destructive, the theme's primary color for info.
//
// # Error Message Guidelines
//
//  1. Be short: notifications are one line
//  2. Keep causes out of the UI: provider errors, API keys and quota details
//     belong in the log file
//  3. Tell the user what to do next when there is something to do
//     ("Please try again.")
//
// # Testing Error Handling
//
// Execute the returned tea.Cmd and assert on the produced message:
//
//	cmd := screen.Submit()
//	msg := cmd()
//	statusMsg, ok := msg.(types.StatusMsg)
//	assert.True(t, ok)
//	assert.Equal(t, types.MessageTypeError, statusMsg.Type)
package messages
