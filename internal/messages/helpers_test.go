package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/promptenhancer/internal/types"
)

func TestNotificationCmds(t *testing.T) {
	tests := []struct {
		name      string
		cmd       func() types.StatusMsg
		wantTitle string
		wantText  string
		wantType  types.MessageType
	}{
		{
			name:      "error",
			cmd:       func() types.StatusMsg { return ErrorCmd("Failed %s", "x")().(types.StatusMsg) },
			wantTitle: TitleError,
			wantText:  "Failed x",
			wantType:  types.MessageTypeError,
		},
		{
			name:      "info",
			cmd:       func() types.StatusMsg { return InfoCmd("Theme switched to %s", "nord")().(types.StatusMsg) },
			wantTitle: TitleInfo,
			wantText:  "Theme switched to nord",
			wantType:  types.MessageTypeInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.cmd()
			assert.Equal(t, tt.wantTitle, msg.Title)
			assert.Equal(t, tt.wantText, msg.Message)
			assert.Equal(t, tt.wantType, msg.Type)
		})
	}
}

func TestNotifyCmd(t *testing.T) {
	cmd := NotifyCmd(TitleSuccess, "Enhanced prompt copied to clipboard!", types.MessageTypeInfo)
	require.NotNil(t, cmd)

	msg, ok := cmd().(types.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "Success", msg.Title)
	assert.Equal(t, types.MessageTypeInfo, msg.Type)
}

func TestWrapError(t *testing.T) {
	base := errors.New("no clipboard utility")
	err := WrapError(base, "failed to write %d bytes", 12)

	assert.EqualError(t, err, "failed to write 12 bytes: no clipboard utility")
	assert.ErrorIs(t, err, base)
}
