package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageType_String(t *testing.T) {
	assert.Equal(t, "info", MessageTypeInfo.String())
	assert.Equal(t, "destructive", MessageTypeError.String())
}

func TestStatusMsgConstructors(t *testing.T) {
	info := InfoMsg("Success", "Enhanced prompt copied to clipboard!")
	assert.Equal(t, StatusMsg{Title: "Success", Message: "Enhanced prompt copied to clipboard!", Type: MessageTypeInfo}, info)

	destructive := ErrorStatusMsg("Error", "Please enter a prompt to enhance")
	assert.Equal(t, MessageTypeError, destructive.Type)
}
