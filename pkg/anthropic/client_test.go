package anthropic

import (
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
)

func TestToSDKMessages(t *testing.T) {
	t.Parallel()

	got := toSDKMessages([]Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi"},
	})

	assert.Len(t, got, 2)
	assert.Equal(t, sdk.MessageParamRoleUser, got[0].Role)
	assert.Equal(t, sdk.MessageParamRoleAssistant, got[1].Role)
}

func TestFromSDKMessageConcatenatesText(t *testing.T) {
	t.Parallel()

	msg := &sdk.Message{
		ID:         "msg_1",
		Model:      "claude-sonnet-4-5-20250929",
		StopReason: "end_turn",
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "part one "},
			{Type: "text", Text: "part two"},
		},
		Usage: sdk.Usage{InputTokens: 10, OutputTokens: 5},
	}

	got := fromSDKMessage(msg)
	assert.Equal(t, "msg_1", got.ID)
	assert.Equal(t, "part one part two", got.Text)
	assert.Equal(t, int64(10), got.Usage.InputTokens)
	assert.Equal(t, int64(5), got.Usage.OutputTokens)
}
