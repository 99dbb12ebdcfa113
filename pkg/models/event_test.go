package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransientEvent(t *testing.T) {
	assert.True(t, IsTransientEvent(EventMessageStart))
	assert.True(t, IsTransientEvent(EventMessageUpdate))
	assert.False(t, IsTransientEvent(EventMessageEnd))
	assert.False(t, IsTransientEvent(EventSessionComplete))
}

func TestPayloadRoundTrip(t *testing.T) {
	payload := TurnEndPayload{
		Message: Message{
			Role: RoleAssistant,
			Content: []ContentBlock{
				{Type: ContentText, Text: "checking"},
				{Type: ContentToolCall, ToolCall: &ToolCall{CallID: "call-1", ToolName: "fetch"}},
			},
		},
		ToolResults: []Message{NewToolResultMessage("call-1", "body", false)},
	}

	data := EncodePayload(payload)
	require.NotContains(t, data, "encode_error")

	decoded, err := DecodePayload[TurnEndPayload](data)
	require.NoError(t, err)
	assert.Equal(t, "checking", decoded.Message.Text())
	require.Len(t, decoded.Message.ToolCalls(), 1)
	require.Len(t, decoded.ToolResults, 1)
	assert.Equal(t, "call-1", decoded.ToolResults[0].CallID)
}

func TestDecodePayload_TypeMismatch(t *testing.T) {
	_, err := DecodePayload[MessageEndPayload](map[string]interface{}{"message": "not an object"})
	assert.Error(t, err)
}

func TestMessageHelpers(t *testing.T) {
	msg := Message{
		Role: RoleAssistant,
		Content: []ContentBlock{
			{Type: ContentText, Text: "a"},
			{Type: ContentReasoning, Text: "hidden"},
			{Type: ContentText, Text: "b"},
			{Type: ContentToolCall, ToolCall: &ToolCall{CallID: "c1", ToolName: "fetch"}},
			{Type: ContentToolCall, ToolCall: &ToolCall{CallID: "c2", ToolName: "workspace"}},
		},
	}

	assert.Equal(t, "ab", msg.Text(), "reasoning blocks are not user-visible text")

	calls := msg.ToolCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "c1", calls[0].CallID)
	assert.Equal(t, "c2", calls[1].CallID)
}

func TestUsageAdd(t *testing.T) {
	u := Usage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3}
	u.Add(Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30})
	assert.Equal(t, Usage{InputTokens: 11, OutputTokens: 22, TotalTokens: 33}, u)
}
