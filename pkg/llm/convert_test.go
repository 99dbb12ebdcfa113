package llm

import (
	"encoding/json"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/pkg/models"
)

func assistantWithCall(text, callID, toolName, args string) models.Message {
	return models.Message{
		Role: models.RoleAssistant,
		Content: []models.ContentBlock{
			{Type: models.ContentText, Text: text},
			{Type: models.ContentToolCall, ToolCall: &models.ToolCall{
				CallID:    callID,
				ToolName:  toolName,
				Arguments: json.RawMessage(args),
			}},
		},
	}
}

func TestConvertAnthropicMessages(t *testing.T) {
	t.Run("maps roles", func(t *testing.T) {
		out, err := convertAnthropicMessages([]models.Message{
			models.NewUserMessage("hello"),
			models.NewAssistantMessage("hi there"),
		})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "user", string(out[0].Role))
		assert.Equal(t, "assistant", string(out[1].Role))
	})

	t.Run("collapses consecutive tool results into one user message", func(t *testing.T) {
		out, err := convertAnthropicMessages([]models.Message{
			models.NewUserMessage("go"),
			assistantWithCall("running two tools", "call-1", "fetch", `{"url":"a"}`),
			models.NewToolResultMessage("call-1", "first", false),
			models.NewToolResultMessage("call-2", "second", true),
			models.NewAssistantMessage("done"),
		})
		require.NoError(t, err)
		require.Len(t, out, 4)
		assert.Equal(t, "user", string(out[2].Role))
		assert.Len(t, out[2].Content, 2, "both results land in the same user message")
		assert.Equal(t, "assistant", string(out[3].Role))
	})

	t.Run("rejects malformed tool arguments", func(t *testing.T) {
		_, err := convertAnthropicMessages([]models.Message{
			assistantWithCall("", "call-1", "fetch", `{not json`),
		})
		assert.ErrorContains(t, err, "invalid tool call arguments")
	})
}

func TestConvertAnthropicTools(t *testing.T) {
	tools, err := convertAnthropicTools([]ToolDefinition{
		{
			Name:        "fetch",
			Description: "fetch a url",
			Schema:      json.RawMessage(`{"type":"object","properties":{"url":{"type":"string"}}}`),
		},
	})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.NotNil(t, tools[0].OfTool)
	assert.Equal(t, "fetch", string(tools[0].OfTool.Name))
	assert.Equal(t, "fetch a url", tools[0].OfTool.Description.Value)

	_, err = convertAnthropicTools([]ToolDefinition{
		{Name: "bad", Schema: json.RawMessage(`not json`)},
	})
	assert.ErrorContains(t, err, "invalid tool schema")
}

func TestConvertOpenAIMessages(t *testing.T) {
	out := convertOpenAIMessages("be helpful", []models.Message{
		models.NewUserMessage("go"),
		assistantWithCall("calling", "call-1", "fetch", `{"url":"a"}`),
		models.NewToolResultMessage("call-1", "body", false),
		models.NewAssistantMessage("done"),
	})

	require.Len(t, out, 5)

	assert.Equal(t, openai.ChatMessageRoleSystem, out[0].Role)
	assert.Equal(t, "be helpful", out[0].Content)

	assert.Equal(t, openai.ChatMessageRoleUser, out[1].Role)

	assert.Equal(t, openai.ChatMessageRoleAssistant, out[2].Role)
	require.Len(t, out[2].ToolCalls, 1)
	assert.Equal(t, "call-1", out[2].ToolCalls[0].ID)
	assert.Equal(t, openai.ToolTypeFunction, out[2].ToolCalls[0].Type)
	assert.Equal(t, "fetch", out[2].ToolCalls[0].Function.Name)

	assert.Equal(t, openai.ChatMessageRoleTool, out[3].Role)
	assert.Equal(t, "call-1", out[3].ToolCallID)
	assert.Equal(t, "body", out[3].Content)

	assert.Equal(t, openai.ChatMessageRoleAssistant, out[4].Role)
	assert.Empty(t, out[4].ToolCalls)
}

func TestConvertOpenAIMessages_NoSystem(t *testing.T) {
	out := convertOpenAIMessages("", []models.Message{models.NewUserMessage("hi")})
	require.Len(t, out, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, out[0].Role)
}

func TestConvertOpenAITools(t *testing.T) {
	schema := json.RawMessage(`{"type":"object"}`)
	out := convertOpenAITools([]ToolDefinition{
		{Name: "workspace", Description: "workspace ops", Schema: schema},
	})
	require.Len(t, out, 1)
	assert.Equal(t, openai.ToolTypeFunction, out[0].Type)
	assert.Equal(t, "workspace", out[0].Function.Name)
	assert.Equal(t, "workspace ops", out[0].Function.Description)
}
