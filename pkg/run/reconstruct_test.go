package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/pkg/models"
)

func record(id int, eventType string, payload any) models.EventRecord {
	return models.EventRecord{
		ID:   id,
		Type: eventType,
		Data: models.EncodePayload(payload),
	}
}

func TestBuildHistory(t *testing.T) {
	userMsg := models.NewUserMessage("check the logs")
	assistantOne := models.Message{
		Role: models.RoleAssistant,
		Content: []models.ContentBlock{
			{Type: models.ContentText, Text: "Let me look."},
			{Type: models.ContentToolCall, ToolCall: &models.ToolCall{CallID: "call-1", ToolName: "fetch"}},
		},
	}
	toolResult := models.NewToolResultMessage("call-1", "log contents", false)
	assistantTwo := models.NewAssistantMessage("Nothing unusual in the logs.")

	records := []models.EventRecord{
		record(1, models.EventUserMessage, models.UserMessagePayload{Message: userMsg}),
		record(2, models.EventAgentStart, nil),
		record(3, models.EventTurnStart, nil),
		record(4, models.EventMessageEnd, models.MessageEndPayload{Message: assistantOne}),
		record(5, models.EventToolStart, models.ToolExecutionStartPayload{ToolName: "fetch", CallID: "call-1"}),
		record(6, models.EventToolEnd, models.ToolExecutionEndPayload{ToolName: "fetch", CallID: "call-1", Result: toolResult}),
		record(7, models.EventTurnEnd, models.TurnEndPayload{Message: assistantOne, ToolResults: []models.Message{toolResult}}),
		record(8, models.EventMessageEnd, models.MessageEndPayload{Message: assistantTwo}),
		record(9, models.EventTurnEnd, models.TurnEndPayload{Message: assistantTwo, ToolResults: []models.Message{}}),
		record(10, models.EventSessionComplete, models.SessionOutcomePayload{}),
	}

	history := BuildHistory(records)

	require.Len(t, history, 4)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "check the logs", history[0].Text())
	assert.Equal(t, models.RoleAssistant, history[1].Role)
	require.Len(t, history[1].ToolCalls(), 1)
	assert.Equal(t, models.RoleToolResult, history[2].Role)
	assert.Equal(t, "call-1", history[2].CallID)
	assert.Equal(t, models.RoleAssistant, history[3].Role)
	assert.Equal(t, "Nothing unusual in the logs.", history[3].Text())
}

func TestBuildHistory_ToleratesUnknownAndBrokenEvents(t *testing.T) {
	records := []models.EventRecord{
		{ID: 1, Type: "hologram_update", Data: map[string]interface{}{"x": 1}},
		{ID: 2, Type: models.EventMessageEnd, Data: map[string]interface{}{"message": 42}},
		record(3, models.EventUserMessage, models.UserMessagePayload{Message: models.NewUserMessage("hi")}),
	}

	history := BuildHistory(records)

	require.Len(t, history, 1)
	assert.Equal(t, "hi", history[0].Text())
}

func TestBuildHistory_Empty(t *testing.T) {
	assert.Empty(t, BuildHistory(nil))
	assert.Empty(t, BuildHistory([]models.EventRecord{}))
}
