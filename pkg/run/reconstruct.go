package run

import (
	"log/slog"

	"github.com/relay-agents/relay/pkg/models"
)

// BuildHistory rebuilds the model-facing message history from a
// session's event log. Only three event types contribute: user_message
// carries the user turn, message_end carries the authoritative final
// assistant message, and turn_end carries that turn's tool results in
// canonical order. Everything else, including unknown types, is skipped.
func BuildHistory(records []models.EventRecord) []models.Message {
	var history []models.Message

	for _, rec := range records {
		switch rec.Type {
		case models.EventUserMessage:
			payload, err := models.DecodePayload[models.UserMessagePayload](rec.Data)
			if err != nil {
				logDecodeFailure(rec, err)
				continue
			}
			history = append(history, payload.Message)

		case models.EventMessageEnd:
			payload, err := models.DecodePayload[models.MessageEndPayload](rec.Data)
			if err != nil {
				logDecodeFailure(rec, err)
				continue
			}
			history = append(history, payload.Message)

		case models.EventTurnEnd:
			payload, err := models.DecodePayload[models.TurnEndPayload](rec.Data)
			if err != nil {
				logDecodeFailure(rec, err)
				continue
			}
			history = append(history, payload.ToolResults...)
		}
	}

	return history
}

func logDecodeFailure(rec models.EventRecord, err error) {
	slog.Default().Warn("Skipping undecodable event during reconstruction",
		"event_id", rec.ID,
		"event_type", rec.Type,
		"error", err)
}
