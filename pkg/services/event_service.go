package services

import (
	"context"
	"fmt"
	"time"

	"github.com/relay-agents/relay/ent"
	"github.com/relay-agents/relay/ent/event"
	"github.com/relay-agents/relay/pkg/models"
)

// EventService is the append-only event log. Monotonic ordering comes
// from the auto-increment id combined with the single-writer queue; the
// service itself only appends and reads.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append persists one event and returns its id. Uses a detached write
// context so an expiring request context cannot tear a log entry out of
// the middle of a run.
func (s *EventService) Append(httpCtx context.Context, sessionID, eventType string, data map[string]interface{}) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	evt, err := s.client.Event.Create().
		SetSessionID(sessionID).
		SetType(eventType).
		SetData(data).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to append event: %w", err)
	}

	return evt.ID, nil
}

// ListAfter retrieves events strictly after the given id, ordered
// ascending. afterID 0 returns the whole log.
func (s *EventService) ListAfter(ctx context.Context, sessionID string, afterID int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.SessionIDEQ(sessionID),
			event.IDGT(afterID),
		).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// Records converts ent rows to the reader-facing shape.
func Records(events []*ent.Event) []models.EventRecord {
	records := make([]models.EventRecord, 0, len(events))
	for _, evt := range events {
		records = append(records, models.EventRecord{
			ID:        evt.ID,
			Type:      evt.Type,
			Data:      evt.Data,
			CreatedAt: evt.CreatedAt,
		})
	}
	return records
}
