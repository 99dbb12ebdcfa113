package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/pkg/models"
	testdb "github.com/relay-agents/relay/test/database"
)

func TestEventService_AppendAndListAfter(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := NewEventService(client.Client)
	sessions := NewSessionService(client.Client)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	types := []string{
		models.EventUserMessage,
		models.EventAgentStart,
		models.EventTurnStart,
		models.EventMessageEnd,
		models.EventTurnEnd,
	}
	ids := make([]int, 0, len(types))
	for _, eventType := range types {
		id, err := events.Append(ctx, sessionID, eventType, map[string]interface{}{"t": eventType})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	t.Run("ids are strictly increasing in append order", func(t *testing.T) {
		for i := 1; i < len(ids); i++ {
			assert.Greater(t, ids[i], ids[i-1])
		}
	})

	t.Run("afterID zero returns the whole log in order", func(t *testing.T) {
		rows, err := events.ListAfter(ctx, sessionID, 0)
		require.NoError(t, err)
		require.Len(t, rows, len(types))
		for i, row := range rows {
			assert.Equal(t, types[i], row.Type)
			assert.Equal(t, ids[i], row.ID)
		}
	})

	t.Run("cursor read is exclusive", func(t *testing.T) {
		rows, err := events.ListAfter(ctx, sessionID, ids[2])
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, models.EventMessageEnd, rows[0].Type)
		assert.Equal(t, models.EventTurnEnd, rows[1].Type)
	})

	t.Run("cursor past the end returns empty", func(t *testing.T) {
		rows, err := events.ListAfter(ctx, sessionID, ids[len(ids)-1])
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("other sessions are not visible", func(t *testing.T) {
		otherID := uuid.New().String()
		_, err := sessions.Create(ctx, otherID, "hi")
		require.NoError(t, err)

		rows, err := events.ListAfter(ctx, otherID, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestEventService_AppendRequiresSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := NewEventService(client.Client)

	_, err := events.Append(context.Background(), uuid.New().String(), models.EventAgentStart, nil)
	assert.Error(t, err, "events are rows of a session, orphans are rejected")
}

func TestRecords(t *testing.T) {
	client := testdb.NewTestClient(t)
	events := NewEventService(client.Client)
	sessions := NewSessionService(client.Client)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	_, err = events.Append(ctx, sessionID, models.EventAgentStart, map[string]interface{}{"k": "v"})
	require.NoError(t, err)

	rows, err := events.ListAfter(ctx, sessionID, 0)
	require.NoError(t, err)

	records := Records(rows)
	require.Len(t, records, 1)
	assert.Equal(t, models.EventAgentStart, records[0].Type)
	assert.Equal(t, "v", records[0].Data["k"])
	assert.False(t, records[0].CreatedAt.IsZero())

	assert.Empty(t, Records(nil))
}
