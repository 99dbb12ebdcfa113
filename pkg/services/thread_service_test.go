package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/relay-agents/relay/test/database"
)

func TestThreadService_BindAndLookup(t *testing.T) {
	client := testdb.NewTestClient(t)
	threads := NewThreadService(client.Client)
	ctx := context.Background()

	threadKey := "C123:1724500000.000100"
	firstSession := uuid.New().String()

	_, err := threads.Lookup(ctx, threadKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, threads.Bind(ctx, threadKey, firstSession, map[string]interface{}{
		"channel_id": "C123",
		"user_id":    "U456",
	}))

	sessionID, err := threads.Lookup(ctx, threadKey)
	require.NoError(t, err)
	assert.Equal(t, firstSession, sessionID)

	// Rebinding the same thread replaces the mapping.
	secondSession := uuid.New().String()
	require.NoError(t, threads.Bind(ctx, threadKey, secondSession, nil))

	sessionID, err = threads.Lookup(ctx, threadKey)
	require.NoError(t, err)
	assert.Equal(t, secondSession, sessionID)
}
