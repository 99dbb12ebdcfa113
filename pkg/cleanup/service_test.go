package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/pkg/services"
	testdb "github.com/relay-agents/relay/test/database"
)

func TestNewService_DisabledWithoutRetention(t *testing.T) {
	assert.Nil(t, NewService(Config{Retention: 0}, nil))
	assert.Nil(t, NewService(Config{Retention: -time.Hour}, nil))

	// Nil-safe lifecycle.
	var s *Service
	s.Start(context.Background())
	s.Stop()
}

func TestService_SweepsExpiredSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	expiredID := uuid.New().String()
	_, err := sessions.Create(ctx, expiredID, "old")
	require.NoError(t, err)
	require.NoError(t, sessions.Complete(ctx, expiredID, nil, nil, 0))
	err = client.Client.ChatSession.UpdateOneID(expiredID).
		SetCompletedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	keptID := uuid.New().String()
	_, err = sessions.Create(ctx, keptID, "fresh")
	require.NoError(t, err)
	require.NoError(t, sessions.Complete(ctx, keptID, nil, nil, 0))

	svc := NewService(Config{Retention: time.Hour, Interval: time.Minute}, sessions)
	require.NotNil(t, svc)

	// Start runs one sweep immediately.
	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		_, err := sessions.Get(ctx, expiredID)
		return err != nil
	}, 5*time.Second, 50*time.Millisecond, "expired session should be purged by the initial sweep")

	_, err = sessions.Get(ctx, keptID)
	assert.NoError(t, err, "sessions inside the retention window survive")
}
