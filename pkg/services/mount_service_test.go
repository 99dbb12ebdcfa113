package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/relay-agents/relay/test/database"
)

func TestMountService(t *testing.T) {
	client := testdb.NewTestClient(t)
	mounts := NewMountService(client.Client)
	sessions := NewSessionService(client.Client)
	ctx := context.Background()

	sessionID := uuid.New().String()
	_, err := sessions.Create(ctx, sessionID, "hello")
	require.NoError(t, err)

	t.Run("create and list", func(t *testing.T) {
		_, err := mounts.Create(ctx, sessionID, "ctx.md", "inline", map[string]interface{}{"content": "pinned"})
		require.NoError(t, err)
		_, err = mounts.Create(ctx, sessionID, "doc.md", "url", map[string]interface{}{"source": "https://example.com/doc"})
		require.NoError(t, err)

		rows, err := mounts.ListForSession(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "ctx.md", rows[0].MountPath)
		assert.Equal(t, "inline", rows[0].Type)
		assert.Equal(t, "pinned", rows[0].Config["content"])
	})

	t.Run("remounting a path replaces the record", func(t *testing.T) {
		_, err := mounts.Create(ctx, sessionID, "ctx.md", "inline", map[string]interface{}{"content": "v2"})
		require.NoError(t, err)

		rows, err := mounts.ListForSession(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		var found bool
		for _, row := range rows {
			if row.MountPath == "ctx.md" {
				found = true
				assert.Equal(t, "v2", row.Config["content"])
			}
		}
		assert.True(t, found)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, mounts.Remove(ctx, sessionID, "ctx.md"))
		require.NoError(t, mounts.Remove(ctx, sessionID, "never-mounted"))

		rows, err := mounts.ListForSession(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "doc.md", rows[0].MountPath)
	})

	t.Run("purging the session cascades to mounts", func(t *testing.T) {
		require.NoError(t, sessions.Purge(ctx, sessionID))

		rows, err := mounts.ListForSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
