package services

import (
	"context"
	"fmt"
	"time"

	"github.com/relay-agents/relay/ent"
	"github.com/relay-agents/relay/ent/threadmapping"
)

// ThreadService maps chat-platform thread keys to sessions so a reply in
// an existing thread continues the same conversation.
type ThreadService struct {
	client *ent.Client
}

// NewThreadService creates a new ThreadService
func NewThreadService(client *ent.Client) *ThreadService {
	return &ThreadService{client: client}
}

// Lookup returns the session bound to a thread key, or ErrNotFound.
func (s *ThreadService) Lookup(ctx context.Context, threadKey string) (string, error) {
	mapping, err := s.client.ThreadMapping.Query().
		Where(threadmapping.ThreadKeyEQ(threadKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("thread %s: %w", threadKey, ErrNotFound)
		}
		return "", fmt.Errorf("failed to lookup thread mapping: %w", err)
	}
	return mapping.SessionID, nil
}

// Bind upserts the thread → session mapping.
func (s *ThreadService) Bind(ctx context.Context, threadKey, sessionID string, threadContext map[string]interface{}) error {
	existing, err := s.client.ThreadMapping.Query().
		Where(threadmapping.ThreadKeyEQ(threadKey)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetSessionID(sessionID).
			SetContext(threadContext).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update thread mapping: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = s.client.ThreadMapping.Create().
			SetThreadKey(threadKey).
			SetSessionID(sessionID).
			SetContext(threadContext).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create thread mapping: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to query thread mapping: %w", err)
	}
}
