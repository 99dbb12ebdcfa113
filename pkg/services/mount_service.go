package services

import (
	"context"
	"fmt"

	"github.com/relay-agents/relay/ent"
	"github.com/relay-agents/relay/ent/mount"
)

// MountService persists workspace mount records so tool state can be
// restored when a session is reactivated.
type MountService struct {
	client *ent.Client
}

// NewMountService creates a new MountService
func NewMountService(client *ent.Client) *MountService {
	return &MountService{client: client}
}

// Create records a mount for a session. Re-mounting the same path
// replaces the previous record.
func (s *MountService) Create(ctx context.Context, sessionID, mountPath, mountType string, config map[string]interface{}) (*ent.Mount, error) {
	// Unique (session_id, mount_path): drop a stale record first.
	_, err := s.client.Mount.Delete().
		Where(mount.SessionIDEQ(sessionID), mount.MountPathEQ(mountPath)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to replace mount: %w", err)
	}

	m, err := s.client.Mount.Create().
		SetSessionID(sessionID).
		SetMountPath(mountPath).
		SetType(mountType).
		SetConfig(config).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create mount: %w", err)
	}
	return m, nil
}

// ListForSession returns all mounts recorded for a session.
func (s *MountService) ListForSession(ctx context.Context, sessionID string) ([]*ent.Mount, error) {
	mounts, err := s.client.Mount.Query().
		Where(mount.SessionIDEQ(sessionID)).
		Order(ent.Asc(mount.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mounts: %w", err)
	}
	return mounts, nil
}

// Remove deletes a mount record. Removing an unknown path is a no-op.
func (s *MountService) Remove(ctx context.Context, sessionID, mountPath string) error {
	_, err := s.client.Mount.Delete().
		Where(mount.SessionIDEQ(sessionID), mount.MountPathEQ(mountPath)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove mount: %w", err)
	}
	return nil
}
