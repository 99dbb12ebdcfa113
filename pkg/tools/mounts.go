package tools

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/relay-agents/relay/ent"
)

// Mount types recorded in the store.
const (
	MountTypeInline = "inline"
	MountTypeURL    = "url"
)

// RestoreMounts re-applies persisted mount records to a fresh workspace
// before a reactivated session starts. A mount that cannot be restored
// is logged and skipped; the session still runs.
func RestoreMounts(ctx context.Context, ws *Workspace, mounts []*ent.Mount) {
	logger := slog.Default().With("component", "tools")
	for _, m := range mounts {
		if err := applyMount(ctx, ws, m.MountPath, m.Type, m.Config); err != nil {
			logger.Warn("Failed to restore mount",
				"mount_path", m.MountPath,
				"mount_type", m.Type,
				"error", err)
		}
	}
}

func applyMount(ctx context.Context, ws *Workspace, path, mountType string, config map[string]interface{}) error {
	switch mountType {
	case MountTypeInline:
		content, _ := config["content"].(string)
		ws.WriteFile(path, content)
		return nil

	case MountTypeURL:
		source, _ := config["source"].(string)
		if source == "" {
			return fmt.Errorf("url mount %s has no source", path)
		}
		content, err := fetchMountSource(ctx, source)
		if err != nil {
			return fmt.Errorf("failed to fetch mount source %s: %w", source, err)
		}
		ws.WriteFile(path, content)
		return nil

	default:
		return fmt.Errorf("unknown mount type: %s", mountType)
	}
}

func fetchMountSource(ctx context.Context, source string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, source, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
