package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/relay-agents/relay/ent"
)

// Workspace is the per-session scratch filesystem tools operate on. It
// lives in memory for the duration of a run; only mount records survive
// across runs.
type Workspace struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{files: make(map[string]string)}
}

// WriteFile stores content at path, replacing any previous content.
func (w *Workspace) WriteFile(path, content string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = content
}

// ReadFile returns the content at path.
func (w *Workspace) ReadFile(path string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	content, ok := w.files[path]
	return content, ok
}

// RemoveFile deletes the entry at path. Removing an unknown path is a
// no-op.
func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

// ListFiles returns all paths in sorted order.
func (w *Workspace) ListFiles() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// MountRecorder persists mount records so a reactivated session can
// restore its workspace. Satisfied by services.MountService.
type MountRecorder interface {
	Create(ctx context.Context, sessionID, mountPath, mountType string, config map[string]interface{}) (*ent.Mount, error)
	Remove(ctx context.Context, sessionID, mountPath string) error
}

const workspaceSchema = `{
	"type": "object",
	"properties": {
		"op": {
			"type": "string",
			"enum": ["read", "write", "list", "mount", "unmount"],
			"description": "Operation to perform"
		},
		"path": {
			"type": "string",
			"description": "Workspace path the operation targets"
		},
		"content": {
			"type": "string",
			"description": "File content for write, or inline content for mount"
		},
		"source": {
			"type": "string",
			"description": "URL to mount at path (mount op only)"
		}
	},
	"required": ["op"]
}`

// WorkspaceTool exposes the session workspace to the model. Mounts are
// recorded durably; plain writes are scratch state for the current run.
type WorkspaceTool struct {
	sessionID string
	ws        *Workspace
	recorder  MountRecorder
}

// NewWorkspaceTool creates the workspace tool for one session. recorder
// may be nil, in which case mount and unmount report an error.
func NewWorkspaceTool(sessionID string, ws *Workspace, recorder MountRecorder) *WorkspaceTool {
	return &WorkspaceTool{sessionID: sessionID, ws: ws, recorder: recorder}
}

func (t *WorkspaceTool) Name() string { return "workspace" }

func (t *WorkspaceTool) Description() string {
	return "Read, write and list files in the session workspace, and mount durable content at a path."
}

func (t *WorkspaceTool) Schema() json.RawMessage {
	return json.RawMessage(workspaceSchema)
}

func (t *WorkspaceTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var params struct {
		Op      string `json:"op"`
		Path    string `json:"path"`
		Content string `json:"content"`
		Source  string `json:"source"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Op != "list" && strings.TrimSpace(params.Path) == "" {
		return "", fmt.Errorf("'path' is required for op %q", params.Op)
	}

	switch params.Op {
	case "read":
		content, ok := t.ws.ReadFile(params.Path)
		if !ok {
			return "", fmt.Errorf("no such file: %s", params.Path)
		}
		return content, nil

	case "write":
		t.ws.WriteFile(params.Path, params.Content)
		return fmt.Sprintf("wrote %d bytes to %s", len(params.Content), params.Path), nil

	case "list":
		paths := t.ws.ListFiles()
		if len(paths) == 0 {
			return "workspace is empty", nil
		}
		return strings.Join(paths, "\n"), nil

	case "mount":
		return t.mount(ctx, params.Path, params.Content, params.Source)

	case "unmount":
		if t.recorder == nil {
			return "", fmt.Errorf("mounts are not available")
		}
		if err := t.recorder.Remove(ctx, t.sessionID, params.Path); err != nil {
			return "", fmt.Errorf("failed to remove mount: %w", err)
		}
		t.ws.RemoveFile(params.Path)
		return fmt.Sprintf("unmounted %s", params.Path), nil

	default:
		return "", fmt.Errorf("unknown op: %s", params.Op)
	}
}

func (t *WorkspaceTool) mount(ctx context.Context, path, content, source string) (string, error) {
	if t.recorder == nil {
		return "", fmt.Errorf("mounts are not available")
	}

	var (
		mountType string
		config    map[string]interface{}
	)
	switch {
	case source != "":
		mountType = MountTypeURL
		config = map[string]interface{}{"source": source}
	case content != "":
		mountType = MountTypeInline
		config = map[string]interface{}{"content": content}
	default:
		return "", fmt.Errorf("mount requires 'content' or 'source'")
	}

	if _, err := t.recorder.Create(ctx, t.sessionID, path, mountType, config); err != nil {
		return "", fmt.Errorf("failed to record mount: %w", err)
	}
	if err := applyMount(ctx, t.ws, path, mountType, config); err != nil {
		return "", err
	}
	return fmt.Sprintf("mounted %s at %s", mountType, path), nil
}
