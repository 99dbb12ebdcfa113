package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relay-agents/relay/ent"
)

type recordedMount struct {
	path      string
	mountType string
	config    map[string]interface{}
}

// fakeRecorder stands in for the mount service.
type fakeRecorder struct {
	mu      sync.Mutex
	mounts  map[string]recordedMount
	failAll bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{mounts: make(map[string]recordedMount)}
}

func (f *fakeRecorder) Create(ctx context.Context, sessionID, mountPath, mountType string, config map[string]interface{}) (*ent.Mount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, fmt.Errorf("mount store unavailable")
	}
	f.mounts[mountPath] = recordedMount{path: mountPath, mountType: mountType, config: config}
	return &ent.Mount{SessionID: sessionID, MountPath: mountPath, Type: mountType, Config: config}, nil
}

func (f *fakeRecorder) Remove(ctx context.Context, sessionID, mountPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.mounts[mountPath]; !ok {
		return fmt.Errorf("no such mount: %s", mountPath)
	}
	delete(f.mounts, mountPath)
	return nil
}

func TestWorkspace_FileOperations(t *testing.T) {
	ws := NewWorkspace()

	ws.WriteFile("notes/b.txt", "beta")
	ws.WriteFile("notes/a.txt", "alpha")
	ws.WriteFile("notes/a.txt", "alpha v2")

	content, ok := ws.ReadFile("notes/a.txt")
	require.True(t, ok)
	assert.Equal(t, "alpha v2", content)

	_, ok = ws.ReadFile("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"notes/a.txt", "notes/b.txt"}, ws.ListFiles())

	ws.RemoveFile("notes/b.txt")
	ws.RemoveFile("missing") // no-op
	assert.Equal(t, []string{"notes/a.txt"}, ws.ListFiles())
}

func execWorkspace(t *testing.T, tool *WorkspaceTool, args string) (string, error) {
	t.Helper()
	return tool.Execute(context.Background(), json.RawMessage(args))
}

func TestWorkspaceTool_Execute(t *testing.T) {
	ws := NewWorkspace()
	recorder := newFakeRecorder()
	tool := NewWorkspaceTool("session-1", ws, recorder)

	t.Run("write then read", func(t *testing.T) {
		out, err := execWorkspace(t, tool, `{"op":"write","path":"plan.md","content":"step one"}`)
		require.NoError(t, err)
		assert.Equal(t, "wrote 8 bytes to plan.md", out)

		out, err = execWorkspace(t, tool, `{"op":"read","path":"plan.md"}`)
		require.NoError(t, err)
		assert.Equal(t, "step one", out)
	})

	t.Run("read of a missing file fails", func(t *testing.T) {
		_, err := execWorkspace(t, tool, `{"op":"read","path":"nope"}`)
		assert.ErrorContains(t, err, "no such file")
	})

	t.Run("list", func(t *testing.T) {
		out, err := execWorkspace(t, tool, `{"op":"list"}`)
		require.NoError(t, err)
		assert.Equal(t, "plan.md", out)
	})

	t.Run("inline mount records and applies", func(t *testing.T) {
		out, err := execWorkspace(t, tool, `{"op":"mount","path":"ctx.md","content":"pinned"}`)
		require.NoError(t, err)
		assert.Equal(t, "mounted inline at ctx.md", out)

		content, ok := ws.ReadFile("ctx.md")
		require.True(t, ok)
		assert.Equal(t, "pinned", content)

		rec, ok := recorder.mounts["ctx.md"]
		require.True(t, ok)
		assert.Equal(t, MountTypeInline, rec.mountType)
	})

	t.Run("unmount removes the record and the file", func(t *testing.T) {
		out, err := execWorkspace(t, tool, `{"op":"unmount","path":"ctx.md"}`)
		require.NoError(t, err)
		assert.Equal(t, "unmounted ctx.md", out)

		_, ok := ws.ReadFile("ctx.md")
		assert.False(t, ok)
		assert.Empty(t, recorder.mounts)
	})

	t.Run("mount without content or source fails", func(t *testing.T) {
		_, err := execWorkspace(t, tool, `{"op":"mount","path":"x"}`)
		assert.ErrorContains(t, err, "requires 'content' or 'source'")
	})

	t.Run("path is required for non-list ops", func(t *testing.T) {
		_, err := execWorkspace(t, tool, `{"op":"read"}`)
		assert.ErrorContains(t, err, "'path' is required")
	})

	t.Run("record failure leaves the workspace untouched", func(t *testing.T) {
		recorder.failAll = true
		defer func() { recorder.failAll = false }()

		_, err := execWorkspace(t, tool, `{"op":"mount","path":"y.md","content":"z"}`)
		assert.ErrorContains(t, err, "failed to record mount")
		_, ok := ws.ReadFile("y.md")
		assert.False(t, ok)
	})

	t.Run("unknown op fails", func(t *testing.T) {
		_, err := execWorkspace(t, tool, `{"op":"chmod","path":"x"}`)
		assert.ErrorContains(t, err, "unknown op")
	})
}

func TestWorkspaceTool_MountsUnavailableWithoutRecorder(t *testing.T) {
	tool := NewWorkspaceTool("session-1", NewWorkspace(), nil)

	_, err := execWorkspace(t, tool, `{"op":"mount","path":"x","content":"y"}`)
	assert.ErrorContains(t, err, "mounts are not available")

	_, err = execWorkspace(t, tool, `{"op":"unmount","path":"x"}`)
	assert.ErrorContains(t, err, "mounts are not available")
}

func TestRestoreMounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "remote body")
	}))
	defer server.Close()

	ws := NewWorkspace()
	RestoreMounts(context.Background(), ws, []*ent.Mount{
		{MountPath: "a.md", Type: MountTypeInline, Config: map[string]interface{}{"content": "hello"}},
		{MountPath: "b.md", Type: MountTypeURL, Config: map[string]interface{}{"source": server.URL}},
		{MountPath: "bad.md", Type: "tape-drive", Config: nil},
		{MountPath: "nosource.md", Type: MountTypeURL, Config: map[string]interface{}{}},
	})

	content, ok := ws.ReadFile("a.md")
	require.True(t, ok)
	assert.Equal(t, "hello", content)

	content, ok = ws.ReadFile("b.md")
	require.True(t, ok)
	assert.Equal(t, "remote body", content)

	// Failed mounts are skipped, not fatal.
	_, ok = ws.ReadFile("bad.md")
	assert.False(t, ok)
	_, ok = ws.ReadFile("nosource.md")
	assert.False(t, ok)
}

func TestFetchTool_Execute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			fmt.Fprint(w, "payload")
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	tool := NewFetchTool()
	ctx := context.Background()

	t.Run("fetches a 2xx body", func(t *testing.T) {
		out, err := tool.Execute(ctx, json.RawMessage(fmt.Sprintf(`{"url":%q}`, server.URL+"/ok")))
		require.NoError(t, err)
		assert.Equal(t, "payload", out)
	})

	t.Run("non-2xx status fails", func(t *testing.T) {
		_, err := tool.Execute(ctx, json.RawMessage(fmt.Sprintf(`{"url":%q}`, server.URL+"/missing")))
		assert.ErrorContains(t, err, "unexpected status 404")
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		_, err := tool.Execute(ctx, json.RawMessage(`{"url":"ftp://example.com/f"}`))
		assert.ErrorContains(t, err, "invalid url")
	})
}
