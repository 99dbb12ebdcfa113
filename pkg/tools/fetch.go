package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxFetchBytes caps the response body so a tool call cannot flood the
// model context.
const maxFetchBytes = 256 * 1024

const fetchSchema = `{
	"type": "object",
	"properties": {
		"url": {
			"type": "string",
			"description": "Absolute http(s) URL to fetch"
		}
	},
	"required": ["url"]
}`

// FetchTool retrieves the body of an HTTP URL.
type FetchTool struct {
	client *http.Client
}

// NewFetchTool creates a fetch tool with a bounded request timeout.
func NewFetchTool() *FetchTool {
	return &FetchTool{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *FetchTool) Name() string        { return "fetch" }
func (t *FetchTool) Description() string { return "Fetch the contents of an HTTP or HTTPS URL." }

func (t *FetchTool) Schema() json.RawMessage {
	return json.RawMessage(fetchSchema)
}

// Execute performs the GET. Non-2xx responses and oversized bodies are
// reported as errors so the model sees what happened.
func (t *FetchTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var params struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	u, err := url.Parse(params.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("invalid url: %s", params.URL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, params.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	if len(body) > maxFetchBytes {
		return "", fmt.Errorf("response exceeds %d bytes", maxFetchBytes)
	}

	return string(body), nil
}
