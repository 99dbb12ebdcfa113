package api

// ChatRequest is the body of POST /api/v1/chat. SessionID is optional;
// when present the session is continued, otherwise a new one is created
// under a generated id.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}
