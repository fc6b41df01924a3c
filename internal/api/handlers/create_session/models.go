package create_session

// SessionResponse carries the identifier the client must send back in the
// X-Session-ID header on every protected request.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}
