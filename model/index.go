package model

// SessionData is the persisted session record, keyed "user:<sessionId>".
// The upstream bearer token never leaves the server side; the session
// cookie only carries the id used to look this record up.
type SessionData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
