package auth

import "time"

// Registry tracks which session tokens are currently valid. It is shared by
// every request and must be safe for concurrent use.
type Registry interface {
	Add(token string, issuedAt time.Time)
	Contains(token string) bool
	Remove(token string)
}

// Recorder receives login outcomes.
type Recorder interface {
	LoginAttempt(outcome string)
}

type noopRecorder struct{}

func (noopRecorder) LoginAttempt(string) {}
