package auth

import "time"

const TokenBytes = 48

// Credentials are the admin secrets configured out of band. PasswordHash is a
// bcrypt hash and wins over Password when both are set.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

func (c Credentials) Configured() bool {
	return c.Username != "" && (c.Password != "" || c.PasswordHash != "")
}

type Session struct {
	Token    string
	IssuedAt time.Time
}

const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeMissingFields      = "missing_fields"
	OutcomeNotConfigured      = "not_configured"
)
