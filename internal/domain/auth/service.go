package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"family-site-go/internal/domain/validation"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	creds    Credentials
	registry Registry
	recorder Recorder
	now      func() time.Time
}

func NewService(creds Credentials, registry Registry, recorder Recorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		creds:    creds,
		registry: registry,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Configured() bool {
	return s.creds.Configured()
}

// Login mints a new session when both credentials match the configured ones.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	if !s.creds.Configured() {
		s.recorder.LoginAttempt(OutcomeNotConfigured)
		return Session{}, ErrNotConfigured
	}
	if username == "" || password == "" {
		s.recorder.LoginAttempt(OutcomeMissingFields)
		return Session{}, validation.New("username", "Username and password are required")
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passwordOK := s.passwordMatches(password)
	if !usernameOK || !passwordOK {
		s.recorder.LoginAttempt(OutcomeInvalidCredentials)
		return Session{}, ErrInvalidCredentials
	}

	token, err := GenerateToken()
	if err != nil {
		return Session{}, err
	}

	session := Session{Token: token, IssuedAt: s.now()}
	s.registry.Add(session.Token, session.IssuedAt)
	s.recorder.LoginAttempt(OutcomeSuccess)
	return session, nil
}

// Check reports whether token belongs to a live session. It never fails.
func (s *Service) Check(token string) bool {
	if token == "" {
		return false
	}
	return s.registry.Contains(token)
}

// Require admits a request holding a live session token.
func (s *Service) Require(token string) error {
	if !s.creds.Configured() {
		return ErrNotConfigured
	}
	if !s.Check(token) {
		return ErrUnauthorized
	}
	return nil
}

func (s *Service) Logout(token string) {
	if token == "" {
		return
	}
	s.registry.Remove(token)
}

func (s *Service) passwordMatches(password string) bool {
	if s.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
}

// GenerateToken returns TokenBytes random bytes, hex encoded.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword produces a value suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", validation.New("password", "password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
