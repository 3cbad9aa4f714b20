package auth

import "errors"

var (
	ErrNotConfigured      = errors.New("admin credentials missing on server")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)
