package middleware

import (
	"errors"
	"net/http"
	"strings"

	"family-site-go/internal/domain/auth"
	"family-site-go/pkg/logger"
)

const AdminCookieName = "adminToken"

// SessionChecker admits or rejects a session token.
type SessionChecker interface {
	Require(token string) error
}

type AdminAuth struct {
	sessions SessionChecker
	log      logger.Logger
}

func NewAdminAuth(sessions SessionChecker, log logger.Logger) *AdminAuth {
	return &AdminAuth{
		sessions: sessions,
		log:      log,
	}
}

func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := a.sessions.Require(TokenFromRequest(r))
		switch {
		case err == nil:
			next.ServeHTTP(w, r)
		case errors.Is(err, auth.ErrNotConfigured):
			a.log.Critical("auth: admin credentials not configured", "path", r.URL.Path)
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "Admin credentials missing on server")
		default:
			a.log.BusinessError("auth: rejected admin request", err, "path", r.URL.Path)
			unauthorized(w)
		}
	})
}

// TokenFromRequest returns the session token from the admin cookie, falling
// back to an Authorization bearer header. The cookie wins when both are set.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(AdminCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	token, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		return ""
	}
	return token
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
}
