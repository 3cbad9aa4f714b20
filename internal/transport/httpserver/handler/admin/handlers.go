package admin

import (
	"net/http"
	"time"

	authdomain "family-site-go/internal/domain/auth"
	commonhandler "family-site-go/internal/transport/httpserver/handler/common"
	"family-site-go/internal/transport/httpserver/middleware"
	"family-site-go/pkg/logger"
)

const defaultCookieMaxAge = 30 * 24 * time.Hour

// CookieOptions controls the session cookie set on login.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

type Handlers struct {
	Auth   *authdomain.Service
	cookie CookieOptions
	log    logger.Logger
}

func New(auth *authdomain.Service, cookie CookieOptions, log logger.Logger) *Handlers {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = defaultCookieMaxAge
	}
	return &Handlers{
		Auth:   auth,
		cookie: cookie,
		log:    log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type checkAuthResponse struct {
	Authenticated bool `json:"authenticated"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := commonhandler.DecodeJSON(w, r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	session, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "admin.login", err)
		return
	}

	http.SetCookie(w, h.sessionCookie(session.Token, int(h.cookie.MaxAge/time.Second)))
	h.log.Info("admin.login: signed in")
	commonhandler.WriteJSON(w, http.StatusOK, loginResponse{
		Token:   session.Token,
		Message: "Signed in successfully",
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(middleware.TokenFromRequest(r))

	http.SetCookie(w, h.sessionCookie("", -1))
	h.log.Info("admin.logout: signed out")
	commonhandler.WriteJSON(w, http.StatusOK, commonhandler.MessageResponse{Message: "Logged out"})
}

func (h *Handlers) CheckAuth(w http.ResponseWriter, r *http.Request) {
	commonhandler.WriteJSON(w, http.StatusOK, checkAuthResponse{
		Authenticated: h.Auth.Check(middleware.TokenFromRequest(r)),
	})
}

func (h *Handlers) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookie.Secure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
