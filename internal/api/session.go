package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// Session identity
const (
	// SessionCookieName holds the anonymous session id.
	SessionCookieName = "healing_guru_session"
	// SessionHeader lets API clients pass the session id explicitly.
	SessionHeader = "X-Session-ID"
	// sessionMaxAge is one year in seconds.
	sessionMaxAge = 365 * 24 * 60 * 60
)

// parseSessionID returns the canonical form of a UUID session id.
func parseSessionID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// sessionID returns the caller's session id, preferring the header over the
// cookie. A new id is issued and set as a cookie when neither is valid.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := parseSessionID(r.Header.Get(SessionHeader)); ok {
		return id
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		if id, ok := parseSessionID(c.Value); ok {
			return id
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Debug("Server.sessionID: issued new session", "user_id", id)
	return id
}

// clearSession expires the session cookie.
func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
