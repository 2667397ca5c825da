package session

import (
	"net/http"
)

const CookieName = "lv_session"

// Load resolves the session of the request, starting a new one (and setting
// the cookie) when the cookie is missing or points to an unknown session.
func Load(w http.ResponseWriter, r *http.Request, store Store) (string, Session) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		if s, ok := store.Get(r.Context(), c.Value); ok {
			return c.Value, s
		}
	}

	id, s := store.New(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, s
}
