package delivery

import (
	"context"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/lingua_voice/internal/session"
	"github.com/Vovarama1992/lingua_voice/internal/user"
)

type sessionCtxKey struct{}

type requestSession struct {
	id string
	s  session.Session
}

func sessionFromContext(ctx context.Context) (string, session.Session) {
	rs, ok := ctx.Value(sessionCtxKey{}).(*requestSession)
	if !ok {
		return "", session.Default()
	}
	return rs.id, rs.s
}

// SessionMiddleware resolves the browser session for every request. A logged
// in session whose user has disappeared from the registry is reset.
func SessionMiddleware(store session.Store, users user.Service, log *logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, s := session.Load(w, r, store)

			if s.LoggedIn {
				exists, err := users.Exists(r.Context(), s.Username)
				if err != nil {
					log.Log(logger.LogEntry{Level: "error", Message: "user lookup failed", Error: err, Service: serviceName})
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				if !exists {
					log.Log(logger.LogEntry{Level: "warn", Message: "session user is gone, resetting session: " + s.Username, Service: serviceName})
					s = store.Reset(r.Context(), id)
				}
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, &requestSession{id: id, s: s})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin sends anonymous sessions back to the auth gate.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, s := sessionFromContext(r.Context()); !s.LoggedIn {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
