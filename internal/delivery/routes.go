package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/Vovarama1992/lingua_voice/internal/session"
	"github.com/Vovarama1992/lingua_voice/internal/user"
)

type Handlers struct {
	Auth     *AuthHandler
	Nav      *NavHandler
	App      *LanguageAppHandler
	Settings *SettingsHandler
}

// RegisterRoutes mounts the app. translateLimit is requests per minute per
// IP on POST /translate, 0 disables the limit.
func RegisterRoutes(
	r chi.Router,
	h Handlers,
	sessions session.Store,
	users user.Service,
	log *logger.ZapLogger,
	translateLimit int,
) {
	r.With(httputil.RecoverMiddleware).Get("/ping", Ping)

	r.Group(func(gr chi.Router) {
		gr.Use(
			httputil.RecoverMiddleware,
			SessionMiddleware(sessions, users, log),
		)

		// --- auth gate ---
		gr.Get("/", h.Auth.Gate)
		gr.Post("/auth/mode", h.Auth.Mode)
		gr.Post("/auth/login", h.Auth.Login)
		gr.Post("/auth/register", h.Auth.Register)

		// --- protected ---
		gr.Group(func(pr chi.Router) {
			pr.Use(RequireLogin)

			pr.Post("/nav", h.Nav.Select)
			pr.Post("/logout", h.Auth.Logout)
			pr.Post("/settings/wallpaper", h.Settings.Wallpaper)

			translate := http.HandlerFunc(h.App.Translate)
			if translateLimit > 0 {
				pr.With(httprate.LimitByIP(translateLimit, time.Minute)).Post("/translate", translate)
			} else {
				pr.Post("/translate", translate)
			}
		})
	})
}
