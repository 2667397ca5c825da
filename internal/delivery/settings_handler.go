package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/lingua_voice/internal/catalog"
	"github.com/Vovarama1992/lingua_voice/internal/session"
)

type SettingsHandler struct {
	sessions session.Store
	render   *Renderer
	log      *logger.ZapLogger
}

func NewSettingsHandler(sessions session.Store, render *Renderer, log *logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{
		sessions: sessions,
		render:   render,
		log:      log,
	}
}

// Wallpaper stores the chosen background. "None" clears it.
func (h *SettingsHandler) Wallpaper(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	url, ok := catalog.WallpaperURL(r.FormValue("wallpaper"))
	if !ok {
		http.Error(w, "unknown wallpaper", http.StatusBadRequest)
		return
	}

	id, s := sessionFromContext(r.Context())
	s.Wallpaper = url
	h.sessions.Save(r.Context(), id, s)

	data := newPageData(s)
	data.Notice = &Notice{Level: NoticeSuccess, Text: "Wallpaper applied!"}
	renderPage(w, h.render, h.log, http.StatusOK, data)
}
