package delivery

import (
	"net/http"

	"github.com/Vovarama1992/lingua_voice/internal/session"
)

type NavHandler struct {
	sessions session.Store
}

func NewNavHandler(sessions session.Store) *NavHandler {
	return &NavHandler{sessions: sessions}
}

func (h *NavHandler) Select(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	page, ok := session.ParsePage(r.FormValue("page"))
	if !ok {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	id, s := sessionFromContext(r.Context())
	s.Page = page
	h.sessions.Save(r.Context(), id, s)
	redirectHome(w, r)
}
