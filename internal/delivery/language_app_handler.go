package delivery

import (
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/lingua_voice/internal/catalog"
	"github.com/Vovarama1992/lingua_voice/internal/ports"
	"github.com/Vovarama1992/lingua_voice/internal/session"
)

type LanguageAppHandler struct {
	sessions session.Store
	app      ports.LanguageAppService
	render   *Renderer
	log      *logger.ZapLogger
}

func NewLanguageAppHandler(sessions session.Store, app ports.LanguageAppService, render *Renderer, log *logger.ZapLogger) *LanguageAppHandler {
	return &LanguageAppHandler{
		sessions: sessions,
		app:      app,
		render:   render,
		log:      log,
	}
}

func (h *LanguageAppHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	language := r.FormValue("language")
	text := r.FormValue("text")

	id, s := sessionFromContext(r.Context())
	if _, ok := catalog.LanguageCode(language); ok {
		s.Language = language
		h.sessions.Save(r.Context(), id, s)
	}

	data := newPageData(s)
	data.Text = text

	res, err := h.app.Run(r.Context(), text, language)
	if err != nil {
		data.Notice = &Notice{Level: NoticeError, Text: "Translation failed. Error: " + describe(err)}
		renderPage(w, h.render, h.log, http.StatusOK, data)
		return
	}

	data.Result = newResultView(res)
	renderPage(w, h.render, h.log, http.StatusOK, data)
}

// describe drops the stage prefix, users only see the cause.
func describe(err error) string {
	var se *ports.StageError
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}
