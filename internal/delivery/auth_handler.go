package delivery

import (
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/lingua_voice/internal/session"
	"github.com/Vovarama1992/lingua_voice/internal/user"
)

type AuthHandler struct {
	sessions session.Store
	users    user.Service
	render   *Renderer
	log      *logger.ZapLogger
}

func NewAuthHandler(sessions session.Store, users user.Service, render *Renderer, log *logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		users:    users,
		render:   render,
		log:      log,
	}
}

// Gate shows the auth view to anonymous sessions and the selected page
// otherwise.
func (h *AuthHandler) Gate(w http.ResponseWriter, r *http.Request) {
	_, s := sessionFromContext(r.Context())
	renderPage(w, h.render, h.log, http.StatusOK, newPageData(s))
}

func (h *AuthHandler) Mode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	choice, ok := session.ParseAuthChoice(r.FormValue("choice"))
	if !ok {
		http.Error(w, "invalid choice", http.StatusBadRequest)
		return
	}

	id, s := sessionFromContext(r.Context())
	s.AuthChoice = choice
	h.sessions.Save(r.Context(), id, s)
	redirectHome(w, r)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	id, s := sessionFromContext(r.Context())

	err := h.users.Login(r.Context(), username, r.FormValue("password"))
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		data := newPageData(s)
		data.Notice = &Notice{Level: NoticeError, Text: "Invalid username or password."}
		renderPage(w, h.render, h.log, http.StatusUnauthorized, data)
		return
	case err != nil:
		h.log.Log(logger.LogEntry{Level: "error", Message: "login failed", Error: err, Service: serviceName})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.LoggedIn = true
	s.Username = username
	h.sessions.Save(r.Context(), id, s)

	h.log.Log(logger.LogEntry{Level: "info", Message: "user logged in: " + username, Service: serviceName})
	redirectHome(w, r)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	_, s := sessionFromContext(r.Context())
	data := newPageData(s)

	err := h.users.Register(r.Context(),
		r.FormValue("username"),
		r.FormValue("password"),
		r.FormValue("confirm_password"),
	)
	switch {
	case err == nil:
		data.Notice = &Notice{Level: NoticeSuccess, Text: "Account created! You can now log in."}
	case errors.Is(err, user.ErrEmptyField):
		data.Notice = &Notice{Level: NoticeError, Text: "Username and password cannot be empty."}
	case errors.Is(err, user.ErrDuplicateUser):
		data.Notice = &Notice{Level: NoticeWarning, Text: "Username already exists. Please log in."}
	case errors.Is(err, user.ErrPasswordMismatch):
		data.Notice = &Notice{Level: NoticeError, Text: "Passwords do not match."}
	default:
		h.log.Log(logger.LogEntry{Level: "error", Message: "register failed", Error: err, Service: serviceName})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	renderPage(w, h.render, h.log, http.StatusOK, data)
}

// Logout drops everything stored in the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, _ := sessionFromContext(r.Context())
	h.sessions.Reset(r.Context(), id)
	redirectHome(w, r)
}
