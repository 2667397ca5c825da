package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
)

const serviceName = "lingua_voice"

func renderPage(w http.ResponseWriter, rd *Renderer, log *logger.ZapLogger, status int, data pageData) {
	if err := rd.Render(w, status, data); err != nil {
		log.Log(logger.LogEntry{Level: "error", Message: "render failed", Error: err, Service: serviceName})
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
