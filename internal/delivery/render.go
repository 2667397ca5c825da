package delivery

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/Vovarama1992/lingua_voice/internal/catalog"
	"github.com/Vovarama1992/lingua_voice/internal/ports"
	"github.com/Vovarama1992/lingua_voice/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

type NoticeLevel string

const (
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
	NoticeSuccess NoticeLevel = "success"
)

type Notice struct {
	Level NoticeLevel
	Text  string
}

type resultView struct {
	Language   string
	Lang       string
	Translated string
	AudioSrc   template.URL
	Size       string
}

type pageData struct {
	Session session.Session
	Notice  *Notice

	// auth view
	AuthChoices []string
	AuthChoice  string
	SignUp      bool

	// navigation
	Pages      []string
	Page       string
	OnSettings bool

	// language app view
	Languages []catalog.Language
	Text      string
	Result    *resultView

	// settings view
	Wallpapers    []catalog.Wallpaper
	WallpaperName string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func newPageData(s session.Session) pageData {
	return pageData{
		Session:       s,
		AuthChoices:   []string{string(session.AuthLogin), string(session.AuthSignUp)},
		AuthChoice:    string(s.AuthChoice),
		SignUp:        s.AuthChoice == session.AuthSignUp,
		Pages:         []string{string(session.PageLanguageApp), string(session.PageSettings)},
		Page:          string(s.Page),
		OnSettings:    s.Page == session.PageSettings,
		Languages:     catalog.Languages(),
		Wallpapers:    catalog.Wallpapers(),
		WallpaperName: catalog.WallpaperName(s.Wallpaper),
	}
}

func newResultView(res ports.LanguageAppResult) *resultView {
	lang := res.Code
	if tag, err := catalog.LanguageTag(res.Code); err == nil {
		lang = tag.String()
	}
	return &resultView{
		Language:   res.Language,
		Lang:       lang,
		Translated: res.Translated,
		AudioSrc:   template.URL("data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(res.Audio)),
		Size:       humanize.Bytes(uint64(len(res.Audio))),
	}
}

// Render buffers the page; nothing is written to w on a template error.
func (rd *Renderer) Render(w http.ResponseWriter, status int, data pageData) error {
	var buf bytes.Buffer
	if err := rd.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
