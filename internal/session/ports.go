package session

import (
	"context"

	"github.com/Vovarama1992/lingua_voice/internal/catalog"
)

type AuthChoice string

const (
	AuthLogin  AuthChoice = "Login"
	AuthSignUp AuthChoice = "Sign Up"
)

type Page string

const (
	PageLanguageApp Page = "Language App"
	PageSettings    Page = "Settings"
)

// Session is the per-browser state. Page is only meaningful while LoggedIn.
type Session struct {
	LoggedIn   bool
	Username   string
	AuthChoice AuthChoice
	Wallpaper  string // image URL, "" = none
	Page       Page
	Language   string // last selected display name
}

func Default() Session {
	return Session{
		AuthChoice: AuthLogin,
		Page:       PageLanguageApp,
		Language:   catalog.DefaultLanguage,
	}
}

func ParseAuthChoice(s string) (AuthChoice, bool) {
	switch AuthChoice(s) {
	case AuthLogin, AuthSignUp:
		return AuthChoice(s), true
	}
	return "", false
}

func ParsePage(s string) (Page, bool) {
	switch Page(s) {
	case PageLanguageApp, PageSettings:
		return Page(s), true
	}
	return "", false
}

type Store interface {
	New(ctx context.Context) (id string, s Session)
	Get(ctx context.Context, id string) (Session, bool)
	Save(ctx context.Context, id string, s Session)
	// Reset drops everything stored for id and returns fresh defaults.
	Reset(ctx context.Context, id string) Session
}
