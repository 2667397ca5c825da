package ports

import (
	"context"
	"fmt"
)

type Stage string

const (
	StageTranslate  Stage = "translate"
	StageSynthesize Stage = "synthesize"
)

// StageError tells which step of a language app run failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type LanguageAppResult struct {
	Language   string // display name
	Code       string
	Translated string
	Audio      []byte // mp3
}

type LanguageAppService interface {
	Run(ctx context.Context, text, languageName string) (LanguageAppResult, error)
}

type SpeechService interface {
	Synthesize(ctx context.Context, text, langCode string) ([]byte, error)
}

type TranslateService interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}
