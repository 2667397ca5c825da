package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vovarama1992/lingua_voice/internal/catalog"
	"github.com/Vovarama1992/lingua_voice/internal/error_notificator"
	"github.com/Vovarama1992/lingua_voice/internal/ports"
	"github.com/Vovarama1992/lingua_voice/internal/translate"
)

type languageAppService struct {
	translator ports.TranslateService
	speech     ports.SpeechService
	notifier   error_notificator.Notificator
}

func NewLanguageAppService(t ports.TranslateService, s ports.SpeechService, n error_notificator.Notificator) ports.LanguageAppService {
	return &languageAppService{
		translator: t,
		speech:     s,
		notifier:   n,
	}
}

// Run translates text into the named language and voices the translation.
// Speech is only requested once the translation succeeded.
func (s *languageAppService) Run(ctx context.Context, text, languageName string) (ports.LanguageAppResult, error) {
	res := ports.LanguageAppResult{Language: languageName}

	code, ok := catalog.LanguageCode(languageName)
	if !ok {
		return res, &ports.StageError{
			Stage: ports.StageTranslate,
			Err:   fmt.Errorf("%w: %q", translate.ErrUnsupportedLanguage, languageName),
		}
	}
	res.Code = code

	translated, err := s.translator.Translate(ctx, text, code)
	if err != nil {
		if !errors.Is(err, translate.ErrEmptyText) {
			_ = s.notifier.Notify(ctx, string(ports.StageTranslate), err,
				fmt.Sprintf("translation to %s failed", code))
		}
		return res, &ports.StageError{Stage: ports.StageTranslate, Err: err}
	}
	res.Translated = translated

	audio, err := s.speech.Synthesize(ctx, translated, code)
	if err != nil {
		_ = s.notifier.Notify(ctx, string(ports.StageSynthesize), err,
			fmt.Sprintf("speech in %s failed, %d runes", code, len([]rune(translated))))
		return res, &ports.StageError{Stage: ports.StageSynthesize, Err: err}
	}
	res.Audio = audio

	return res, nil
}
