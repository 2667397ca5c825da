package translate

import (
	"context"
	"errors"
)

var (
	ErrEmptyText           = errors.New("text to translate is empty")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
)

// Translator — provider client (google, openai)
type Translator interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

type Service interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}
