package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/lingua_voice/internal/catalog"
)

type service struct {
	client Translator
}

func NewService(client Translator) Service {
	return &service{client: client}
}

// Translate makes exactly one provider call, no retries.
func (s *service) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	if !catalog.IsSupportedCode(targetCode) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, targetCode)
	}

	out, err := s.client.Translate(ctx, text, targetCode)
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", targetCode, err)
	}
	return out, nil
}
