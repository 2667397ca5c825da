package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vovarama1992/lingua_voice/internal/ai"
	"github.com/Vovarama1992/lingua_voice/internal/catalog"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAITranslator struct {
	client ai.Client
}

func NewOpenAITranslator(client ai.Client) *OpenAITranslator {
	return &OpenAITranslator{client: client}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, targetCode string) (string, error) {
	name, ok := catalog.LanguageName(targetCode)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLanguage, targetCode)
	}

	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleSystem,
			Content: fmt.Sprintf("You are a translator. Translate the user's text into %s (%s). "+
				"Reply with the translation only, without quotes or comments.", name, targetCode),
		},
		{Role: openai.ChatMessageRoleUser, Content: text},
	}

	out, err := t.client.GetCompletion(ctx, messages)
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", errors.New("openai: empty translation")
	}
	return out, nil
}
