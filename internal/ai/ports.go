package ai

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// Client is what the translate and speech providers need from OpenAI.
type Client interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
	Speech(ctx context.Context, text string) (io.ReadCloser, error)
}
