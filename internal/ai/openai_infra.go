package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
	voice  openai.SpeechVoice
}

func NewOpenAIClient(apiKey, model, voice string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		voice:  openai.SpeechVoice(voice),
	}
}

func (c *OpenAIClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", describeError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// Speech returns the mp3 stream, the caller closes it.
func (c *OpenAIClient) Speech(ctx context.Context, text string) (io.ReadCloser, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, describeError(err)
	}
	return resp, nil
}

// error diagnostics
func describeError(err error) error {
	msg := strings.ToLower(err.Error())

	var hint string
	switch {
	case strings.Contains(msg, "status code: 401"):
		hint = "invalid OpenAI API key"
	case strings.Contains(msg, "status code: 404"):
		hint = "model not found"
	case strings.Contains(msg, "status code: 429"):
		hint = "OpenAI rate limit exceeded"
	case strings.Contains(msg, "status code: 400"):
		hint = "bad request to OpenAI"
	case strings.Contains(msg, "status code: 500"):
		hint = "OpenAI internal error"
	default:
		return fmt.Errorf("openai: %w", err)
	}
	return fmt.Errorf("openai: %s: %w", hint, err)
}
