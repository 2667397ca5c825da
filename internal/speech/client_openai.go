package speech

import (
	"context"
	"io"
	"os"

	"github.com/Vovarama1992/lingua_voice/internal/ai"
)

type OpenAIClient struct {
	client ai.Client
}

func NewOpenAIClient(client ai.Client) *OpenAIClient {
	return &OpenAIClient{client: client}
}

// langCode is not sent, the model follows the language of the text.
func (c *OpenAIClient) Synthesize(ctx context.Context, text, langCode, outPath string) error {
	stream, err := c.client.Speech(ctx, text)
	if err != nil {
		return err
	}
	defer stream.Close()

	return writeFile(outPath, stream)
}

func writeFile(path string, r io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
