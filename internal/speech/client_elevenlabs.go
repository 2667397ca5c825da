package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
)

const elevenLabsURL = "https://api.elevenlabs.io/v1/text-to-speech/"

type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	baseURL string
	httpCli *http.Client
}

func NewElevenLabsClient(apiKey, voiceID string, httpCli *http.Client) *ElevenLabsClient {
	if httpCli == nil {
		httpCli = http.DefaultClient
	}
	return &ElevenLabsClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: elevenLabsURL,
		httpCli: httpCli,
	}
}

// TEXT → SPEECH. The multilingual model detects the language from the text.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, langCode, outPath string) error {
	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.voiceID, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("elevenlabs error: status %d: %s", resp.StatusCode, string(b))
	}

	return writeFile(outPath, resp.Body)
}
