package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

const googleTranslateURL = "https://translate.googleapis.com/translate_a/single"

// GoogleClient talks to the public Google Translate web endpoint, no API key.
type GoogleClient struct {
	baseURL string
	httpCli *http.Client
}

func NewGoogleClient(httpCli *http.Client) *GoogleClient {
	if httpCli == nil {
		httpCli = http.DefaultClient
	}
	return &GoogleClient{baseURL: googleTranslateURL, httpCli: httpCli}
}

func (c *GoogleClient) Translate(ctx context.Context, text, targetCode string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", targetCode)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("google translate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("google translate read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google translate error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseGoogleResponse(body)
}

// response: [[["Bonjour","hello",null,null,10], ...], null, "en", ...]
func parseGoogleResponse(body []byte) (string, error) {
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decode google translate: %w", err)
	}
	if len(raw) == 0 {
		return "", errors.New("google translate: empty response")
	}

	segments, ok := raw[0].([]any)
	if !ok || len(segments) == 0 {
		return "", errors.New("google translate: no translation in response")
	}

	var b strings.Builder
	for _, s := range segments {
		seg, ok := s.([]any)
		if !ok || len(seg) == 0 {
			continue
		}
		if part, ok := seg[0].(string); ok {
			b.WriteString(part)
		}
	}

	if b.Len() == 0 {
		return "", errors.New("google translate: no translation in response")
	}
	return b.String(), nil
}
