package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"unicode"
)

const (
	googleTTSURL = "https://translate.google.com/translate_tts"
	// the endpoint rejects longer inputs
	googleMaxChunk = 100
)

// GoogleClient uses the Google Translate speech endpoint (what gTTS calls).
type GoogleClient struct {
	baseURL string
	httpCli *http.Client
}

func NewGoogleClient(httpCli *http.Client) *GoogleClient {
	if httpCli == nil {
		httpCli = http.DefaultClient
	}
	return &GoogleClient{baseURL: googleTTSURL, httpCli: httpCli}
}

// Synthesize requests each chunk in turn and appends the mp3 frames.
func (c *GoogleClient) Synthesize(ctx context.Context, text, langCode, outPath string) error {
	chunks := splitText(text, googleMaxChunk)
	if len(chunks) == 0 {
		return ErrEmptyText
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	for i, chunk := range chunks {
		if err := c.fetchChunk(ctx, out, chunk, langCode, i, len(chunks)); err != nil {
			return err
		}
	}
	return out.Close()
}

func (c *GoogleClient) fetchChunk(ctx context.Context, w io.Writer, chunk, langCode string, idx, total int) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", langCode)
	q.Set("q", chunk)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("google tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("google tts error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("google tts read: %w", err)
	}
	return nil
}

// splitText cuts text into pieces of at most max runes, preferring to break
// after punctuation, then at spaces.
func splitText(text string, max int) []string {
	var chunks []string
	rest := []rune(strings.TrimSpace(text))

	for len(rest) > 0 {
		if len(rest) <= max {
			chunks = append(chunks, string(rest))
			break
		}

		cut := -1
		for i := max - 1; i > 0; i-- {
			if unicode.IsPunct(rest[i]) && (i+1 >= len(rest) || unicode.IsSpace(rest[i+1])) {
				cut = i + 1
				break
			}
		}
		if cut < 0 {
			for i := max; i > 0; i-- {
				if unicode.IsSpace(rest[i]) {
					cut = i
					break
				}
			}
		}
		if cut < 0 {
			cut = max
		}

		if piece := strings.TrimSpace(string(rest[:cut])); piece != "" {
			chunks = append(chunks, piece)
		}
		rest = []rune(strings.TrimSpace(string(rest[cut:])))
	}
	return chunks
}
