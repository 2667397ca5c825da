package translate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator struct {
	calls int
	out   string
	err   error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetCode string) (string, error) {
	f.calls++
	return f.out, f.err
}

func TestService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		code    string
		wantErr error
	}{
		{"empty text", "", "fr", ErrEmptyText},
		{"blank text", "  \n", "fr", ErrEmptyText},
		{"unsupported code", "hello", "xx", ErrUnsupportedLanguage},
		{"display name is not a code", "hello", "French", ErrUnsupportedLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeTranslator{out: "bonjour"}
			_, err := NewService(f).Translate(context.Background(), tt.text, tt.code)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.calls)
		})
	}
}

func TestService_DelegatesOnce(t *testing.T) {
	f := &fakeTranslator{out: "bonjour"}
	got, err := NewService(f).Translate(context.Background(), "hello", "fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", got)
	assert.Equal(t, 1, f.calls)
}

func TestService_WrapsProviderError(t *testing.T) {
	base := errors.New("connection refused")
	f := &fakeTranslator{err: base}

	_, err := NewService(f).Translate(context.Background(), "hello", "fr")
	require.Error(t, err)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, f.calls)
}

func TestGoogleClient_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "fr", q.Get("tl"))
		assert.Equal(t, "hello. how are you", q.Get("q"))
		_, _ = io.WriteString(w, `[[["Bonjour. ","hello. ",null,null,10],["comment vas-tu","how are you",null,null,3]],null,"en"]`)
	}))
	defer srv.Close()

	c := NewGoogleClient(srv.Client())
	c.baseURL = srv.URL

	got, err := c.Translate(context.Background(), "hello. how are you", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour. comment vas-tu", got)
}

func TestGoogleClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGoogleClient(srv.Client())
	c.baseURL = srv.URL

	_, err := c.Translate(context.Background(), "hello", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestParseGoogleResponse_Malformed(t *testing.T) {
	for _, body := range []string{`not json`, `[]`, `[null]`, `[[]]`, `[[[null]]]`} {
		_, err := parseGoogleResponse([]byte(body))
		assert.Error(t, err, body)
	}
}

type fakeAI struct {
	got []openai.ChatCompletionMessage
	out string
	err error
}

func (f *fakeAI) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	f.got = messages
	return f.out, f.err
}

func (f *fakeAI) Speech(ctx context.Context, text string) (io.ReadCloser, error) {
	return nil, errors.New("not used")
}

func TestOpenAITranslator(t *testing.T) {
	f := &fakeAI{out: "  Hallo  \n"}
	got, err := NewOpenAITranslator(f).Translate(context.Background(), "hello", "de")
	require.NoError(t, err)
	assert.Equal(t, "Hallo", got)

	require.Len(t, f.got, 2)
	assert.Contains(t, f.got[0].Content, "German")
	assert.Equal(t, "hello", f.got[1].Content)
}

func TestOpenAITranslator_EmptyReply(t *testing.T) {
	_, err := NewOpenAITranslator(&fakeAI{out: " "}).Translate(context.Background(), "hello", "de")
	assert.Error(t, err)
}
