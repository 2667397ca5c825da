package speech

import (
	"context"
	"errors"
)

var ErrEmptyText = errors.New("text to synthesize is empty")

// TTSClient writes mp3 audio for text to outPath.
type TTSClient interface {
	Synthesize(ctx context.Context, text, langCode, outPath string) error
}
