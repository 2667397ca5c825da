package speech

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/multierr"
)

type Service struct {
	tts     TTSClient
	tempDir string
}

// NewService uses os.TempDir() when tempDir is empty.
func NewService(tts TTSClient, tempDir string) *Service {
	return &Service{tts: tts, tempDir: tempDir}
}

// Synthesize returns the mp3 bytes. The intermediate temp file is removed
// before returning on every path.
func (s *Service) Synthesize(ctx context.Context, text, langCode string) (audio []byte, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	f, err := os.CreateTemp(s.tempDir, "tts-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("create temp audio: %w", err)
	}
	path := f.Name()

	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = multierr.Append(err, fmt.Errorf("remove temp audio: %w", rmErr))
			audio = nil
		}
	}()

	// the provider reopens the file by path
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close temp audio: %w", err)
	}

	if err := s.tts.Synthesize(ctx, text, langCode, path); err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}

	audio, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read temp audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, errors.New("synthesize speech: provider returned no audio")
	}
	return audio, nil
}
