// Package config loads runtime settings from the environment (and an
// optional .env file).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderGoogle     = "google"
	ProviderOpenAI     = "openai"
	ProviderElevenLabs = "elevenlabs"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	TranslateProvider string `env:"TRANSLATE_PROVIDER" envDefault:"google"`
	SpeechProvider    string `env:"SPEECH_PROVIDER" envDefault:"google"`

	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel    string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAITTSVoice string `env:"OPENAI_TTS_VOICE" envDefault:"alloy"`

	ElevenLabsAPIKey  string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string `env:"ELEVENLABS_VOICE_ID" envDefault:"EXAVITQu4vr4xnSDxMaL"`

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	AudioTempDir    string        `env:"AUDIO_TEMP_DIR"` // "" = os.TempDir()

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"` // idle lifetime, 0 keeps sessions forever

	SeedUsername string `env:"SEED_USERNAME" envDefault:"admin"`
	SeedPassword string `env:"SEED_PASSWORD" envDefault:"admin"`

	CORSOrigins        []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	TranslateRateLimit int      `env:"TRANSLATE_RATE_LIMIT" envDefault:"30"` // per minute per IP, 0 disables
}

// Load reads .env (if present) and the process environment.
func Load(envFiles ...string) (*Config, error) {
	// missing .env is fine, a broken one is not
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate collects every problem instead of stopping at the first one.
func (c *Config) Validate() error {
	var errs []string

	if c.Port == "" {
		errs = append(errs, "PORT must not be empty")
	}

	switch c.TranslateProvider {
	case ProviderGoogle:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			errs = append(errs, "OPENAI_API_KEY is required for TRANSLATE_PROVIDER=openai")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown TRANSLATE_PROVIDER %q", c.TranslateProvider))
	}

	switch c.SpeechProvider {
	case ProviderGoogle:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			errs = append(errs, "OPENAI_API_KEY is required for SPEECH_PROVIDER=openai")
		}
	case ProviderElevenLabs:
		if c.ElevenLabsAPIKey == "" {
			errs = append(errs, "ELEVENLABS_API_KEY is required for SPEECH_PROVIDER=elevenlabs")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown SPEECH_PROVIDER %q", c.SpeechProvider))
	}

	if c.UpstreamTimeout < 0 {
		errs = append(errs, "UPSTREAM_TIMEOUT must not be negative")
	}
	if c.SessionTTL < 0 {
		errs = append(errs, "SESSION_TTL must not be negative")
	}
	if c.TranslateRateLimit < 0 {
		errs = append(errs, "TRANSLATE_RATE_LIMIT must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
