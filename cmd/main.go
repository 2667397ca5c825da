package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vovarama1992/lingua_voice/internal/ai"
	"github.com/Vovarama1992/lingua_voice/internal/config"
	"github.com/Vovarama1992/lingua_voice/internal/delivery"
	"github.com/Vovarama1992/lingua_voice/internal/domain"
	"github.com/Vovarama1992/lingua_voice/internal/error_notificator"
	"github.com/Vovarama1992/lingua_voice/internal/session"
	"github.com/Vovarama1992/lingua_voice/internal/speech"
	"github.com/Vovarama1992/lingua_voice/internal/translate"
	"github.com/Vovarama1992/lingua_voice/internal/user"
)

const service = "lingua_voice"

var (
	addrFlag string
	envFile  string

	rootCmd = &cobra.Command{
		Use:           "lingua_voice",
		Short:         "Translate text and listen to it in 14 languages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (default :$PORT)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")
}

func run(cmd *cobra.Command, _ []string) error {

	// =========================================================================
	// CONFIG / LOGGER
	// =========================================================================

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	addr := cfg.Addr()
	if cmd.Flags().Changed("addr") {
		addr = addrFlag
	}

	baseLogger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = baseLogger.Sync() }()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (translation / TTS)
	// =========================================================================

	httpCli := &http.Client{Timeout: cfg.UpstreamTimeout}

	var openAIClient *ai.OpenAIClient
	if cfg.TranslateProvider == config.ProviderOpenAI || cfg.SpeechProvider == config.ProviderOpenAI {
		openAIClient = ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITTSVoice)
	}

	var translator translate.Translator
	switch cfg.TranslateProvider {
	case config.ProviderOpenAI:
		translator = translate.NewOpenAITranslator(openAIClient)
	default:
		translator = translate.NewGoogleClient(httpCli)
	}

	var tts speech.TTSClient
	switch cfg.SpeechProvider {
	case config.ProviderOpenAI:
		tts = speech.NewOpenAIClient(openAIClient)
	case config.ProviderElevenLabs:
		tts = speech.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, httpCli)
	default:
		tts = speech.NewGoogleClient(httpCli)
	}

	// =========================================================================
	// SERVICES
	// =========================================================================

	sessions := session.NewMemoryStore(cfg.SessionTTL)
	userService := user.NewService(user.NewInfra(cfg.SeedUsername, cfg.SeedPassword))
	translateService := translate.NewService(translator)
	speechService := speech.NewService(tts, cfg.AudioTempDir)
	errService := error_notificator.NewService(error_notificator.NewInfra(zl, service))
	appService := domain.NewLanguageAppService(translateService, speechService, errService)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	render, err := delivery.NewRenderer()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)
	if cfg.UpstreamTimeout > 0 {
		// translation and speech run one after the other
		r.Use(middleware.Timeout(2*cfg.UpstreamTimeout + 5*time.Second))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	delivery.RegisterRoutes(r, delivery.Handlers{
		Auth:     delivery.NewAuthHandler(sessions, userService, render, zl),
		Nav:      delivery.NewNavHandler(sessions),
		App:      delivery.NewLanguageAppHandler(sessions, appService, render, zl),
		Settings: delivery.NewSettingsHandler(sessions, render, zl),
	}, sessions, userService, zl, cfg.TranslateRateLimit)

	// =========================================================================
	// START SERVER
	// =========================================================================

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: fmt.Sprintf("listening at %s (translate=%s, speech=%s)", addr, cfg.TranslateProvider, cfg.SpeechProvider),
			Service: service,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Log(logger.LogEntry{Level: "info", Message: "shutting down", Service: service})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
