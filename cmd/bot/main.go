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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	tele "gopkg.in/telebot.v4"

	"github.com/diegoclair/form-window-bot/internal/config"
	"github.com/diegoclair/form-window-bot/internal/database"
	"github.com/diegoclair/form-window-bot/internal/domain"
	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/service"
	"github.com/diegoclair/form-window-bot/internal/forms"
	"github.com/diegoclair/form-window-bot/internal/handlers"
	"github.com/diegoclair/form-window-bot/internal/identity"
	"github.com/diegoclair/form-window-bot/internal/notify"
	"github.com/diegoclair/form-window-bot/internal/triggers"
	"github.com/diegoclair/form-window-bot/migrator/sqlite"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	if envErr != nil {
		logger.Debug().Msg(".env file not found")
	}

	if cfg.IntakeToken == "" {
		logger.Fatal().Msg("INTAKE_TOKEN is required")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	dm := database.NewInstance(db)

	scheduleMgr := config.NewScheduleManager(cfg.SchedulePath)
	if err := scheduleMgr.Reload(); err != nil {
		logger.Fatal().Err(err).Msg("failed to load schedule")
	}

	provider := forms.NewProvider(dm, cfg.FormSlug, logger)
	if err := provider.Ensure(cfg.FormTitle, cfg.FormPublicURL); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure form")
	}

	notifier, err := buildNotifier(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build notifier")
	}

	registry := triggers.New(dm, logger)
	defer registry.Stop()

	svc := service.NewInstance(service.Deps{
		DM:       dm,
		Registry: registry,
		Provider: provider,
		Notifier: notifier,
		Identity: identity.NewStatic(cfg.NotifyRecipient),
		Sink:     registry,
		FormSlug: cfg.FormSlug,
		Log:      logger,
	})

	// Actions must be bound before the first cycle arms anything.
	registry.RegisterAction(domain.ActionOpenWindow, func() error {
		return svc.Window.Open(scheduleMgr.Current())
	})
	registry.RegisterAction(domain.ActionCloseWindow, func() error {
		return svc.Window.Close(scheduleMgr.Current())
	})
	registry.RegisterAction(domain.ActionCheckLimit, func() error {
		return svc.Window.CheckLimit(scheduleMgr.Current())
	})
	registry.RegisterAction(domain.ActionRunCycle, func() error {
		// A failed cycle leaves the schedule unarmed until the file is
		// touched or the process restarts.
		return svc.Window.RunCycle(scheduleMgr.Current(), time.Now())
	})

	if err := registry.Run(func() error {
		return svc.Window.Initialize(scheduleMgr.Current(), time.Now())
	}); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize window schedule")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		err := config.Watch(ctx, cfg.SchedulePath, logger, func() {
			if err := scheduleMgr.Reload(); err != nil {
				logger.Error().Err(err).Msg("schedule reload failed, keeping previous schedule")
				return
			}
			if err := registry.Run(func() error {
				return svc.Window.RunCycle(scheduleMgr.Current(), time.Now())
			}); err != nil {
				logger.Error().Err(err).Msg("failed to apply reloaded schedule")
			}
		})
		if err != nil {
			logger.Error().Err(err).Msg("schedule watcher stopped")
		}
	}()

	handler := handlers.New(svc.Window, svc.Intake, scheduleMgr, cfg.IntakeToken, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/forms/submit", handler.HandleSubmit)
	mux.HandleFunc("/forms/status", handler.HandleStatus)
	mux.HandleFunc("/window/open", handler.HandleOpen)
	mux.HandleFunc("/window/close", handler.HandleClose)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

func buildNotifier(cfg *config.Config, logger zerolog.Logger) (contract.Notifier, error) {
	switch cfg.NotifierBackend {
	case "slack":
		if cfg.SlackBotToken == "" {
			return nil, errors.New("SLACK_BOT_TOKEN is required for the slack notifier")
		}
		return notify.NewSlack(slack.New(cfg.SlackBotToken), cfg.SlackChannelID, logger), nil

	case "telegram":
		if cfg.TelegramToken == "" {
			return nil, errors.New("TELEGRAM_TOKEN is required for the telegram notifier")
		}
		bot, err := tele.NewBot(tele.Settings{
			Token:  cfg.TelegramToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram bot: %w", err)
		}
		return notify.NewTelegram(bot, cfg.TelegramChatID, logger), nil

	case "log":
		return notify.NewLog(logger), nil

	default:
		return nil, fmt.Errorf("unknown notifier backend %q", cfg.NotifierBackend)
	}
}
