package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/form-window-bot/internal/domain"
	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

type windowService struct {
	registry contract.TriggerRegistry
	provider contract.FormProvider
	notifier contract.Notifier
	identity contract.Identity
	log      zerolog.Logger
}

func newWindow(registry contract.TriggerRegistry, provider contract.FormProvider, notifier contract.Notifier, identity contract.Identity, log zerolog.Logger) *windowService {
	return &windowService{
		registry: registry,
		provider: provider,
		notifier: notifier,
		identity: identity,
		log:      log.With().Str("component", "window").Logger(),
	}
}

// Initialize bootstraps the first cycle. It runs once at daemon start and
// again whenever the schedule file changes.
func (s *windowService) Initialize(cfg entity.ScheduleConfig, now time.Time) error {
	s.log.Info().Msg("initializing window schedule")
	return s.RunCycle(cfg, now)
}

// RunCycle rebuilds the whole trigger schedule from cfg and reconciles the
// window state. Steps run in a fixed order: validate, clear, arm edges,
// reconcile, arm limit watcher, arm next cycle. The first failure aborts the
// cycle and surfaces as-is.
func (s *windowService) RunCycle(cfg entity.ScheduleConfig, now time.Time) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	now = now.In(cfg.Location)

	if err := s.clearTriggers(); err != nil {
		return err
	}

	var nextOpen, nextClose time.Time

	if cfg.OpenRule != nil {
		nextOpen = resolveNext(now, *cfg.OpenRule)
		if _, err := s.registry.CreateOneShotTrigger(domain.ActionOpenWindow, nextOpen); err != nil {
			return fmt.Errorf("failed to arm open trigger: %w", err)
		}
		s.log.Info().Time("fire_at", nextOpen).Msg("armed open trigger")
	}

	if cfg.CloseRule != nil {
		nextClose = resolveNext(now, *cfg.CloseRule)
		if _, err := s.registry.CreateOneShotTrigger(domain.ActionCloseWindow, nextClose); err != nil {
			return fmt.Errorf("failed to arm close trigger: %w", err)
		}
		s.log.Info().Time("fire_at", nextClose).Msg("armed close trigger")
	}

	if cfg.OpenRule != nil && cfg.CloseRule != nil {
		if err := s.reconcile(cfg, nextOpen, nextClose); err != nil {
			return err
		}
	} else {
		s.log.Debug().Msg("single-edge schedule, skipping state reconciliation")
	}

	if cfg.ResponseLimit != nil {
		if _, err := s.registry.CreateEventTrigger(domain.ActionCheckLimit, domain.EventFormSubmission); err != nil {
			return fmt.Errorf("failed to arm limit watcher: %w", err)
		}
		s.log.Info().Int("limit", *cfg.ResponseLimit).Msg("armed limit watcher")
	}

	reinitAt := now.AddDate(0, 0, 7)
	if _, err := s.registry.CreateOneShotTrigger(domain.ActionRunCycle, reinitAt); err != nil {
		return fmt.Errorf("failed to arm next cycle: %w", err)
	}
	s.log.Info().Time("fire_at", reinitAt).Msg("armed next cycle")

	return nil
}

// clearTriggers deletes every registered trigger so re-running a cycle can
// never stack duplicates.
func (s *windowService) clearTriggers() error {
	triggers, err := s.registry.ListTriggers()
	if err != nil {
		return fmt.Errorf("failed to list triggers: %w", err)
	}

	for _, t := range triggers {
		if err := s.registry.DeleteTrigger(t); err != nil {
			return fmt.Errorf("failed to delete trigger %s: %w", t.ID, err)
		}
	}

	if len(triggers) > 0 {
		s.log.Info().Int("count", len(triggers)).Msg("cleared triggers")
	}

	return nil
}

// reconcile corrects the stored accepting state against where the schedule
// says the window is right now. The window should be open exactly when the
// next close edge comes before (or lands on) the next open edge.
func (s *windowService) reconcile(cfg entity.ScheduleConfig, nextOpen, nextClose time.Time) error {
	shouldBeOpen := !nextClose.After(nextOpen)

	accepting, err := s.provider.IsAccepting()
	if err != nil {
		return fmt.Errorf("failed to read accepting state: %w", err)
	}

	if accepting == shouldBeOpen {
		return nil
	}

	if shouldBeOpen {
		s.log.Info().Msg("window should be open, correcting state")
		return s.Open(cfg)
	}

	s.log.Info().Msg("window should be closed, correcting state")
	return s.Close(cfg)
}

// Open starts accepting submissions and announces it when configured. The
// state write is idempotent; re-opening an open window is safe.
func (s *windowService) Open(cfg entity.ScheduleConfig) error {
	if err := s.provider.SetAccepting(true); err != nil {
		return fmt.Errorf("failed to open window: %w", err)
	}
	s.log.Info().Msg("window opened")

	if !cfg.Notify.Has(entity.NotifyOnOpen) {
		return nil
	}

	url, err := s.provider.PublicURL()
	if err != nil {
		return fmt.Errorf("failed to get form url: %w", err)
	}

	return s.notify("Submission window open",
		fmt.Sprintf("The submission window is now open. Send your response: %s", url))
}

// Close stops accepting submissions and announces it when configured.
func (s *windowService) Close(cfg entity.ScheduleConfig) error {
	if err := s.provider.SetAccepting(false); err != nil {
		return fmt.Errorf("failed to close window: %w", err)
	}
	s.log.Info().Msg("window closed")

	if !cfg.Notify.Has(entity.NotifyOnClose) {
		return nil
	}

	count, err := s.provider.ResponseCount()
	if err != nil {
		return fmt.Errorf("failed to count responses: %w", err)
	}

	return s.notify("Submission window closed",
		fmt.Sprintf("The submission window is now closed. %d responses received.", count))
}

// CheckLimit fires on every submission while a response limit is configured.
// Reaching the limit closes the window early; the limit notice goes out
// before the close notice.
func (s *windowService) CheckLimit(cfg entity.ScheduleConfig) error {
	if cfg.ResponseLimit == nil {
		return nil
	}

	count, err := s.provider.ResponseCount()
	if err != nil {
		return fmt.Errorf("failed to count responses: %w", err)
	}

	if count < *cfg.ResponseLimit {
		return nil
	}

	s.log.Info().Int("count", count).Int("limit", *cfg.ResponseLimit).Msg("response limit reached, closing window")

	if cfg.Notify.Has(entity.NotifyOnLimit) {
		if err := s.notify("Response limit reached",
			fmt.Sprintf("The form reached %d of %d responses and will close now.", count, *cfg.ResponseLimit)); err != nil {
			return err
		}
	}

	return s.Close(cfg)
}

// Status reports the live window state together with the resolved next edges.
func (s *windowService) Status(cfg entity.ScheduleConfig, now time.Time) (entity.WindowStatus, error) {
	var status entity.WindowStatus

	if err := cfg.Validate(); err != nil {
		return status, fmt.Errorf("invalid schedule: %w", err)
	}

	now = now.In(cfg.Location)

	accepting, err := s.provider.IsAccepting()
	if err != nil {
		return status, fmt.Errorf("failed to read accepting state: %w", err)
	}

	count, err := s.provider.ResponseCount()
	if err != nil {
		return status, fmt.Errorf("failed to count responses: %w", err)
	}

	status.Accepting = accepting
	status.ResponseCount = count
	status.ResponseLimit = cfg.ResponseLimit

	if cfg.OpenRule != nil {
		status.NextOpen = resolveNext(now, *cfg.OpenRule)
	}
	if cfg.CloseRule != nil {
		status.NextClose = resolveNext(now, *cfg.CloseRule)
	}

	return status, nil
}

// notify resolves the configured recipient and sends through the notifier.
func (s *windowService) notify(subject, body string) error {
	recipient, err := s.identity.CurrentUserEmail()
	if err != nil {
		return fmt.Errorf("failed to resolve recipient: %w", err)
	}

	if err := s.notifier.Send(recipient, subject, body); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
