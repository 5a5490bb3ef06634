package contract

import (
	"time"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// TriggerRegistry is the window service's view of the trigger host. The
// registry holds every trigger this daemon has armed; a cycle clears it
// completely before re-arming.
type TriggerRegistry interface {
	ListTriggers() ([]entity.Trigger, error)
	DeleteTrigger(t entity.Trigger) error
	CreateOneShotTrigger(action string, at time.Time) (entity.Trigger, error)
	CreateEventTrigger(action, event string) (entity.Trigger, error)
}

// FormProvider is the window service's view of the managed form. Reads go to
// storage on every call; decisions never run on cached state.
type FormProvider interface {
	IsAccepting() (bool, error)
	SetAccepting(accepting bool) error
	ResponseCount() (int, error)
	PublicURL() (string, error)
}

// Notifier delivers one notification to a recipient.
type Notifier interface {
	Send(recipient, subject, body string) error
}

// Identity resolves the notification recipient for this deployment.
type Identity interface {
	CurrentUserEmail() (string, error)
}

// EventSink receives domain events and fans them out to event triggers.
type EventSink interface {
	DispatchEvent(event string)
}
