package service

import (
	"github.com/rs/zerolog"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
)

// Instance aggregates the services.
type Instance struct {
	Window *windowService
	Intake *intakeService
}

// Deps carries everything the services need.
type Deps struct {
	DM       contract.DataManager
	Registry contract.TriggerRegistry
	Provider contract.FormProvider
	Notifier contract.Notifier
	Identity contract.Identity
	Sink     contract.EventSink
	FormSlug string
	Log      zerolog.Logger
}

func NewInstance(d Deps) *Instance {
	return &Instance{
		Window: newWindow(d.Registry, d.Provider, d.Notifier, d.Identity, d.Log),
		Intake: newIntake(d.DM, d.Sink, d.FormSlug, d.Log),
	}
}
