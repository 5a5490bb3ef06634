package contract

import (
	"context"
	"time"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// WindowService drives the weekly submission window: it rebuilds the trigger
// schedule, reconciles window state and executes the open/close/limit actions.
type WindowService interface {
	Initialize(cfg entity.ScheduleConfig, now time.Time) error
	RunCycle(cfg entity.ScheduleConfig, now time.Time) error
	Open(cfg entity.ScheduleConfig) error
	Close(cfg entity.ScheduleConfig) error
	CheckLimit(cfg entity.ScheduleConfig) error
	Status(cfg entity.ScheduleConfig, now time.Time) (entity.WindowStatus, error)
}

// IntakeService records incoming form responses.
type IntakeService interface {
	Submit(ctx context.Context, respondent, payload string) (*entity.Submission, error)
}
