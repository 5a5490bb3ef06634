package contract

import (
	"context"
	"time"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Form() FormRepo
	Submission() SubmissionRepo
	Trigger() TriggerRepo
}

// FormRepo defines the contract for the form repository
type FormRepo interface {
	Create(form *entity.Form) error
	GetBySlug(slug string) (*entity.Form, error)
	GetByID(id int64) (*entity.Form, error)
	Update(form *entity.Form) error
	SetAccepting(id int64, accepting bool, at time.Time) error
}

// SubmissionRepo defines the contract for the submission repository
type SubmissionRepo interface {
	Create(sub *entity.Submission) error
	CountByForm(formID int64) (int, error)
	CountByFormSince(formID int64, since time.Time) (int, error)
}

// TriggerRepo defines the contract for the trigger repository
type TriggerRepo interface {
	Create(trigger *entity.Trigger) error
	GetByID(id string) (*entity.Trigger, error)
	List() ([]*entity.Trigger, error)
	ListByEvent(event string) ([]*entity.Trigger, error)
	Delete(id string) error
}
