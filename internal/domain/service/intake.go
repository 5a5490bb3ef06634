package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/form-window-bot/internal/domain"
	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

type intakeService struct {
	dm   contract.DataManager
	sink contract.EventSink
	slug string
	log  zerolog.Logger
}

func newIntake(dm contract.DataManager, sink contract.EventSink, slug string, log zerolog.Logger) *intakeService {
	return &intakeService{
		dm:   dm,
		sink: sink,
		slug: slug,
		log:  log.With().Str("component", "intake").Logger(),
	}
}

// Submit records a response while the window is open and dispatches the
// submission event so the limit watcher can react in line. The accepting
// check and the insert share one transaction.
func (s *intakeService) Submit(ctx context.Context, respondent, payload string) (*entity.Submission, error) {
	var sub *entity.Submission

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		form, err := dm.Form().GetBySlug(s.slug)
		if err != nil {
			return err
		}
		if form == nil {
			return entity.ErrFormNotFound
		}
		if !form.IsAccepting {
			return entity.ErrWindowClosed
		}

		sub = &entity.Submission{
			FormID:      form.ID,
			Respondent:  respondent,
			Payload:     payload,
			SubmittedAt: time.Now().UTC(),
		}

		return dm.Submission().Create(sub)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("submission_id", sub.ID).Str("respondent", respondent).Msg("submission recorded")

	s.sink.DispatchEvent(domain.EventFormSubmission)

	return sub, nil
}
