// Package forms exposes the managed form to the scheduler.
package forms

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// Provider implements contract.FormProvider for the single configured form.
// Every read goes to storage so decisions always see fresh state.
type Provider struct {
	dm   contract.DataManager
	slug string
	log  zerolog.Logger
}

func NewProvider(dm contract.DataManager, slug string, log zerolog.Logger) *Provider {
	return &Provider{
		dm:   dm,
		slug: slug,
		log:  log.With().Str("component", "forms").Logger(),
	}
}

// Ensure creates the form row on first start and keeps title and URL in sync
// with configuration.
func (p *Provider) Ensure(title, publicURL string) error {
	form, err := p.dm.Form().GetBySlug(p.slug)
	if err != nil {
		return fmt.Errorf("failed to load form: %w", err)
	}

	if form == nil {
		form = &entity.Form{
			Slug:      p.slug,
			Title:     title,
			PublicURL: publicURL,
		}
		if err := p.dm.Form().Create(form); err != nil {
			return fmt.Errorf("failed to create form: %w", err)
		}
		p.log.Info().Str("slug", p.slug).Msg("created form")
		return nil
	}

	if form.Title != title || form.PublicURL != publicURL {
		form.Title = title
		form.PublicURL = publicURL
		if err := p.dm.Form().Update(form); err != nil {
			return fmt.Errorf("failed to update form: %w", err)
		}
		p.log.Info().Str("slug", p.slug).Msg("updated form settings")
	}

	return nil
}

func (p *Provider) IsAccepting() (bool, error) {
	form, err := p.get()
	if err != nil {
		return false, err
	}
	return form.IsAccepting, nil
}

func (p *Provider) SetAccepting(accepting bool) error {
	form, err := p.get()
	if err != nil {
		return err
	}

	if err := p.dm.Form().SetAccepting(form.ID, accepting, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set accepting state: %w", err)
	}

	return nil
}

// ResponseCount counts submissions received since the window last opened. A
// form that never opened counts everything it has.
func (p *Provider) ResponseCount() (int, error) {
	form, err := p.get()
	if err != nil {
		return 0, err
	}

	if form.OpenedAt != nil {
		return p.dm.Submission().CountByFormSince(form.ID, *form.OpenedAt)
	}

	return p.dm.Submission().CountByForm(form.ID)
}

func (p *Provider) PublicURL() (string, error) {
	form, err := p.get()
	if err != nil {
		return "", err
	}
	return form.PublicURL, nil
}

func (p *Provider) get() (*entity.Form, error) {
	form, err := p.dm.Form().GetBySlug(p.slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load form: %w", err)
	}
	if form == nil {
		return nil, entity.ErrFormNotFound
	}
	return form, nil
}
