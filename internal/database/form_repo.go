package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

type formRepo struct {
	db dbConn
}

func newFormRepo(db dbConn) contract.FormRepo {
	return &formRepo{db: db}
}

func (r *formRepo) Create(form *entity.Form) error {
	query := `
		INSERT INTO forms (slug, title, public_url, is_accepting)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		form.Slug,
		form.Title,
		form.PublicURL,
		form.IsAccepting,
	)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	form.ID = id
	return nil
}

func (r *formRepo) GetBySlug(slug string) (*entity.Form, error) {
	form := &entity.Form{}
	query := `
		SELECT id, slug, title, public_url, is_accepting, opened_at,
			created_at, updated_at
		FROM forms
		WHERE slug = ?
	`

	err := r.db.QueryRow(query, slug).Scan(
		&form.ID,
		&form.Slug,
		&form.Title,
		&form.PublicURL,
		&form.IsAccepting,
		&form.OpenedAt,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return form, nil
}

func (r *formRepo) GetByID(id int64) (*entity.Form, error) {
	form := &entity.Form{}
	query := `
		SELECT id, slug, title, public_url, is_accepting, opened_at,
			created_at, updated_at
		FROM forms
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&form.ID,
		&form.Slug,
		&form.Title,
		&form.PublicURL,
		&form.IsAccepting,
		&form.OpenedAt,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return form, nil
}

func (r *formRepo) Update(form *entity.Form) error {
	query := `
		UPDATE forms SET
			title = ?,
			public_url = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		form.Title,
		form.PublicURL,
		time.Now().UTC(),
		form.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update form: %w", err)
	}

	return nil
}

// SetAccepting flips the window state. Opening also stamps opened_at, which
// anchors the response count window.
func (r *formRepo) SetAccepting(id int64, accepting bool, at time.Time) error {
	if accepting {
		query := `
			UPDATE forms SET
				is_accepting = 1,
				opened_at = ?,
				updated_at = ?
			WHERE id = ?
		`

		if _, err := r.db.Exec(query, at.UTC(), at.UTC(), id); err != nil {
			return fmt.Errorf("failed to open form: %w", err)
		}
		return nil
	}

	query := `
		UPDATE forms SET
			is_accepting = 0,
			updated_at = ?
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, at.UTC(), id); err != nil {
		return fmt.Errorf("failed to close form: %w", err)
	}
	return nil
}
