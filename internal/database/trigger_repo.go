package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

type triggerRepo struct {
	db dbConn
}

func newTriggerRepo(db dbConn) contract.TriggerRepo {
	return &triggerRepo{db: db}
}

func (r *triggerRepo) Create(trigger *entity.Trigger) error {
	query := `
		INSERT INTO triggers (id, action, kind, fire_at, event)
		VALUES (?, ?, ?, ?, ?)
	`

	// Event triggers have no fire time; store NULL instead of the zero time.
	var fireAt interface{}
	if !trigger.FireAt.IsZero() {
		fireAt = trigger.FireAt.UTC()
	}

	_, err := r.db.Exec(query,
		trigger.ID,
		trigger.Action,
		string(trigger.Kind),
		fireAt,
		trigger.Event,
	)
	if err != nil {
		return fmt.Errorf("failed to create trigger: %w", err)
	}

	return nil
}

func (r *triggerRepo) GetByID(id string) (*entity.Trigger, error) {
	trigger := &entity.Trigger{}
	var fireAt sql.NullTime

	query := `
		SELECT id, action, kind, fire_at, event, created_at
		FROM triggers
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&trigger.ID,
		&trigger.Action,
		&trigger.Kind,
		&fireAt,
		&trigger.Event,
		&trigger.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trigger: %w", err)
	}

	if fireAt.Valid {
		trigger.FireAt = fireAt.Time
	}

	return trigger, nil
}

func (r *triggerRepo) List() ([]*entity.Trigger, error) {
	query := `
		SELECT id, action, kind, fire_at, event, created_at
		FROM triggers
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	defer rows.Close()

	return scanTriggers(rows)
}

func (r *triggerRepo) ListByEvent(event string) ([]*entity.Trigger, error) {
	query := `
		SELECT id, action, kind, fire_at, event, created_at
		FROM triggers
		WHERE kind = ? AND event = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, string(entity.TriggerOnEvent), event)
	if err != nil {
		return nil, fmt.Errorf("failed to list event triggers: %w", err)
	}
	defer rows.Close()

	return scanTriggers(rows)
}

func (r *triggerRepo) Delete(id string) error {
	query := `
		DELETE FROM triggers
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete trigger: %w", err)
	}

	return nil
}

func scanTriggers(rows *sql.Rows) ([]*entity.Trigger, error) {
	var triggers []*entity.Trigger
	for rows.Next() {
		trigger := &entity.Trigger{}
		var fireAt sql.NullTime

		err := rows.Scan(
			&trigger.ID,
			&trigger.Action,
			&trigger.Kind,
			&fireAt,
			&trigger.Event,
			&trigger.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trigger: %w", err)
		}

		if fireAt.Valid {
			trigger.FireAt = fireAt.Time
		}
		triggers = append(triggers, trigger)
	}

	return triggers, nil
}
