package database

import (
	"fmt"
	"time"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

type submissionRepo struct {
	db dbConn
}

func newSubmissionRepo(db dbConn) contract.SubmissionRepo {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(sub *entity.Submission) error {
	query := `
		INSERT INTO submissions (form_id, respondent, payload, submitted_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		sub.FormID,
		sub.Respondent,
		sub.Payload,
		sub.SubmittedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	sub.ID = id
	return nil
}

func (r *submissionRepo) CountByForm(formID int64) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM submissions
		WHERE form_id = ?
	`

	err := r.db.QueryRow(query, formID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	return count, nil
}

// CountByFormSince counts submissions received at or after since. Timestamps
// are stored in UTC, so since is normalized before comparing.
func (r *submissionRepo) CountByFormSince(formID int64, since time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM submissions
		WHERE form_id = ? AND submitted_at >= ?
	`

	err := r.db.QueryRow(query, formID, since.UTC()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	return count, nil
}
