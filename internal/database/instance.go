package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	formRepo       contract.FormRepo
	submissionRepo contract.SubmissionRepo
	triggerRepo    contract.TriggerRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.formRepo = newFormRepo(i.db.conn)
	i.submissionRepo = newSubmissionRepo(i.db.conn)
	i.triggerRepo = newTriggerRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		formRepo:       newFormRepo(db),
		submissionRepo: newSubmissionRepo(db),
		triggerRepo:    newTriggerRepo(db),
	}
}

// Form returns the form repository
func (i *instance) Form() contract.FormRepo {
	return i.formRepo
}

// Submission returns the submission repository
func (i *instance) Submission() contract.SubmissionRepo {
	return i.submissionRepo
}

// Trigger returns the trigger repository
func (i *instance) Trigger() contract.TriggerRepo {
	return i.triggerRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
