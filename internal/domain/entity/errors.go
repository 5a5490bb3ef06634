package entity

import "errors"

// Configuration errors. Any of these aborts a cycle before triggers are
// touched.
var (
	ErrInvalidWeekday    = errors.New("entity: invalid weekday")
	ErrInvalidTime       = errors.New("entity: invalid time of day")
	ErrNegativeLimit     = errors.New("entity: negative response limit")
	ErrUnknownNotifyFlag = errors.New("entity: unknown notify flag")
	ErrNoLocation        = errors.New("entity: schedule location not set")
	ErrNoSchedule        = errors.New("entity: no open or close rule configured")
	ErrNoRecipient       = errors.New("entity: notification recipient not configured")
)

// Intake errors.
var (
	ErrWindowClosed = errors.New("entity: submission window is closed")
	ErrFormNotFound = errors.New("entity: form not found")
)
