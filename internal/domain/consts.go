package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// Trigger action names. The registry stores these; the host binds each one to
// a service call at startup.
const (
	ActionOpenWindow  = "window:open"
	ActionCloseWindow = "window:close"
	ActionCheckLimit  = "window:limit"
	ActionRunCycle    = "window:cycle"
)

// EventFormSubmission is dispatched once per recorded submission.
const EventFormSubmission = "form:submission"

// Weekdays maps lowercase English weekday names and three-letter
// abbreviations to Go weekdays
var Weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday resolves a weekday name or abbreviation, case-insensitive.
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := Weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", entity.ErrInvalidWeekday, name)
	}
	return day, nil
}
