package entity

import (
	"fmt"
	"time"
)

// NotifyFlag names one notification the schedule can enable.
type NotifyFlag string

const (
	NotifyOnOpen  NotifyFlag = "open"
	NotifyOnClose NotifyFlag = "close"
	NotifyOnLimit NotifyFlag = "limit"
)

// Valid reports whether the flag is one of the known values.
func (f NotifyFlag) Valid() bool {
	switch f {
	case NotifyOnOpen, NotifyOnClose, NotifyOnLimit:
		return true
	}
	return false
}

// NotifySet is the set of enabled notifications.
type NotifySet map[NotifyFlag]bool

// Has reports set membership.
func (s NotifySet) Has(f NotifyFlag) bool {
	return s[f]
}

// WeeklyRule is a weekly occurrence: a weekday plus a wall-clock minute in
// the schedule's location.
type WeeklyRule struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
}

// Clock renders the rule time as "HH:MM".
func (r WeeklyRule) Clock() string {
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// String renders the rule for logs and messages, e.g. "Friday 16:00".
func (r WeeklyRule) String() string {
	return fmt.Sprintf("%s %s", r.Weekday, r.Clock())
}

func (r WeeklyRule) validate() error {
	if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, int(r.Weekday))
	}
	if r.Hour < 0 || r.Hour > 23 || r.Minute < 0 || r.Minute > 59 {
		return fmt.Errorf("%w: %s", ErrInvalidTime, r.Clock())
	}
	return nil
}

// ScheduleConfig is the immutable per-cycle schedule snapshot. A nil rule
// means that edge is not scheduled.
type ScheduleConfig struct {
	OpenRule      *WeeklyRule
	CloseRule     *WeeklyRule
	ResponseLimit *int
	Notify        NotifySet
	Location      *time.Location
}

// Validate checks every field so a broken schedule is rejected before any
// trigger is touched.
func (c ScheduleConfig) Validate() error {
	if c.Location == nil {
		return ErrNoLocation
	}

	if c.OpenRule == nil && c.CloseRule == nil {
		return ErrNoSchedule
	}

	if c.OpenRule != nil {
		if err := c.OpenRule.validate(); err != nil {
			return fmt.Errorf("open rule: %w", err)
		}
	}

	if c.CloseRule != nil {
		if err := c.CloseRule.validate(); err != nil {
			return fmt.Errorf("close rule: %w", err)
		}
	}

	if c.ResponseLimit != nil && *c.ResponseLimit < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLimit, *c.ResponseLimit)
	}

	for f := range c.Notify {
		if !f.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownNotifyFlag, string(f))
		}
	}

	return nil
}
