package service

import (
	"time"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// resolveNext computes the next occurrence of a weekly rule strictly after
// base. Seconds are dropped before comparing, so a rule matching the current
// minute rolls a full week forward.
func resolveNext(base time.Time, rule entity.WeeklyRule) time.Time {
	base = time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), base.Minute(), 0, 0, base.Location())

	days := (int(rule.Weekday) - int(base.Weekday()) + 7) % 7
	next := time.Date(base.Year(), base.Month(), base.Day()+days, rule.Hour, rule.Minute, 0, 0, base.Location())

	if !next.After(base) {
		next = next.AddDate(0, 0, 7)
	}

	return next
}
