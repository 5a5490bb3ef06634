package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"github.com/diegoclair/form-window-bot/internal/domain"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// scheduleFile mirrors the YAML schedule document.
type scheduleFile struct {
	Timezone      string    `yaml:"timezone"`
	Open          *ruleSpec `yaml:"open"`
	Close         *ruleSpec `yaml:"close"`
	ResponseLimit *int      `yaml:"response_limit"`
	NotifyOn      []string  `yaml:"notify_on"`
}

type ruleSpec struct {
	Day  string `yaml:"day"`
	Time string `yaml:"time"`
}

// LoadSchedule reads and validates the schedule document. Any invalid field
// fails the whole load so the caller can keep its previous snapshot.
func LoadSchedule(path string) (entity.ScheduleConfig, error) {
	var cfg entity.ScheduleConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	return buildSchedule(file)
}

func buildSchedule(file scheduleFile) (entity.ScheduleConfig, error) {
	var cfg entity.ScheduleConfig

	tz := file.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return cfg, fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	cfg.Location = loc

	if file.Open != nil {
		rule, err := parseRule(*file.Open)
		if err != nil {
			return cfg, fmt.Errorf("open rule: %w", err)
		}
		cfg.OpenRule = &rule
	}

	if file.Close != nil {
		rule, err := parseRule(*file.Close)
		if err != nil {
			return cfg, fmt.Errorf("close rule: %w", err)
		}
		cfg.CloseRule = &rule
	}

	cfg.ResponseLimit = file.ResponseLimit

	cfg.Notify = entity.NotifySet{}
	for _, name := range file.NotifyOn {
		flag := entity.NotifyFlag(strings.ToLower(strings.TrimSpace(name)))
		if !flag.Valid() {
			return cfg, fmt.Errorf("%w: %q", entity.ErrUnknownNotifyFlag, name)
		}
		cfg.Notify[flag] = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseRule turns {day: friday, time: "16:00"} into a weekly rule.
func parseRule(spec ruleSpec) (entity.WeeklyRule, error) {
	var rule entity.WeeklyRule

	weekday, err := domain.ParseWeekday(spec.Day)
	if err != nil {
		return rule, err
	}

	hour, minute, err := parseClock(spec.Time)
	if err != nil {
		return rule, err
	}

	rule.Weekday = weekday
	rule.Hour = hour
	rule.Minute = minute
	return rule, nil
}

// parseClock parses a 24h "HH:MM" string.
func parseClock(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", entity.ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", entity.ErrInvalidTime, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", entity.ErrInvalidTime, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", entity.ErrInvalidTime, s)
	}

	return hour, minute, nil
}
