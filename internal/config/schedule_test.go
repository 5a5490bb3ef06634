package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

func writeSchedule(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schedule.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write schedule file")

	return path
}

func TestLoadSchedule(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, cfg entity.ScheduleConfig)
	}{
		{
			name: "Should load a full schedule",
			yaml: `
timezone: UTC
open:
  day: monday
  time: "10:00"
close:
  day: wednesday
  time: "08:00"
response_limit: 50
notify_on:
  - open
  - close
  - limit
`,
			check: func(t *testing.T, cfg entity.ScheduleConfig) {
				require.NotNil(t, cfg.OpenRule)
				assert.Equal(t, entity.WeeklyRule{Weekday: time.Monday, Hour: 10, Minute: 0}, *cfg.OpenRule)

				require.NotNil(t, cfg.CloseRule)
				assert.Equal(t, entity.WeeklyRule{Weekday: time.Wednesday, Hour: 8, Minute: 0}, *cfg.CloseRule)

				require.NotNil(t, cfg.ResponseLimit)
				assert.Equal(t, 50, *cfg.ResponseLimit)

				assert.True(t, cfg.Notify.Has(entity.NotifyOnOpen))
				assert.True(t, cfg.Notify.Has(entity.NotifyOnClose))
				assert.True(t, cfg.Notify.Has(entity.NotifyOnLimit))

				assert.Equal(t, time.UTC, cfg.Location)
			},
		},
		{
			name: "Should default the timezone to UTC",
			yaml: `
open:
  day: friday
  time: "16:00"
`,
			check: func(t *testing.T, cfg entity.ScheduleConfig) {
				assert.Equal(t, time.UTC, cfg.Location)
			},
		},
		{
			name: "Should accept a single open rule",
			yaml: `
timezone: UTC
open:
  day: fri
  time: "16:00"
`,
			check: func(t *testing.T, cfg entity.ScheduleConfig) {
				require.NotNil(t, cfg.OpenRule)
				assert.Equal(t, time.Friday, cfg.OpenRule.Weekday)
				assert.Nil(t, cfg.CloseRule)
				assert.Nil(t, cfg.ResponseLimit)
			},
		},
		{
			name: "Should normalize notify flag case",
			yaml: `
open:
  day: monday
  time: "10:00"
notify_on:
  - " Open "
`,
			check: func(t *testing.T, cfg entity.ScheduleConfig) {
				assert.True(t, cfg.Notify.Has(entity.NotifyOnOpen))
			},
		},
		{
			name: "Should reject an unknown weekday",
			yaml: `
open:
  day: someday
  time: "10:00"
`,
			wantErr: entity.ErrInvalidWeekday,
		},
		{
			name: "Should reject an out-of-range time",
			yaml: `
open:
  day: monday
  time: "25:00"
`,
			wantErr: entity.ErrInvalidTime,
		},
		{
			name: "Should reject a malformed time",
			yaml: `
close:
  day: monday
  time: "10h30"
`,
			wantErr: entity.ErrInvalidTime,
		},
		{
			name: "Should reject a negative limit",
			yaml: `
open:
  day: monday
  time: "10:00"
response_limit: -1
`,
			wantErr: entity.ErrNegativeLimit,
		},
		{
			name: "Should reject an unknown notify flag",
			yaml: `
open:
  day: monday
  time: "10:00"
notify_on:
  - carrier-pigeon
`,
			wantErr: entity.ErrUnknownNotifyFlag,
		},
		{
			name:    "Should reject an empty schedule",
			yaml:    `timezone: UTC`,
			wantErr: entity.ErrNoSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSchedule(t, tt.yaml)

			cfg, err := LoadSchedule(path)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadSchedule_UnknownTimezone(t *testing.T) {
	path := writeSchedule(t, `
timezone: Mars/Olympus
open:
  day: monday
  time: "10:00"
`)

	_, err := LoadSchedule(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}

func TestLoadSchedule_MissingFile(t *testing.T) {
	_, err := LoadSchedule(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadSchedule_MalformedYAML(t *testing.T) {
	path := writeSchedule(t, "open: [unclosed")

	_, err := LoadSchedule(path)
	require.Error(t, err)
}

func Test_parseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{
			name:       "Should parse a morning time",
			input:      "09:05",
			wantHour:   9,
			wantMinute: 5,
		},
		{
			name:       "Should parse the last minute of the day",
			input:      "23:59",
			wantHour:   23,
			wantMinute: 59,
		},
		{
			name:       "Should parse midnight",
			input:      "00:00",
			wantHour:   0,
			wantMinute: 0,
		},
		{
			name:       "Should trim surrounding whitespace",
			input:      " 16:00 ",
			wantHour:   16,
			wantMinute: 0,
		},
		{
			name:    "Should reject an out-of-range hour",
			input:   "24:00",
			wantErr: true,
		},
		{
			name:    "Should reject an out-of-range minute",
			input:   "10:60",
			wantErr: true,
		},
		{
			name:    "Should reject a missing minute",
			input:   "10",
			wantErr: true,
		},
		{
			name:    "Should reject non-numeric parts",
			input:   "aa:bb",
			wantErr: true,
		},
		{
			name:    "Should reject an empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parseClock(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidTime)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}
