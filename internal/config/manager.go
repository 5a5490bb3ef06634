package config

import (
	"sync"

	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// ScheduleManager holds the current schedule snapshot and swaps it atomically
// on reload. A failed reload keeps the previous snapshot.
type ScheduleManager struct {
	path string

	mu  sync.RWMutex
	cfg entity.ScheduleConfig
}

func NewScheduleManager(path string) *ScheduleManager {
	return &ScheduleManager{path: path}
}

// Reload parses the schedule file and replaces the current snapshot on
// success.
func (m *ScheduleManager) Reload() error {
	cfg, err := LoadSchedule(m.path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()
	return nil
}

// Current returns the latest valid schedule snapshot.
func (m *ScheduleManager) Current() entity.ScheduleConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}
