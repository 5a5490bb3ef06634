// Package triggers hosts the durable trigger registry: trigger rows live in
// sqlite, timers live in process. Every firing runs as a discrete,
// non-overlapping unit of work.
package triggers

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
)

// ActionFunc runs when a trigger fires.
type ActionFunc func() error

// Registry implements contract.TriggerRegistry and contract.EventSink.
type Registry struct {
	dm  contract.DataManager
	log zerolog.Logger

	mu      sync.Mutex
	actions map[string]ActionFunc
	timers  map[string]*time.Timer

	// runMu serializes every firing so actions never overlap.
	runMu sync.Mutex
}

func New(dm contract.DataManager, log zerolog.Logger) *Registry {
	return &Registry{
		dm:      dm,
		log:     log.With().Str("component", "triggers").Logger(),
		actions: make(map[string]ActionFunc),
		timers:  make(map[string]*time.Timer),
	}
}

// RegisterAction binds an action name to its implementation. Firings whose
// action has no binding are logged and skipped.
func (r *Registry) RegisterAction(name string, fn ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = fn
}

// ListTriggers returns every registered trigger, stale rows from a previous
// process included.
func (r *Registry) ListTriggers() ([]entity.Trigger, error) {
	rows, err := r.dm.Trigger().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}

	triggers := make([]entity.Trigger, 0, len(rows))
	for _, t := range rows {
		triggers = append(triggers, *t)
	}

	return triggers, nil
}

// DeleteTrigger removes the trigger row and cancels its timer if one is
// armed in this process.
func (r *Registry) DeleteTrigger(t entity.Trigger) error {
	if err := r.dm.Trigger().Delete(t.ID); err != nil {
		return fmt.Errorf("failed to delete trigger %s: %w", t.ID, err)
	}

	r.mu.Lock()
	if timer, ok := r.timers[t.ID]; ok {
		timer.Stop()
		delete(r.timers, t.ID)
	}
	r.mu.Unlock()

	return nil
}

// CreateOneShotTrigger persists and arms a trigger that fires action once
// at the given time.
func (r *Registry) CreateOneShotTrigger(action string, at time.Time) (entity.Trigger, error) {
	t := entity.Trigger{
		ID:     uuid.NewString(),
		Action: action,
		Kind:   entity.TriggerOneShot,
		FireAt: at,
	}

	if err := r.dm.Trigger().Create(&t); err != nil {
		return entity.Trigger{}, fmt.Errorf("failed to create one-shot trigger: %w", err)
	}

	r.mu.Lock()
	r.timers[t.ID] = time.AfterFunc(time.Until(at), func() { r.fire(t.ID, action) })
	r.mu.Unlock()

	r.log.Debug().Str("trigger_id", t.ID).Str("action", action).Time("fire_at", at).Msg("one-shot trigger armed")
	return t, nil
}

// CreateEventTrigger persists a trigger that fires action on every dispatch
// of event.
func (r *Registry) CreateEventTrigger(action, event string) (entity.Trigger, error) {
	t := entity.Trigger{
		ID:     uuid.NewString(),
		Action: action,
		Kind:   entity.TriggerOnEvent,
		Event:  event,
	}

	if err := r.dm.Trigger().Create(&t); err != nil {
		return entity.Trigger{}, fmt.Errorf("failed to create event trigger: %w", err)
	}

	r.log.Debug().Str("trigger_id", t.ID).Str("action", action).Str("event", event).Msg("event trigger armed")
	return t, nil
}

// DispatchEvent runs every event trigger subscribed to event, serialized
// with timer firings.
func (r *Registry) DispatchEvent(event string) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	rows, err := r.dm.Trigger().ListByEvent(event)
	if err != nil {
		r.log.Error().Err(err).Str("event", event).Msg("failed to list event triggers")
		return
	}

	for _, t := range rows {
		r.runAction(t.Action)
	}
}

// Run executes fn serialized with timer firings and event dispatches. Cycle
// re-runs started outside a firing (boot, schedule reload) go through here so
// two passes never interleave their clear and arm phases. Registered actions
// already run under the same lock and must not call Run.
func (r *Registry) Run(fn func() error) error {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	return fn()
}

// Stop cancels every armed timer. Trigger rows stay; the next initialization
// cycle clears them.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, timer := range r.timers {
		timer.Stop()
		delete(r.timers, id)
	}
}

// fire consumes a one-shot trigger and runs its action. A trigger whose row
// is already gone was cleared after the timer was armed and does nothing.
func (r *Registry) fire(id, action string) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	row, err := r.dm.Trigger().GetByID(id)
	if err != nil {
		r.log.Error().Err(err).Str("trigger_id", id).Msg("failed to load firing trigger")
		return
	}
	if row == nil {
		r.log.Debug().Str("trigger_id", id).Msg("trigger cleared before firing, skipping")
		return
	}

	// One-shot rows are consumed before the action runs.
	if err := r.dm.Trigger().Delete(id); err != nil {
		r.log.Error().Err(err).Str("trigger_id", id).Msg("failed to consume trigger")
		return
	}

	r.mu.Lock()
	delete(r.timers, id)
	r.mu.Unlock()

	r.runAction(action)
}

// runAction resolves and invokes one action. Callers hold runMu.
func (r *Registry) runAction(action string) {
	r.mu.Lock()
	fn, ok := r.actions[action]
	r.mu.Unlock()

	if !ok {
		r.log.Error().Str("action", action).Msg("no handler registered for action")
		return
	}

	r.log.Info().Str("action", action).Msg("running action")
	if err := fn(); err != nil {
		r.log.Error().Err(err).Str("action", action).Msg("action failed")
	}
}
