package triggers_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/form-window-bot/internal/database"
	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
	"github.com/diegoclair/form-window-bot/internal/triggers"
)

const fireTimeout = 2 * time.Second

func setupRegistry(t *testing.T) (*triggers.Registry, contract.DataManager) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	// Every pool connection of an in-memory database is its own database;
	// timer goroutines must share the migrated one.
	db.DB().SetMaxOpenConns(1)

	dm := database.NewInstance(db)

	registry := triggers.New(dm, zerolog.Nop())
	t.Cleanup(registry.Stop)

	return registry, dm
}

func TestRegistry_OneShotFires(t *testing.T) {
	registry, dm := setupRegistry(t)

	fired := make(chan struct{}, 1)
	registry.RegisterAction("test:fire", func() error {
		fired <- struct{}{}
		return nil
	})

	trigger, err := registry.CreateOneShotTrigger("test:fire", time.Now().Add(30*time.Millisecond))
	require.NoError(t, err, "Failed to create one-shot trigger")

	select {
	case <-fired:
	case <-time.After(fireTimeout):
		t.Fatal("expected the one-shot trigger to fire")
	}

	// The row is consumed before the action runs
	row, err := dm.Trigger().GetByID(trigger.ID)
	require.NoError(t, err)
	assert.Nil(t, row, "Expected the fired trigger row to be gone")
}

func TestRegistry_PastDueFiresImmediately(t *testing.T) {
	registry, _ := setupRegistry(t)

	fired := make(chan struct{}, 1)
	registry.RegisterAction("test:late", func() error {
		fired <- struct{}{}
		return nil
	})

	_, err := registry.CreateOneShotTrigger("test:late", time.Now().Add(-time.Minute))
	require.NoError(t, err, "Failed to create past-due trigger")

	select {
	case <-fired:
	case <-time.After(fireTimeout):
		t.Fatal("expected a past-due trigger to fire immediately")
	}
}

func TestRegistry_DeleteCancelsTimer(t *testing.T) {
	registry, dm := setupRegistry(t)

	fired := make(chan struct{}, 1)
	registry.RegisterAction("test:cancel", func() error {
		fired <- struct{}{}
		return nil
	})

	trigger, err := registry.CreateOneShotTrigger("test:cancel", time.Now().Add(50*time.Millisecond))
	require.NoError(t, err, "Failed to create one-shot trigger")

	err = registry.DeleteTrigger(trigger)
	require.NoError(t, err, "Failed to delete trigger")

	time.Sleep(200 * time.Millisecond)

	select {
	case <-fired:
		t.Fatal("expected a deleted trigger not to fire")
	default:
	}

	row, err := dm.Trigger().GetByID(trigger.ID)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestRegistry_ConsumedRowSkipsFiring(t *testing.T) {
	registry, dm := setupRegistry(t)

	fired := make(chan struct{}, 1)
	registry.RegisterAction("test:stale", func() error {
		fired <- struct{}{}
		return nil
	})

	trigger, err := registry.CreateOneShotTrigger("test:stale", time.Now().Add(50*time.Millisecond))
	require.NoError(t, err, "Failed to create one-shot trigger")

	// Remove the row behind the registry's back; the armed timer must notice
	// and skip.
	err = dm.Trigger().Delete(trigger.ID)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	select {
	case <-fired:
		t.Fatal("expected a trigger without a row not to fire")
	default:
	}
}

func TestRegistry_DispatchEvent(t *testing.T) {
	registry, _ := setupRegistry(t)

	var count int
	registry.RegisterAction("test:count", func() error {
		count++
		return nil
	})

	_, err := registry.CreateEventTrigger("test:count", "form:submission")
	require.NoError(t, err, "Failed to create event trigger")

	// Event triggers survive firing and run on every dispatch
	registry.DispatchEvent("form:submission")
	registry.DispatchEvent("form:submission")
	assert.Equal(t, 2, count)

	registry.DispatchEvent("unrelated:event")
	assert.Equal(t, 2, count)
}

func TestRegistry_DispatchEvent_UnknownAction(t *testing.T) {
	registry, _ := setupRegistry(t)

	_, err := registry.CreateEventTrigger("test:unbound", "form:submission")
	require.NoError(t, err, "Failed to create event trigger")

	assert.NotPanics(t, func() {
		registry.DispatchEvent("form:submission")
	})
}

func TestRegistry_RunWaitsForActiveFiring(t *testing.T) {
	registry, _ := setupRegistry(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	registry.RegisterAction("test:busy", func() error {
		close(entered)
		<-release
		return nil
	})

	_, err := registry.CreateEventTrigger("test:busy", "form:submission")
	require.NoError(t, err, "Failed to create event trigger")

	go registry.DispatchEvent("form:submission")

	select {
	case <-entered:
	case <-time.After(fireTimeout):
		t.Fatal("expected the dispatched action to start")
	}

	ran := make(chan struct{})
	go func() {
		_ = registry.Run(func() error {
			close(ran)
			return nil
		})
	}()

	// The in-flight firing still holds the lock
	select {
	case <-ran:
		t.Fatal("expected Run to wait for the in-flight firing")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	select {
	case <-ran:
	case <-time.After(fireTimeout):
		t.Fatal("expected Run to proceed once the firing finished")
	}
}

func TestRegistry_RunSerializesConcurrentCycles(t *testing.T) {
	registry, _ := setupRegistry(t)

	// A schedule pass clears everything and re-arms one trigger per action,
	// the way a reconciliation cycle does. Two passes racing each other must
	// not double-arm.
	rearm := func() error {
		listed, err := registry.ListTriggers()
		if err != nil {
			return err
		}
		for _, trigger := range listed {
			if err := registry.DeleteTrigger(trigger); err != nil {
				return err
			}
		}
		if _, err := registry.CreateOneShotTrigger("test:open", time.Now().Add(time.Hour)); err != nil {
			return err
		}
		if _, err := registry.CreateOneShotTrigger("test:cycle", time.Now().Add(time.Hour)); err != nil {
			return err
		}
		_, err = registry.CreateEventTrigger("test:limit", "form:submission")
		return err
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, registry.Run(rearm))
		}()
	}
	wg.Wait()

	listed, err := registry.ListTriggers()
	require.NoError(t, err, "Failed to list triggers")
	require.Len(t, listed, 3, "expected one armed trigger per action")

	counts := make(map[string]int)
	for _, trigger := range listed {
		counts[trigger.Action]++
	}
	for action, n := range counts {
		assert.Equalf(t, 1, n, "expected a single armed trigger for %s", action)
	}
}

func TestRegistry_ListTriggers(t *testing.T) {
	registry, _ := setupRegistry(t)

	oneShot, err := registry.CreateOneShotTrigger("test:a", time.Now().Add(time.Hour))
	require.NoError(t, err)

	event, err := registry.CreateEventTrigger("test:b", "form:submission")
	require.NoError(t, err)

	listed, err := registry.ListTriggers()
	require.NoError(t, err, "Failed to list triggers")
	require.Len(t, listed, 2)

	var ids []string
	for _, trigger := range listed {
		ids = append(ids, trigger.ID)
	}
	assert.ElementsMatch(t, []string{oneShot.ID, event.ID}, ids)
}

func TestRegistry_StopKeepsRows(t *testing.T) {
	registry, _ := setupRegistry(t)

	fired := make(chan struct{}, 1)
	registry.RegisterAction("test:stop", func() error {
		fired <- struct{}{}
		return nil
	})

	_, err := registry.CreateOneShotTrigger("test:stop", time.Now().Add(50*time.Millisecond))
	require.NoError(t, err)

	registry.Stop()

	time.Sleep(200 * time.Millisecond)

	select {
	case <-fired:
		t.Fatal("expected no firing after Stop")
	default:
	}

	// Rows survive so the next initialization cycle can clear them
	listed, err := registry.ListTriggers()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entity.TriggerOneShot, listed[0].Kind)
}
