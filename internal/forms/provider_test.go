package forms_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/form-window-bot/internal/database"
	"github.com/diegoclair/form-window-bot/internal/domain/contract"
	"github.com/diegoclair/form-window-bot/internal/domain/entity"
	"github.com/diegoclair/form-window-bot/internal/forms"
)

const (
	testSlug  = "weekly"
	testTitle = "Weekly submission form"
	testURL   = "https://forms.example.com/weekly"
)

func setupProvider(t *testing.T) (*forms.Provider, contract.DataManager) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	return forms.NewProvider(dm, testSlug, zerolog.Nop()), dm
}

func TestProvider_Ensure_CreatesForm(t *testing.T) {
	provider, dm := setupProvider(t)

	err := provider.Ensure(testTitle, testURL)
	require.NoError(t, err, "Failed to ensure form")

	form, err := dm.Form().GetBySlug(testSlug)
	require.NoError(t, err)
	require.NotNil(t, form, "Expected form to be created")

	assert.Equal(t, testTitle, form.Title)
	assert.Equal(t, testURL, form.PublicURL)
	assert.False(t, form.IsAccepting, "New form should start closed")
	assert.Nil(t, form.OpenedAt, "New form should have no open timestamp")
}

func TestProvider_Ensure_UpdatesSettings(t *testing.T) {
	provider, dm := setupProvider(t)

	require.NoError(t, provider.Ensure(testTitle, testURL))

	created, err := dm.Form().GetBySlug(testSlug)
	require.NoError(t, err)
	require.NotNil(t, created)

	err = provider.Ensure("Renamed form", "https://forms.example.com/renamed")
	require.NoError(t, err, "Failed to update form settings")

	form, err := dm.Form().GetBySlug(testSlug)
	require.NoError(t, err)
	require.NotNil(t, form)

	assert.Equal(t, created.ID, form.ID, "Update should keep the same form row")
	assert.Equal(t, "Renamed form", form.Title)
	assert.Equal(t, "https://forms.example.com/renamed", form.PublicURL)
}

func TestProvider_Ensure_KeepsUnchangedForm(t *testing.T) {
	provider, dm := setupProvider(t)

	require.NoError(t, provider.Ensure(testTitle, testURL))
	require.NoError(t, provider.Ensure(testTitle, testURL))

	form, err := dm.Form().GetBySlug(testSlug)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, testTitle, form.Title)
}

func TestProvider_AcceptingRoundTrip(t *testing.T) {
	provider, dm := setupProvider(t)
	require.NoError(t, provider.Ensure(testTitle, testURL))

	accepting, err := provider.IsAccepting()
	require.NoError(t, err)
	assert.False(t, accepting)

	require.NoError(t, provider.SetAccepting(true))

	accepting, err = provider.IsAccepting()
	require.NoError(t, err)
	assert.True(t, accepting)

	form, err := dm.Form().GetBySlug(testSlug)
	require.NoError(t, err)
	require.NotNil(t, form.OpenedAt, "Opening should stamp the open timestamp")
	assert.WithinDuration(t, time.Now().UTC(), *form.OpenedAt, 5*time.Second)

	require.NoError(t, provider.SetAccepting(false))

	accepting, err = provider.IsAccepting()
	require.NoError(t, err)
	assert.False(t, accepting)

	form, err = dm.Form().GetBySlug(testSlug)
	require.NoError(t, err)
	require.NotNil(t, form.OpenedAt, "Closing should keep the open timestamp")
}

func TestProvider_ResponseCount_CountsSinceLastOpen(t *testing.T) {
	provider, dm := setupProvider(t)
	require.NoError(t, provider.Ensure(testTitle, testURL))

	form, err := dm.Form().GetBySlug(testSlug)
	require.NoError(t, err)
	require.NotNil(t, form)

	now := time.Now().UTC()
	for _, at := range []time.Time{now.Add(-2 * time.Hour), now.Add(-1 * time.Hour)} {
		err := dm.Submission().Create(&entity.Submission{
			FormID:      form.ID,
			Respondent:  "early@example.com",
			SubmittedAt: at,
		})
		require.NoError(t, err, "Failed to create submission")
	}

	count, err := provider.ResponseCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count, "A form that never opened counts every submission")

	require.NoError(t, provider.SetAccepting(true))

	err = dm.Submission().Create(&entity.Submission{
		FormID:      form.ID,
		Respondent:  "late@example.com",
		SubmittedAt: now.Add(time.Hour),
	})
	require.NoError(t, err, "Failed to create submission")

	count, err = provider.ResponseCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Only submissions after the last open should count")
}

func TestProvider_PublicURL(t *testing.T) {
	provider, _ := setupProvider(t)
	require.NoError(t, provider.Ensure(testTitle, testURL))

	url, err := provider.PublicURL()
	require.NoError(t, err)
	assert.Equal(t, testURL, url)
}

func TestProvider_MissingForm(t *testing.T) {
	provider, _ := setupProvider(t)

	_, err := provider.IsAccepting()
	require.ErrorIs(t, err, entity.ErrFormNotFound)

	err = provider.SetAccepting(true)
	require.ErrorIs(t, err, entity.ErrFormNotFound)

	_, err = provider.ResponseCount()
	require.ErrorIs(t, err, entity.ErrFormNotFound)
}
