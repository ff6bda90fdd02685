package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmwu0124/predocker/models"
	"github.com/xmwu0124/predocker/storage"
)

func newApplicationService(t *testing.T) *ApplicationService {
	t.Helper()
	return NewApplicationService(storage.NewFileStore(t.TempDir()))
}

func TestUpdateStatusCreatesRecordLazily(t *testing.T) {
	svc := newApplicationService(t)

	app, err := svc.UpdateStatus(1, models.StatusSaved)
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, 1, app.JobID)
	assert.Equal(t, models.StatusSaved, app.Status)
	assert.Empty(t, app.Timeline)
	assert.Empty(t, app.AppliedDate)
	assert.NotEmpty(t, app.CreatedAt)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newApplicationService(t)

	_, err := svc.UpdateStatus(1, "ghosted")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppliedTransitionInitializesTimeline(t *testing.T) {
	svc := newApplicationService(t)

	app, err := svc.UpdateStatus(7, models.StatusApplied)
	require.NoError(t, err)
	require.Len(t, app.Timeline, 5)

	for i, stage := range models.TimelineStages {
		assert.Equal(t, stage, app.Timeline[i].Stage)
	}

	assert.True(t, app.Timeline[0].Completed)
	assert.NotEmpty(t, app.Timeline[0].Date)
	assert.NotEmpty(t, app.AppliedDate)

	for _, event := range app.Timeline[1:] {
		assert.False(t, event.Completed)
		assert.Empty(t, event.Date)
	}
}

func TestReapplyingDoesNotResetTimeline(t *testing.T) {
	svc := newApplicationService(t)

	first, err := svc.UpdateStatus(7, models.StatusApplied)
	require.NoError(t, err)
	appliedDate := first.Timeline[0].Date

	second, err := svc.UpdateStatus(7, models.StatusApplied)
	require.NoError(t, err)
	require.Len(t, second.Timeline, 5)
	assert.Equal(t, appliedDate, second.Timeline[0].Date)
}

func TestSavedThenAppliedUpgradesExistingRecord(t *testing.T) {
	svc := newApplicationService(t)

	saved, err := svc.UpdateStatus(3, models.StatusSaved)
	require.NoError(t, err)
	assert.Empty(t, saved.Timeline)

	applied, err := svc.UpdateStatus(3, models.StatusApplied)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, applied.ID)
	assert.Equal(t, models.StatusApplied, applied.Status)
	assert.Len(t, applied.Timeline, 5)

	// Still exactly one record for the job.
	all, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResetToNewKeepsTimeline(t *testing.T) {
	svc := newApplicationService(t)

	_, err := svc.UpdateStatus(5, models.StatusApplied)
	require.NoError(t, err)

	reset, err := svc.UpdateStatus(5, models.StatusNew)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, reset.Status)
	assert.Len(t, reset.Timeline, 5)
}

func TestToggleStageRoundTrip(t *testing.T) {
	svc := newApplicationService(t)
	_, err := svc.UpdateStatus(7, models.StatusApplied)
	require.NoError(t, err)

	toggled, err := svc.ToggleStage(7, models.StageInterview)
	require.NoError(t, err)
	require.NotNil(t, toggled)

	interview := findStage(t, toggled, models.StageInterview)
	assert.True(t, interview.Completed)
	assert.NotEmpty(t, interview.Date)

	untoggled, err := svc.ToggleStage(7, models.StageInterview)
	require.NoError(t, err)

	interview = findStage(t, untoggled, models.StageInterview)
	assert.False(t, interview.Completed)
	assert.Empty(t, interview.Date)
}

func TestToggleStageLeavesNotesAlone(t *testing.T) {
	store := storage.NewFileStore(t.TempDir())
	svc := NewApplicationService(store)

	_, err := svc.UpdateStatus(7, models.StatusApplied)
	require.NoError(t, err)

	apps, err := store.Applications()
	require.NoError(t, err)
	for i := range apps[0].Timeline {
		if apps[0].Timeline[i].Stage == models.StageCodeTest {
			apps[0].Timeline[i].Notes = "two hour take-home"
		}
	}
	require.NoError(t, store.SaveApplications(apps))

	toggled, err := svc.ToggleStage(7, models.StageCodeTest)
	require.NoError(t, err)
	assert.Equal(t, "two hour take-home", findStage(t, toggled, models.StageCodeTest).Notes)
}

func TestToggleStageUnknownJobIsNoop(t *testing.T) {
	svc := newApplicationService(t)

	app, err := svc.ToggleStage(99, models.StageInterview)
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestToggleStageUnknownStageIsNoop(t *testing.T) {
	svc := newApplicationService(t)
	_, err := svc.UpdateStatus(7, models.StatusApplied)
	require.NoError(t, err)

	app, err := svc.ToggleStage(7, "onsite")
	require.NoError(t, err)
	require.NotNil(t, app)

	for _, event := range app.Timeline[1:] {
		assert.False(t, event.Completed)
	}
}

func findStage(t *testing.T, app *models.Application, stage string) models.TimelineEvent {
	t.Helper()
	for _, event := range app.Timeline {
		if event.Stage == stage {
			return event
		}
	}
	t.Fatalf("stage %q not found in timeline", stage)
	return models.TimelineEvent{}
}
