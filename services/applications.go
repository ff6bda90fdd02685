package services

import (
	"errors"
	"time"

	"github.com/xmwu0124/predocker/models"
	"github.com/xmwu0124/predocker/storage"
)

// ErrInvalidStatus is returned for a status outside the known set.
var ErrInvalidStatus = errors.New("invalid status")

// ApplicationService owns application status transitions and the 5-stage
// timeline checklist.
type ApplicationService struct {
	store storage.Store
}

func NewApplicationService(store storage.Store) *ApplicationService {
	return &ApplicationService{store: store}
}

func (s *ApplicationService) All() ([]models.Application, error) {
	return s.store.Applications()
}

// ByJobID returns the application for a job, or nil when the job has never
// left the implicit "new" state.
func (s *ApplicationService) ByJobID(jobID int) (*models.Application, error) {
	apps, err := s.store.Applications()
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].JobID == jobID {
			return &apps[i], nil
		}
	}
	return nil, nil
}

// UpdateStatus moves the job's application to status, creating the record
// lazily on first use. Any status may follow any other; the tracker is a
// manual checklist, not an enforced workflow. The timeline is initialized
// exactly once, on an "applied" transition with an empty timeline; resetting
// to "new" keeps both the record and its timeline.
func (s *ApplicationService) UpdateStatus(jobID int, status string) (*models.Application, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	apps, err := s.store.Applications()
	if err != nil {
		return nil, err
	}

	now := isoNow()
	idx := -1
	for i := range apps {
		if apps[i].JobID == jobID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		apps[idx].Status = status
		apps[idx].UpdatedAt = now
		if status == models.StatusApplied && len(apps[idx].Timeline) == 0 {
			apps[idx].AppliedDate = now
			apps[idx].Timeline = newTimeline(now)
		}
	} else {
		app := models.Application{
			ID:        len(apps) + 1,
			JobID:     jobID,
			Status:    status,
			Timeline:  []models.TimelineEvent{},
			Documents: []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if status == models.StatusApplied {
			app.AppliedDate = now
			app.Timeline = newTimeline(now)
		}
		apps = append(apps, app)
		idx = len(apps) - 1
	}

	if err := s.store.SaveApplications(apps); err != nil {
		return nil, err
	}

	updated := apps[idx]
	return &updated, nil
}

// ToggleStage flips the completed flag of one timeline event. Completing an
// undated stage stamps it with now; un-completing clears the date. Notes are
// untouched either way. A missing application or stage is a no-op: the
// (possibly nil) current record is returned and nothing is written.
func (s *ApplicationService) ToggleStage(jobID int, stage string) (*models.Application, error) {
	apps, err := s.store.Applications()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range apps {
		if apps[i].JobID == jobID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	app := &apps[idx]
	for i := range app.Timeline {
		if app.Timeline[i].Stage != stage {
			continue
		}

		app.Timeline[i].Completed = !app.Timeline[i].Completed
		if app.Timeline[i].Completed && app.Timeline[i].Date == "" {
			app.Timeline[i].Date = isoNow()
		} else if !app.Timeline[i].Completed {
			app.Timeline[i].Date = ""
		}
		app.UpdatedAt = isoNow()

		if err := s.store.SaveApplications(apps); err != nil {
			return nil, err
		}
		break
	}

	updated := *app
	return &updated, nil
}

// newTimeline builds the fixed stage sequence created on the first "applied"
// transition: applied is completed and dated, the rest are open.
func newTimeline(now string) []models.TimelineEvent {
	timeline := make([]models.TimelineEvent, 0, len(models.TimelineStages))
	for _, stage := range models.TimelineStages {
		event := models.TimelineEvent{Stage: stage}
		if stage == models.StageApplied {
			event.Completed = true
			event.Date = now
		}
		timeline = append(timeline, event)
	}
	return timeline
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
