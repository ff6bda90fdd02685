package services

import (
	"github.com/xmwu0124/predocker/models"
)

// StageStat is the completion count for one timeline stage across all
// in-flight applications.
type StageStat struct {
	Stage      string `json:"stage"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// Statistics summarizes the application pipeline. Only applications in
// "applied" or "interviewing" count; saved bookmarks and closed-out records
// are excluded.
type Statistics struct {
	TotalApplied int         `json:"total_applied"`
	InProgress   int         `json:"in_progress"`
	Interviews   int         `json:"interviews"`
	Results      int         `json:"results"`
	Stages       []StageStat `json:"stages"`
}

// ComputeStatistics aggregates pipeline progress over the given applications.
func ComputeStatistics(apps []models.Application) Statistics {
	applied := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if app.Status == models.StatusApplied || app.Status == models.StatusInterviewing {
			applied = append(applied, app)
		}
	}

	stats := Statistics{
		TotalApplied: len(applied),
		Stages:       make([]StageStat, 0, len(models.TimelineStages)),
	}

	for _, app := range applied {
		inProgress := false
		for _, event := range app.Timeline {
			if event.Completed && event.Stage != models.StageResult {
				inProgress = true
			}
			if event.Completed && event.Stage == models.StageInterview {
				stats.Interviews++
			}
			if event.Completed && event.Stage == models.StageResult {
				stats.Results++
			}
		}
		if inProgress {
			stats.InProgress++
		}
	}

	for _, stage := range models.TimelineStages {
		completed := 0
		for _, app := range applied {
			for _, event := range app.Timeline {
				if event.Stage == stage && event.Completed {
					completed++
					break
				}
			}
		}

		percentage := 0
		if stats.TotalApplied > 0 {
			percentage = completed * 100 / stats.TotalApplied
		}
		stats.Stages = append(stats.Stages, StageStat{
			Stage:      stage,
			Completed:  completed,
			Percentage: percentage,
		})
	}

	return stats
}
