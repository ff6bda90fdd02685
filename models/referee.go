package models

// Recommendation statuses a referee can report.
const (
	RecommendationPending    = "pending"
	RecommendationInProgress = "in_progress"
	RecommendationSubmitted  = "submitted"
)

// Referee holds the access token that gates the referee-facing dashboard.
// Recommendations live inside the record, so deleting a referee drops them
// with it.
type Referee struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Institution     string           `json:"institution"`
	Title           string           `json:"title"`
	AccessToken     string           `json:"access_token"`
	AssignedJobs    []int            `json:"assigned_jobs"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation tracks letter status for one assigned job. At most one per
// (referee, job_id) pair; updates replace the whole entry.
type Recommendation struct {
	JobID       int    `json:"job_id"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	UpdatedDate string `json:"updated_date"`
}

// ValidRecommendationStatus reports whether s is a known recommendation status.
func ValidRecommendationStatus(s string) bool {
	switch s {
	case RecommendationPending, RecommendationInProgress, RecommendationSubmitted:
		return true
	}
	return false
}

// AssignedJob reports whether jobID is in the referee's assignment list.
func (r *Referee) AssignedJob(jobID int) bool {
	for _, id := range r.AssignedJobs {
		if id == jobID {
			return true
		}
	}
	return false
}
