package models

// Application statuses. StatusNew is the implicit "no action yet" state;
// resetting an application to it keeps the record (and its timeline) around.
const (
	StatusNew          = "new"
	StatusSaved        = "saved"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusAccepted     = "accepted"
	StatusRejected     = "rejected"
)

// Timeline stages, in the fixed order the timeline is created with.
const (
	StageApplied   = "applied"
	StageReference = "reference"
	StageCodeTest  = "codetest"
	StageInterview = "interview"
	StageResult    = "result"
)

// TimelineStages is the fixed stage order of every timeline.
var TimelineStages = []string{
	StageApplied,
	StageReference,
	StageCodeTest,
	StageInterview,
	StageResult,
}

type Application struct {
	ID          int             `json:"id"`
	JobID       int             `json:"job_id"`
	Status      string          `json:"status"`
	AppliedDate string          `json:"applied_date"`
	Timeline    []TimelineEvent `json:"timeline"`
	Documents   []string        `json:"documents"`
	Notes       string          `json:"notes"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// TimelineEvent is one checklist entry. Stage identity never changes after
// the timeline is created; only completed/date/notes move.
type TimelineEvent struct {
	Stage     string `json:"stage"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
}

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusSaved, StatusApplied, StatusInterviewing, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// ValidStage reports whether s is a known timeline stage.
func ValidStage(s string) bool {
	for _, stage := range TimelineStages {
		if s == stage {
			return true
		}
	}
	return false
}
