package services

import (
	"errors"
	"fmt"

	"github.com/xmwu0124/predocker/models"
	"github.com/xmwu0124/predocker/storage"
	"github.com/xmwu0124/predocker/utils"
)

var (
	// ErrUnauthorized is returned when a dashboard token matches no referee.
	ErrUnauthorized = errors.New("invalid access token")
	// ErrRefereeNotFound is returned when deleting an unknown referee id.
	ErrRefereeNotFound = errors.New("referee not found")
	// ErrJobNotAssigned is returned when a referee reports on a job outside
	// their assignment list.
	ErrJobNotAssigned = errors.New("job not assigned to referee")
	// ErrInvalidInput flags bad referee fields at creation.
	ErrInvalidInput = errors.New("invalid input")
)

// Dashboard is what a referee sees after opening their tokenized link.
type Dashboard struct {
	Referee         DashboardReferee        `json:"referee"`
	Jobs            []models.Job            `json:"jobs"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// DashboardReferee is the referee's public subset; the token never echoes
// back.
type DashboardReferee struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Institution string `json:"institution"`
}

// RefereeService manages the referee registry and the token-gated
// recommendation workflow.
type RefereeService struct {
	store storage.Store
}

func NewRefereeService(store storage.Store) *RefereeService {
	return &RefereeService{store: store}
}

func (s *RefereeService) All() ([]models.Referee, error) {
	return s.store.Referees()
}

// Create registers a referee with a fresh server-generated access token.
// Tokens are regenerated until unique among existing referees.
func (s *RefereeService) Create(name, email, institution, title string, assignedJobs []int) (*models.Referee, error) {
	name = utils.SanitizeInput(name)
	email = utils.SanitizeInput(email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	referees, err := s.store.Referees()
	if err != nil {
		return nil, err
	}

	token, err := s.uniqueToken(referees)
	if err != nil {
		return nil, err
	}

	if assignedJobs == nil {
		assignedJobs = []int{}
	}

	maxID := 0
	for _, r := range referees {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	referee := models.Referee{
		ID:              maxID + 1,
		Name:            name,
		Email:           email,
		Institution:     utils.SanitizeInput(institution),
		Title:           utils.SanitizeInput(title),
		AccessToken:     token,
		AssignedJobs:    assignedJobs,
		Recommendations: []models.Recommendation{},
	}
	referees = append(referees, referee)

	if err := s.store.SaveReferees(referees); err != nil {
		return nil, err
	}
	return &referee, nil
}

// Delete removes a referee. The token and every recommendation live inside
// the record, so no further cleanup is needed.
func (s *RefereeService) Delete(id int) error {
	referees, err := s.store.Referees()
	if err != nil {
		return err
	}

	for i := range referees {
		if referees[i].ID == id {
			referees = append(referees[:i], referees[i+1:]...)
			return s.store.SaveReferees(referees)
		}
	}
	return ErrRefereeNotFound
}

// Authorize resolves a token to its referee, comparing in constant time.
func (s *RefereeService) Authorize(token string) (*models.Referee, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	referees, err := s.store.Referees()
	if err != nil {
		return nil, err
	}
	for i := range referees {
		if utils.SecureCompare(referees[i].AccessToken, token) {
			return &referees[i], nil
		}
	}
	return nil, ErrUnauthorized
}

// Dashboard returns the referee's public fields, the active jobs assigned to
// them and their recommendation entries.
func (s *RefereeService) Dashboard(token string) (*Dashboard, error) {
	referee, err := s.Authorize(token)
	if err != nil {
		return nil, err
	}

	jobs, err := s.store.ActiveJobs()
	if err != nil {
		return nil, err
	}

	assigned := make([]models.Job, 0, len(referee.AssignedJobs))
	for _, job := range jobs {
		if referee.AssignedJob(job.ID) {
			assigned = append(assigned, job)
		}
	}

	recommendations := referee.Recommendations
	if recommendations == nil {
		recommendations = []models.Recommendation{}
	}

	return &Dashboard{
		Referee: DashboardReferee{
			Name:        referee.Name,
			Email:       referee.Email,
			Institution: referee.Institution,
		},
		Jobs:            assigned,
		Recommendations: recommendations,
	}, nil
}

// UpsertRecommendation records letter status for one assigned job, replacing
// any existing entry for that job wholesale. Jobs outside the referee's
// assignment list are rejected at this write boundary.
func (s *RefereeService) UpsertRecommendation(token string, jobID int, status, notes string) error {
	if token == "" {
		return ErrUnauthorized
	}
	if !models.ValidRecommendationStatus(status) {
		return ErrInvalidStatus
	}

	referees, err := s.store.Referees()
	if err != nil {
		return err
	}

	idx := -1
	for i := range referees {
		if utils.SecureCompare(referees[i].AccessToken, token) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnauthorized
	}

	referee := &referees[idx]
	if !referee.AssignedJob(jobID) {
		return ErrJobNotAssigned
	}

	rec := models.Recommendation{
		JobID:       jobID,
		Status:      status,
		Notes:       notes,
		UpdatedDate: isoNow(),
	}

	replaced := false
	for i := range referee.Recommendations {
		if referee.Recommendations[i].JobID == jobID {
			referee.Recommendations[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		referee.Recommendations = append(referee.Recommendations, rec)
	}

	return s.store.SaveReferees(referees)
}

func (s *RefereeService) uniqueToken(referees []models.Referee) (string, error) {
	for {
		token, err := utils.GenerateAccessToken()
		if err != nil {
			return "", err
		}
		collision := false
		for _, r := range referees {
			if r.AccessToken == token {
				collision = true
				break
			}
		}
		if !collision {
			return token, nil
		}
	}
}
