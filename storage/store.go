// Package storage persists the tracker's three JSON array files. Everything
// goes through the Store interface so the flat files could be swapped for a
// real database without touching call sites.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xmwu0124/predocker/models"
)

const (
	jobsFile         = "jobs.json"
	applicationsFile = "applications.json"
	refereesFile     = "referees.json"
)

// Store is the persistence boundary. Loads return empty slices when a file
// does not exist yet; saves replace the whole file.
type Store interface {
	Jobs() ([]models.Job, error)
	ActiveJobs() ([]models.Job, error)
	Applications() ([]models.Application, error)
	SaveApplications([]models.Application) error
	Referees() ([]models.Referee, error)
	SaveReferees([]models.Referee) error
}

// FileStore keeps each collection in a pretty-printed JSON array file under
// one data directory. A single mutex serializes read-modify-write cycles;
// the tracker is single-user, so coarse locking is enough.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Jobs() ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []models.Job
	if err := s.load(jobsFile, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ActiveJobs returns only postings with is_active == 1; inactive records
// never leave the storage layer.
func (s *FileStore) ActiveJobs() ([]models.Job, error) {
	jobs, err := s.Jobs()
	if err != nil {
		return nil, err
	}

	active := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.IsActive == 1 {
			active = append(active, job)
		}
	}
	return active, nil
}

func (s *FileStore) Applications() ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var apps []models.Application
	if err := s.load(applicationsFile, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *FileStore) SaveApplications(apps []models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(applicationsFile, apps)
}

func (s *FileStore) Referees() ([]models.Referee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var referees []models.Referee
	if err := s.load(refereesFile, &referees); err != nil {
		return nil, err
	}
	return referees, nil
}

func (s *FileStore) SaveReferees(referees []models.Referee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(refereesFile, referees)
}

func (s *FileStore) load(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) save(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
