package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumematcher/backend/internal/models"
	"resumematcher/backend/internal/repositories"
)

// JobService is a thin pass-through over the job repository. No update
// operation exists; jobs are created, read and deleted as whole records.
type JobService interface {
	Create(job *models.Job) error
	GetByID(id uuid.UUID) (*models.Job, error)
	List() ([]models.Job, error)
	ListByDomain(domain string) ([]models.Job, error)
	SearchByTitle(title string) ([]models.Job, error)
	Delete(id uuid.UUID) error
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// Create implements JobService. The id and creation timestamp are assigned
// here, once, and never change afterwards.
func (s *jobService) Create(job *models.Job) error {
	job.ID = uuid.New()
	job.CreatedAt = time.Now()
	if job.RequiredSkills == nil {
		job.RequiredSkills = models.StringList{}
	}

	if err := s.jobRepo.Create(job); err != nil {
		return fmt.Errorf("creating job: %w", err)
	}

	return nil
}

// GetByID implements JobService.
func (s *jobService) GetByID(id uuid.UUID) (*models.Job, error) {
	return s.jobRepo.FindByID(id)
}

// List implements JobService.
func (s *jobService) List() ([]models.Job, error) {
	return s.jobRepo.FindAll()
}

// ListByDomain implements JobService.
func (s *jobService) ListByDomain(domain string) ([]models.Job, error) {
	return s.jobRepo.FindByDomain(domain)
}

// SearchByTitle implements JobService.
func (s *jobService) SearchByTitle(title string) ([]models.Job, error) {
	return s.jobRepo.SearchByTitle(title)
}

// Delete implements JobService.
func (s *jobService) Delete(id uuid.UUID) error {
	return s.jobRepo.Delete(id)
}
