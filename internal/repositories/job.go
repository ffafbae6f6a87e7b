package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumematcher/backend/internal/models"
)

// ErrNotFound marks a lookup that matched no record. Handlers translate it to
// a 404 instead of a server error.
var ErrNotFound = errors.New("record not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindAll() ([]models.Job, error)
	FindByDomain(domain string) ([]models.Job, error)
	SearchByTitle(title string) ([]models.Job, error)
	Delete(id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return &job, nil
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll() ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// FindByDomain implements JobRepository. The domain match is exact.
func (r *jobRepository) FindByDomain(domain string) ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	if err := r.db.Where("domain = ?", domain).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs by domain: %w", err)
	}

	return jobs, nil
}

// SearchByTitle implements JobRepository with a case-insensitive substring
// match on the title.
func (r *jobRepository) SearchByTitle(title string) ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	pattern := "%" + title + "%"
	if err := r.db.Where("title ILIKE ?", pattern).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to search jobs by title: %w", err)
	}

	return jobs, nil
}

// Delete implements JobRepository. Deleting an absent id is a no-op, matching
// the delete-by-id semantics of the document store this service replaces.
func (r *jobRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Job{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}
