package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumematcher/backend/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id uuid.UUID) (*models.Resume, error)
	FindAll() ([]models.Resume, error)
	FindByDomain(domain string) ([]models.Resume, error)
	FindCreatedAfter(since time.Time) ([]models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// FindAll implements ResumeRepository.
func (r *resumeRepository) FindAll() ([]models.Resume, error) {
	resumes := make([]models.Resume, 0)
	if err := r.db.Order("created_at DESC").Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

// FindByDomain implements ResumeRepository. The domain match is exact.
func (r *resumeRepository) FindByDomain(domain string) ([]models.Resume, error) {
	resumes := make([]models.Resume, 0)
	if err := r.db.Where("domain = ?", domain).Order("created_at DESC").Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes by domain: %w", err)
	}

	return resumes, nil
}

// FindCreatedAfter implements ResumeRepository.
func (r *resumeRepository) FindCreatedAfter(since time.Time) ([]models.Resume, error) {
	resumes := make([]models.Resume, 0)
	if err := r.db.Where("created_at > ?", since).Order("created_at DESC").Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent resumes: %w", err)
	}

	return resumes, nil
}
