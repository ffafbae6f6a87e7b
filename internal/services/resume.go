package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"resumematcher/backend/internal/models"
	"resumematcher/backend/internal/repositories"
)

// ResumeService owns the upload workflow and the resume read side.
type ResumeService interface {
	UploadAndEvaluate(ctx context.Context, fileName string, data []byte, jobText, domain string) (*models.Resume, error)
	GetByID(id uuid.UUID) (*models.Resume, error)
	List() ([]models.Resume, error)
	ListByDomain(domain string) ([]models.Resume, error)
	ListCreatedAfter(since time.Time) ([]models.Resume, error)
}

type resumeService struct {
	resumeRepo repositories.ResumeRepository
	extractor  TextExtractor
	evaluator  EvaluatorService
	storage    StorageService
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	extractor TextExtractor,
	evaluator EvaluatorService,
	storage StorageService,
) ResumeService {
	return &resumeService{
		resumeRepo: resumeRepo,
		extractor:  extractor,
		evaluator:  evaluator,
		storage:    storage,
	}
}

// UploadAndEvaluate runs extraction, evaluation and persistence strictly in
// that order. A failure at any step before the single store write means no
// record is persisted: a stored resume always carries both its evaluation
// result and its parsed entities.
func (s *resumeService) UploadAndEvaluate(ctx context.Context, fileName string, data []byte, jobText, domain string) (*models.Resume, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("upload %s: %w", fileName, ErrEmptyFile)
	}

	rawText, err := s.extractor.Extract(fileName, data)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", fileName, err)
	}

	result, entities, err := s.evaluator.Evaluate(ctx, rawText, jobText, domain)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", fileName, err)
	}

	resume := &models.Resume{
		ID:               uuid.New(),
		FileName:         fileName,
		RawText:          rawText,
		Domain:           domain,
		ParsedEntities:   entities,
		EvaluationResult: result,
		CreatedAt:        time.Now(),
	}

	if err := s.resumeRepo.Create(resume); err != nil {
		return nil, fmt.Errorf("saving %s: %w", fileName, err)
	}

	// Archive the original upload; losing the copy is not worth failing an
	// already-evaluated resume over.
	if s.storage != nil {
		if _, err := s.storage.SaveUpload(fileName, data); err != nil {
			log.Printf("⚠️  Failed to archive upload %s: %v\n", fileName, err)
		}
	}

	return resume, nil
}

// GetByID implements ResumeService.
func (s *resumeService) GetByID(id uuid.UUID) (*models.Resume, error) {
	return s.resumeRepo.FindByID(id)
}

// List implements ResumeService.
func (s *resumeService) List() ([]models.Resume, error) {
	return s.resumeRepo.FindAll()
}

// ListByDomain implements ResumeService.
func (s *resumeService) ListByDomain(domain string) ([]models.Resume, error) {
	return s.resumeRepo.FindByDomain(domain)
}

// ListCreatedAfter implements ResumeService.
func (s *resumeService) ListCreatedAfter(since time.Time) ([]models.Resume, error) {
	return s.resumeRepo.FindCreatedAfter(since)
}
