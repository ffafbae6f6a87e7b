package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StorageService keeps a copy of every uploaded resume file on disk so the
// original document survives re-parsing or later format upgrades. Archival is
// best-effort; callers log failures instead of surfacing them.
type StorageService interface {
	SaveUpload(fileName string, data []byte) (string, error)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveUpload writes the file under a unique name and returns its path.
func (s *storageService) SaveUpload(fileName string, data []byte) (string, error) {
	uniqueFilename := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(fileName))
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	return filePath, nil
}
