package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumematcher/backend/internal/models"
	"resumematcher/backend/internal/repositories"
	"resumematcher/backend/internal/services"
)

type fakeResumeService struct {
	resumes   []models.Resume
	uploadErr error
	uploads   int
}

func (f *fakeResumeService) UploadAndEvaluate(ctx context.Context, fileName string, data []byte, jobText, domain string) (*models.Resume, error) {
	f.uploads++
	if len(data) == 0 {
		return nil, services.ErrEmptyFile
	}
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	resume := models.Resume{
		ID:       uuid.New(),
		FileName: fileName,
		RawText:  string(data),
		Domain:   domain,
		EvaluationResult: &models.EvaluationResult{
			FinalScore: 0.82,
			JobText:    jobText,
		},
		ParsedEntities: &models.ParsedEntities{},
		CreatedAt:      time.Now(),
	}
	f.resumes = append(f.resumes, resume)
	return &resume, nil
}

func (f *fakeResumeService) GetByID(id uuid.UUID) (*models.Resume, error) {
	for i := range f.resumes {
		if f.resumes[i].ID == id {
			return &f.resumes[i], nil
		}
	}
	return nil, fmt.Errorf("resume %s: %w", id, repositories.ErrNotFound)
}

func (f *fakeResumeService) List() ([]models.Resume, error) {
	out := make([]models.Resume, 0, len(f.resumes))
	out = append(out, f.resumes...)
	return out, nil
}

func (f *fakeResumeService) ListByDomain(domain string) ([]models.Resume, error) {
	out := make([]models.Resume, 0)
	for _, r := range f.resumes {
		if r.Domain == domain {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResumeService) ListCreatedAfter(since time.Time) ([]models.Resume, error) {
	out := make([]models.Resume, 0)
	for _, r := range f.resumes {
		if r.CreatedAt.After(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func newResumeTestApp(service *fakeResumeService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewResumeHandler(service, 10*1024*1024).RegisterRoutes(api)
	return app
}

func multipartUpload(t *testing.T, fileName string, content []byte, jobText, domain string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("jobText", jobText))
	require.NoError(t, writer.WriteField("domain", domain))
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestResumeUpload(t *testing.T) {
	service := &fakeResumeService{}
	app := newResumeTestApp(service)

	body, contentType := multipartUpload(t, "resume.txt", []byte("Experienced Go developer"), "Backend Engineer, Go required", "Backend")
	req := httptest.NewRequest("POST", "/api/uploadResume", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var resume models.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&resume))
	assert.Equal(t, "resume.txt", resume.FileName)
	assert.Equal(t, "Experienced Go developer", resume.RawText)
	assert.Equal(t, "Backend", resume.Domain)
	require.NotNil(t, resume.EvaluationResult)
	assert.Equal(t, 0.82, resume.EvaluationResult.FinalScore)
}

func TestResumeUploadMissingFile(t *testing.T) {
	service := &fakeResumeService{}
	app := newResumeTestApp(service)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("jobText", "job"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/uploadResume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, service.uploads)
}

func TestResumeUploadEmptyFile(t *testing.T) {
	service := &fakeResumeService{}
	app := newResumeTestApp(service)

	body, contentType := multipartUpload(t, "resume.txt", nil, "job", "Backend")
	req := httptest.NewRequest("POST", "/api/uploadResume", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, service.resumes)
}

func TestResumeUploadUpstreamTimeout(t *testing.T) {
	service := &fakeResumeService{uploadErr: fmt.Errorf("evaluating: %w", services.ErrUpstreamTimeout)}
	app := newResumeTestApp(service)

	body, contentType := multipartUpload(t, "resume.txt", []byte("text"), "job", "Backend")
	req := httptest.NewRequest("POST", "/api/uploadResume", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)
}

func TestResumeUploadUpstreamUnavailable(t *testing.T) {
	service := &fakeResumeService{uploadErr: fmt.Errorf("evaluating: %w", services.ErrUpstreamUnavailable)}
	app := newResumeTestApp(service)

	body, contentType := multipartUpload(t, "resume.txt", []byte("text"), "job", "Backend")
	req := httptest.NewRequest("POST", "/api/uploadResume", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestResumeGetNotFound(t *testing.T) {
	app := newResumeTestApp(&fakeResumeService{})

	req := httptest.NewRequest("GET", "/api/resumes/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResumeListByDomain(t *testing.T) {
	service := &fakeResumeService{resumes: []models.Resume{
		{ID: uuid.New(), FileName: "a.txt", Domain: "Backend"},
		{ID: uuid.New(), FileName: "b.txt", Domain: "Data"},
	}}
	app := newResumeTestApp(service)

	req := httptest.NewRequest("GET", "/api/resumes/domain/Backend", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var resumes []models.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&resumes))
	require.Len(t, resumes, 1)
	assert.Equal(t, "a.txt", resumes[0].FileName)
}

func TestResumeRecentRequiresValidSince(t *testing.T) {
	app := newResumeTestApp(&fakeResumeService{})

	req := httptest.NewRequest("GET", "/api/resumes/recent?since=yesterday", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResumeRecent(t *testing.T) {
	service := &fakeResumeService{resumes: []models.Resume{
		{ID: uuid.New(), FileName: "old.txt", CreatedAt: time.Now().Add(-48 * time.Hour)},
		{ID: uuid.New(), FileName: "new.txt", CreatedAt: time.Now()},
	}}
	app := newResumeTestApp(service)

	since := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	req := httptest.NewRequest("GET", "/api/resumes/recent?since="+since, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var resumes []models.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&resumes))
	require.Len(t, resumes, 1)
	assert.Equal(t, "new.txt", resumes[0].FileName)
}
