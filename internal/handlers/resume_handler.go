package handlers

import (
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumematcher/backend/internal/services"
)

type ResumeHandler struct {
	resumes     services.ResumeService
	maxFileSize int64
}

func NewResumeHandler(resumes services.ResumeService, maxFileSize int64) *ResumeHandler {
	return &ResumeHandler{
		resumes:     resumes,
		maxFileSize: maxFileSize,
	}
}

func (h *ResumeHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/uploadResume", h.HandleUpload)
	api.Get("/resumes", h.HandleList)
	api.Get("/resumes/recent", h.HandleRecent)
	api.Get("/resumes/domain/:domain", h.HandleListByDomain)
	api.Get("/resumes/:id", h.HandleGet)
}

// HandleUpload handles POST /api/uploadResume. The file is extracted,
// evaluated against the supplied job text by the external service, and
// persisted as one fully evaluated record.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file too large",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("❌ Failed to open upload %s: %v\n", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Failed to read upload %s: %v\n", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	jobText := c.FormValue("jobText")
	domain := c.FormValue("domain")

	resume, err := h.resumes.UploadAndEvaluate(c.Context(), fileHeader.Filename, data, jobText, domain)
	if err != nil {
		log.Printf("❌ Failed to process resume %s: %v\n", fileHeader.Filename, err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(resume)
}

// HandleGet handles GET /api/resumes/:id
func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume ID format",
		})
	}

	resume, err := h.resumes.GetByID(id)
	if err != nil {
		status, msg := statusForError(err)
		if status == fiber.StatusInternalServerError {
			log.Printf("❌ Failed to get resume %s: %v\n", id, err)
		}
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(resume)
}

// HandleList handles GET /api/resumes
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	resumes, err := h.resumes.List()
	if err != nil {
		log.Printf("❌ Failed to list resumes: %v\n", err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(resumes)
}

// HandleListByDomain handles GET /api/resumes/domain/:domain
func (h *ResumeHandler) HandleListByDomain(c *fiber.Ctx) error {
	resumes, err := h.resumes.ListByDomain(c.Params("domain"))
	if err != nil {
		log.Printf("❌ Failed to list resumes by domain: %v\n", err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(resumes)
}

// HandleRecent handles GET /api/resumes/recent?since=RFC3339
func (h *ResumeHandler) HandleRecent(c *fiber.Ctx) error {
	since, err := time.Parse(time.RFC3339, c.Query("since"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "since query parameter must be an RFC3339 timestamp",
		})
	}

	resumes, err := h.resumes.ListCreatedAfter(since)
	if err != nil {
		log.Printf("❌ Failed to list recent resumes: %v\n", err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(resumes)
}
