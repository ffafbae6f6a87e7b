package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumematcher/backend/internal/models"
	"resumematcher/backend/internal/services"
)

type JobHandler struct {
	jobs services.JobService
}

func NewJobHandler(jobs services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/jobs", h.HandleCreate)
	api.Get("/jobs", h.HandleList)
	// Static segments before the :id wildcard
	api.Get("/jobs/search", h.HandleSearch)
	api.Get("/jobs/domain/:domain", h.HandleListByDomain)
	api.Get("/jobs/:id", h.HandleGet)
	api.Delete("/jobs/:id", h.HandleDelete)
}

// HandleCreate handles POST /api/jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var job models.Job
	if err := c.BodyParser(&job); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if err := h.jobs.Create(&job); err != nil {
		log.Printf("❌ Failed to create job: %v\n", err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(job)
}

// HandleList handles GET /api/jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	jobs, err := h.jobs.List()
	if err != nil {
		log.Printf("❌ Failed to list jobs: %v\n", err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(jobs)
}

// HandleGet handles GET /api/jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID format",
		})
	}

	job, err := h.jobs.GetByID(id)
	if err != nil {
		status, msg := statusForError(err)
		if status == fiber.StatusInternalServerError {
			log.Printf("❌ Failed to get job %s: %v\n", id, err)
		}
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(job)
}

// HandleListByDomain handles GET /api/jobs/domain/:domain
func (h *JobHandler) HandleListByDomain(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListByDomain(c.Params("domain"))
	if err != nil {
		log.Printf("❌ Failed to list jobs by domain: %v\n", err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(jobs)
}

// HandleSearch handles GET /api/jobs/search?title=
func (h *JobHandler) HandleSearch(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title query parameter is required",
		})
	}

	jobs, err := h.jobs.SearchByTitle(title)
	if err != nil {
		log.Printf("❌ Failed to search jobs: %v\n", err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(jobs)
}

// HandleDelete handles DELETE /api/jobs/:id
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job ID format",
		})
	}

	if err := h.jobs.Delete(id); err != nil {
		log.Printf("❌ Failed to delete job %s: %v\n", id, err)
		status, msg := statusForError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(fiber.Map{"message": "job deleted"})
}
