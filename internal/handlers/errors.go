package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumematcher/backend/internal/repositories"
	"resumematcher/backend/internal/services"
)

// statusForError maps the workflow failure kinds onto distinct HTTP statuses.
// The underlying cause is logged server-side only; response bodies stay
// generic.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound, "not found"
	case errors.Is(err, services.ErrEmptyFile):
		return fiber.StatusBadRequest, "uploaded file is empty"
	case errors.Is(err, services.ErrUpstreamTimeout):
		return fiber.StatusGatewayTimeout, "evaluation service timed out"
	case errors.Is(err, services.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway, "evaluation service unavailable"
	case errors.Is(err, services.ErrMalformedResponse):
		return fiber.StatusBadGateway, "evaluation service returned an unusable response"
	default:
		return fiber.StatusInternalServerError, "internal server error"
	}
}
