// Package httpapi exposes the tracker lists as a JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/repository"
	"github.com/alexanderramin/ladder/internal/tshape"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 5 * time.Second

type errorResponse struct {
	Error string `json:"error"`
}

// New builds the fiber app serving t. A nil logger discards request logs.
func New(t *app.Tracker, logger *slog.Logger) *fiber.App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	api := fiber.New(fiber.Config{
		AppName:               "ladder",
		DisableStartupMessage: true,
		ErrorHandler:          handleError,
	})
	api.Use(requestID(), requestLogger(logger))

	r := api.Group("/api")
	newRecordRoutes(t.Courses, courseLabels).mount(r, nil)
	newRecordRoutes(t.Coaching, coachingLabels).mount(r, nil)
	newRecordRoutes(t.Applications, applicationLabels).mount(r, nil)
	newRecordRoutes(t.Certifications, noLabels[domain.Certification]).mount(r, nil)
	newRecordRoutes(t.Education, educationLabels).mount(r, nil)
	newRecordRoutes(t.Experience, noLabels[domain.Experience]).mount(r, nil)

	skills := newRecordRoutes[domain.Skill](t.Skills, skillLabels)
	r.Get("/skills/categories", listCategories(t.Skills))
	skills.mount(r, listSkills(t.Skills, skills))

	r.Get("/profile", getProfile(t.Profile))
	r.Put("/profile", putProfile(t.Profile))
	r.Get("/tshape", getTShape)
	r.Get("/tshape/gaps", getTShapeGaps)

	r.Get("/export", exportTracker(t))
	r.Post("/import", importTracker(t))

	return api
}

// Serve listens on addr until ctx is done, then shuts the app down.
func Serve(ctx context.Context, api *fiber.App, addr string) error {
	errc := make(chan error, 1)
	go func() { errc <- api.Listen(addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		if err := api.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return <-errc
	}
}

// handleError maps domain errors onto status codes with a JSON body.
func handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		status = fe.Code
	case errors.Is(err, repository.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, tshape.ErrLevelOutOfRange):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(errorResponse{Error: err.Error()})
}

func badRequest(format string, args ...any) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(format, args...))
}
