package httpapi

import (
	"bytes"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/importer"
	"github.com/gofiber/fiber/v2"
)

type importResponse struct {
	Records map[domain.Kind]int `json:"records"`
	Profile bool                `json:"profile"`
}

// exportTracker serves GET /api/export: the whole tracker as one backup
// document.
func exportTracker(t *app.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := importer.Export(c.UserContext(), t)
		if err != nil {
			return err
		}
		return c.JSON(doc)
	}
}

// importTracker serves POST /api/import. Records are appended with fresh
// ids; an invalid document writes nothing.
func importTracker(t *app.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := importer.ParseDocument(bytes.NewReader(c.Body()))
		if err != nil {
			return badRequest("%v", err)
		}
		res, err := importer.Import(c.UserContext(), t, doc)
		if err != nil {
			return err
		}
		return c.JSON(importResponse{Records: res.Records, Profile: res.Profile})
	}
}
