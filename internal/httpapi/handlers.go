package httpapi

import (
	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/service"
	"github.com/alexanderramin/ladder/internal/tshape"
	"github.com/gofiber/fiber/v2"
)

// listSkills serves GET /api/skills with optional search, category and
// proficiency query parameters.
func listSkills(skills app.SkillUseCase, rr *recordRoutes[domain.Skill]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := service.SkillFilter{
			Search:      c.Query("search"),
			Category:    c.Query("category"),
			Proficiency: domain.Proficiency(c.Query("proficiency")),
		}
		list, err := skills.Filter(c.UserContext(), f)
		if err != nil {
			return err
		}
		return c.JSON(rr.presentAll(list))
	}
}

func listCategories(skills app.SkillUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats, err := skills.Categories(c.UserContext())
		if err != nil {
			return err
		}
		if cats == nil {
			cats = []string{}
		}
		return c.JSON(cats)
	}
}

func getProfile(profile app.ProfileUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := profile.Get(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(recordJSON[domain.Profile]{Data: p, Labels: profileLabels(p)})
	}
}

func putProfile(profile app.ProfileUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p domain.Profile
		if err := decodeJSON(c, &p); err != nil {
			return err
		}
		if err := profile.Save(c.UserContext(), p); err != nil {
			return err
		}
		return c.JSON(recordJSON[domain.Profile]{Data: p, Labels: profileLabels(p)})
	}
}

type tshapeJSON struct {
	tshape.Model
	Title  string        `json:"title"`
	Levels []string      `json:"levels"`
	Gaps   []tshape.Item `json:"gaps"`
}

func getTShape(c *fiber.Ctx) error {
	m := tshape.Sample()
	if err := m.Validate(); err != nil {
		return err
	}
	return c.JSON(tshapeJSON{
		Model:  m,
		Title:  m.Title(),
		Levels: tshape.Labels(),
		Gaps:   nonNil(m.Gaps()),
	})
}

func getTShapeGaps(c *fiber.Ctx) error {
	return c.JSON(nonNil(tshape.Sample().Gaps()))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
