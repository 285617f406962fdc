package httpapi

import (
	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// recordJSON is the body shape of one record: the record itself plus the
// display label and tone of each enum field.
type recordJSON[T any] struct {
	Data   T                    `json:"data"`
	Labels map[string]labelJSON `json:"labels,omitempty"`
}

type recordRoutes[T domain.Record[T]] struct {
	uc     app.RecordUseCase[T]
	labels func(T) map[string]labelJSON
}

func newRecordRoutes[T domain.Record[T]](uc app.RecordUseCase[T], labels func(T) map[string]labelJSON) *recordRoutes[T] {
	return &recordRoutes[T]{uc: uc, labels: labels}
}

// mount registers /<plural> CRUD routes. A non-nil list replaces the
// default list handler.
func (rr *recordRoutes[T]) mount(r fiber.Router, list fiber.Handler) {
	if list == nil {
		list = rr.list
	}
	g := r.Group("/" + rr.uc.Kind().Plural())
	g.Get("/", list)
	g.Post("/", rr.create)
	g.Get("/:id", rr.get)
	g.Put("/:id", rr.replace)
	g.Delete("/:id", rr.remove)
}

func (rr *recordRoutes[T]) present(rec T) recordJSON[T] {
	return recordJSON[T]{Data: rec, Labels: rr.labels(rec)}
}

func (rr *recordRoutes[T]) presentAll(recs []T) []recordJSON[T] {
	out := make([]recordJSON[T], len(recs))
	for i, rec := range recs {
		out[i] = rr.present(rec)
	}
	return out
}

func (rr *recordRoutes[T]) list(c *fiber.Ctx) error {
	recs, err := rr.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(rr.presentAll(recs))
}

func (rr *recordRoutes[T]) get(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}
	rec, err := rr.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(rr.present(rec))
}

func (rr *recordRoutes[T]) create(c *fiber.Ctx) error {
	rec, err := rr.decode(c)
	if err != nil {
		return err
	}
	saved, err := rr.uc.Add(c.UserContext(), rec)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(rr.present(saved))
}

// replace overwrites every field; omitted fields fall back to the blank
// record's defaults.
func (rr *recordRoutes[T]) replace(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}
	rec, err := rr.decode(c)
	if err != nil {
		return err
	}
	saved, err := rr.uc.Update(c.UserContext(), id, rec)
	if err != nil {
		return err
	}
	return c.JSON(rr.present(saved))
}

func (rr *recordRoutes[T]) remove(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return err
	}
	if err := rr.uc.Remove(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// decode reads a record body over the blank defaults.
func (rr *recordRoutes[T]) decode(c *fiber.Ctx) (T, error) {
	rec := rr.uc.Blank()
	if err := decodeJSON(c, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func decodeJSON(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return badRequest("request body is empty")
	}
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		return badRequest("malformed JSON: %v", err)
	}
	return nil
}

func recordID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, badRequest("invalid id %q", c.Params("id"))
	}
	return id, nil
}
