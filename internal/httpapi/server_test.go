package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *fiber.App {
	t.Helper()
	return New(app.NewMemoryTracker(true), nil)
}

func do(t *testing.T, api *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := api.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[V any](t *testing.T, resp *http.Response) V {
	t.Helper()
	defer resp.Body.Close()
	var v V
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestCourses_ListSeeded(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "GET", "/api/courses", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decode[[]recordJSON[domain.Course]](t, resp)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Data.ID)
	assert.Equal(t, 2, got[1].Data.ID)
	assert.NotEmpty(t, got[0].Labels["status"].Label)
	assert.NotEmpty(t, got[0].Labels["status"].Tone)
}

func TestCourses_CreateThenGet(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "POST", "/api/courses", map[string]any{
		"name":      "Go in Practice",
		"startDate": "2024-02-01",
		"progress":  10,
		"status":    "in-progress",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[recordJSON[domain.Course]](t, resp)
	assert.Equal(t, 3, created.Data.ID)
	assert.Equal(t, domain.CourseOnline, created.Data.Type, "omitted fields take blank defaults")
	assert.Equal(t, "In Progress", created.Labels["status"].Label)

	resp = do(t, api, "GET", "/api/courses/3", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[recordJSON[domain.Course]](t, resp)
	assert.Equal(t, "Go in Practice", got.Data.Name)
}

func TestCourses_CreateInvalidIsBadRequest(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "POST", "/api/courses", map[string]any{"name": "", "startDate": "2024-01-01"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[errorResponse](t, resp)
	assert.Contains(t, body.Error, "name")
}

func TestCourses_MalformedJSON(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "POST", "/api/courses", `{"name": `)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[errorResponse](t, resp)
	assert.Contains(t, body.Error, "malformed JSON")
}

func TestCourses_ReplaceKeepsPosition(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "PUT", "/api/courses/1", map[string]any{
		"name": "Renamed", "startDate": "2023-01-15", "status": "completed", "progress": 100,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, api, "GET", "/api/courses", nil)
	got := decode[[]recordJSON[domain.Course]](t, resp)
	require.Len(t, got, 2)
	assert.Equal(t, "Renamed", got[0].Data.Name)
	assert.Equal(t, 1, got[0].Data.ID)
}

func TestCourses_DeleteMissingIsNotFound(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "DELETE", "/api/courses/42", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decode[errorResponse](t, resp)
	assert.Contains(t, body.Error, "42")
}

func TestCourses_DeleteThenList(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "DELETE", "/api/courses/1", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	got := decode[[]recordJSON[domain.Course]](t, do(t, api, "GET", "/api/courses", nil))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Data.ID)
}

func TestRecords_BadID(t *testing.T) {
	api := testServer(t)

	for _, path := range []string{"/api/courses/abc", "/api/courses/0", "/api/skills/-1"} {
		resp := do(t, api, "GET", path, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestRecords_EveryListIsMounted(t *testing.T) {
	api := testServer(t)

	for _, plural := range []string{"courses", "coaching", "applications", "certifications", "education", "experiences", "skills"} {
		resp := do(t, api, "GET", "/api/"+plural, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, plural)
	}
}

func TestSkills_Search(t *testing.T) {
	api := testServer(t)

	got := decode[[]recordJSON[domain.Skill]](t, do(t, api, "GET", "/api/skills?search=reakt", nil))
	require.Len(t, got, 1)
	assert.Equal(t, "React", got[0].Data.Technology)
	assert.NotEmpty(t, got[0].Labels["proficiency"].Label)
}

func TestSkills_Categories(t *testing.T) {
	api := testServer(t)

	got := decode[[]string](t, do(t, api, "GET", "/api/skills/categories", nil))
	assert.NotEmpty(t, got)
}

func TestProfile_GetAndPut(t *testing.T) {
	api := testServer(t)

	got := decode[recordJSON[domain.Profile]](t, do(t, api, "GET", "/api/profile", nil))
	assert.NotEmpty(t, got.Data.Name)

	resp := do(t, api, "PUT", "/api/profile", map[string]any{
		"name": "Ada", "email": "ada@example.com", "level": "senior",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	saved := decode[recordJSON[domain.Profile]](t, resp)
	assert.Equal(t, "Senior", saved.Labels["level"].Label)

	got = decode[recordJSON[domain.Profile]](t, do(t, api, "GET", "/api/profile", nil))
	assert.Equal(t, "Ada", got.Data.Name)
}

func TestProfile_PutInvalid(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "PUT", "/api/profile", map[string]any{"name": "Ada"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTShape(t *testing.T) {
	api := testServer(t)

	got := decode[map[string]any](t, do(t, api, "GET", "/api/tshape", nil))
	assert.Equal(t, "Full Stack Developer (Senior)", got["title"])
	assert.Len(t, got["levels"], 5)
	assert.Len(t, got["gaps"], 3)

	gaps := decode[[]map[string]any](t, do(t, api, "GET", "/api/tshape/gaps", nil))
	require.Len(t, gaps, 3)
	assert.Equal(t, "Docker", gaps[0]["name"])
}

func TestRequestID(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "GET", "/api/courses", nil)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest("GET", "/api/courses", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := api.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestLogger_LogsFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	api := New(app.NewMemoryTracker(true), slog.New(slog.NewTextHandler(&buf, nil)))

	resp := do(t, api, "GET", "/api/courses/99", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	line := buf.String()
	assert.Contains(t, line, "msg=http_request")
	assert.Contains(t, line, "status=404")
	assert.Contains(t, line, "path=/api/courses/99")
	assert.Contains(t, line, "request_id=")
}

func TestUnknownRoute(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "GET", "/api/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestExportThenImport(t *testing.T) {
	src := testServer(t)
	resp := do(t, src, "GET", "/api/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"technology":"React"`)

	dst := New(app.NewMemoryTracker(false), nil)
	resp = do(t, dst, "POST", "/api/import", string(raw))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	res := decode[importResponse](t, resp)
	assert.Equal(t, 8, res.Records[domain.KindSkill])
	assert.Equal(t, 2, res.Records[domain.KindCourse])
	assert.True(t, res.Profile)

	resp = do(t, dst, "GET", "/api/skills", nil)
	list := decode[[]map[string]any](t, resp)
	assert.Len(t, list, 8)
}

func TestImport_Rejects(t *testing.T) {
	api := testServer(t)

	resp := do(t, api, "POST", "/api/import", `{"courses": [{"name": ""}]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[errorResponse](t, resp)
	assert.Contains(t, body.Error, "courses[0]")

	resp = do(t, api, "POST", "/api/import", `{"projects": []}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, api, "GET", "/api/courses", nil)
	assert.Len(t, decode[[]map[string]any](t, resp), 2)
}
