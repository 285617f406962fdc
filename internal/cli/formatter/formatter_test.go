package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/tshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestBadge_UsesLabel(t *testing.T) {
	got := stripANSI(Badge(domain.CourseCompleted))
	assert.Equal(t, "● Completed", got)

	got = stripANSI(Badge(domain.ProficiencyNovice))
	assert.Contains(t, got, "Novice")
}

func TestToneStyle_KnownTones(t *testing.T) {
	assert.Equal(t, StyleGreen.Render("x"), ToneStyle(domain.ToneSuccess).Render("x"))
	assert.Equal(t, StyleRed.Render("x"), ToneStyle(domain.ToneDanger).Render("x"))
	assert.Equal(t, StyleDim.Render("x"), ToneStyle(domain.Tone("other")).Render("x"))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		ratio  float64
		filled int
		pct    string
	}{
		{"empty", 0, 0, "0%"},
		{"half", 0.5, 5, "50%"},
		{"full", 1, 10, "100%"},
		{"over clamps", 1.5, 10, "100%"},
		{"negative clamps", -1, 0, "0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.ratio, 10))
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(got, emptyBlock))
			assert.Contains(t, got, tt.pct)
		})
	}
}

func TestRenderLevel(t *testing.T) {
	got := stripANSI(RenderLevel(3, 0, 5))
	assert.Equal(t, "●●●○○", got)

	got = stripANSI(RenderLevel(9, 0, 5))
	assert.Equal(t, "●●●●●", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	got := stripANSI(RenderTable(
		[]string{"A", "NAME"},
		[][]string{{"1", "x"}, {"22", StyleGreen.Render("long name")}},
	))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "A   NAME", lines[0])
	assert.Equal(t, "1   x", lines[2])
	assert.Equal(t, "22  long name", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatRecords_Courses(t *testing.T) {
	courses := []domain.Course{{
		ID: 1, Name: "Go in Practice", Type: domain.CourseOnline,
		StartDate: "2024-01-15", Progress: 40,
		Status: domain.CourseInProgress, Quarter: domain.Q1,
	}}
	got := stripANSI(FormatRecords(domain.KindCourse, CourseColumns, courses))

	assert.Contains(t, got, "NAME")
	assert.Contains(t, got, "#1")
	assert.Contains(t, got, "Go in Practice")
	assert.Contains(t, got, "In Progress")
	assert.Contains(t, got, "2024-01-15 → present")
	assert.Contains(t, got, "40%")
}

func TestFormatRecords_Empty(t *testing.T) {
	got := stripANSI(FormatRecords(domain.KindSkill, SkillColumns, nil))
	assert.Equal(t, "No skills yet.\n", got)
}

func TestFormatProfile(t *testing.T) {
	got := stripANSI(FormatProfile(domain.Profile{
		Name: "Ada", Email: "ada@example.com",
		Level: domain.LevelSenior, Location: "chile", Profile: "backend",
	}))
	assert.Contains(t, got, "Ada")
	assert.Contains(t, got, "Senior")
	assert.Contains(t, got, "Chile")
	assert.Contains(t, got, "Back End")
}

func TestFormatTShape_ListsGaps(t *testing.T) {
	got := stripANSI(FormatTShape(tshape.Sample()))

	assert.Contains(t, got, "FULL STACK DEVELOPER (SENIOR)")
	assert.Contains(t, got, "Primary")
	assert.Contains(t, got, "Secondary")
	assert.Contains(t, got, "3 gap(s) to close:")
	assert.Contains(t, got, "Docker")
	assert.Contains(t, got, "Cypress")
}

func TestFormatGaps_None(t *testing.T) {
	got := stripANSI(FormatGaps(nil))
	assert.Contains(t, got, "No gaps")
}
