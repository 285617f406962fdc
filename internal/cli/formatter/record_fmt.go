package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/tshape"
)

// Columns describes how one record kind renders as a table.
type Columns[T any] struct {
	Headers []string
	Row     func(T) []string
}

func id(n int) string { return Dim("#" + strconv.Itoa(n)) }

var CourseColumns = Columns[domain.Course]{
	Headers: []string{"ID", "NAME", "TYPE", "DATES", "PROGRESS", "STATUS", "QUARTER"},
	Row: func(c domain.Course) []string {
		return []string{
			id(c.ID), c.Name, c.Type.Label(), DateRange(c.StartDate, c.EndDate),
			RenderProgress(c.ProgressRatio(), 10), Badge(c.Status), c.Quarter.Label(),
		}
	},
}

var CoachingColumns = Columns[domain.CoachingSession]{
	Headers: []string{"ID", "COACH", "DATES", "DURATION", "FREQUENCY", "OBJECTIVE", "STATUS"},
	Row: func(s domain.CoachingSession) []string {
		return []string{
			id(s.ID), s.Coach, DateRange(s.StartDate, s.EndDate),
			strconv.FormatFloat(s.Duration, 'f', -1, 64) + "h",
			s.Frequency.Label(), Truncate(s.Objective, 40), Badge(s.Status),
		}
	},
}

var ApplicationColumns = Columns[domain.Application]{
	Headers: []string{"ID", "DESCRIPTION", "HOURS", "PROGRESS", "NOTES"},
	Row: func(a domain.Application) []string {
		return []string{
			id(a.ID), Truncate(a.Description, 48), strconv.Itoa(a.Hours),
			Badge(a.Progress), OrDash(Truncate(a.Notes, 32)),
		}
	},
}

var CertificationColumns = Columns[domain.Certification]{
	Headers: []string{"ID", "NAME", "ORGANIZATION", "DATE", "CREDENTIAL"},
	Row: func(c domain.Certification) []string {
		return []string{id(c.ID), c.Name, c.Organization, c.Date, OrDash(c.CredentialID)}
	},
}

var EducationColumns = Columns[domain.Education]{
	Headers: []string{"ID", "INSTITUTION", "DEGREE", "STATUS", "YEARS"},
	Row: func(e domain.Education) []string {
		return []string{
			id(e.ID), e.Institution, e.Degree, Badge(e.Status), DateRange(e.StartYear, e.EndYear),
		}
	},
}

var ExperienceColumns = Columns[domain.Experience]{
	Headers: []string{"ID", "COMPANY", "ROLE", "DATES", "RESPONSIBILITIES"},
	Row: func(e domain.Experience) []string {
		return []string{
			id(e.ID), e.Company, e.Role, DateRange(e.StartDate, e.EndDate),
			OrDash(Truncate(e.Responsibilities, 40)),
		}
	},
}

var SkillColumns = Columns[domain.Skill]{
	Headers: []string{"ID", "CATEGORY", "TECHNOLOGY", "LEVEL", "PROFICIENCY"},
	Row: func(s domain.Skill) []string {
		return []string{
			id(s.ID), s.Category, s.Technology,
			RenderLevel(s.Proficiency.Level(), 0, tshape.MaxLevel), Badge(s.Proficiency),
		}
	},
}

// FormatRecords renders records as a table, or a dimmed placeholder when
// the list is empty.
func FormatRecords[T any](kind domain.Kind, cols Columns[T], records []T) string {
	if len(records) == 0 {
		return Dim(fmt.Sprintf("No %s yet.", strings.ToLower(kind.Title()))) + "\n"
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = cols.Row(r)
	}
	return RenderTable(cols.Headers, rows)
}

// FormatProfile renders the general-information card.
func FormatProfile(p domain.Profile) string {
	return RenderBox("Profile", KeyValue([][2]string{
		{"Name", p.Name},
		{"Email", p.Email},
		{"Level", p.Level.Label()},
		{"Location", p.Location.Label()},
		{"Profile", p.Profile.Label()},
		{"Manager", p.Manager},
		{"Description", p.Description},
		{"Known for", p.KnownFor},
		{"Loves tech because", p.LoveTechBecause},
	}))
}

// FormatTShape renders both skill bands of a T-Shape model with required
// and current levels, followed by the gap summary.
func FormatTShape(m tshape.Model) string {
	var b strings.Builder
	b.WriteString(Header(m.Title()) + "\n\n")
	b.WriteString(formatBand("Primary", m.Primary))
	b.WriteString("\n")
	b.WriteString(formatBand("Secondary", m.Secondary))
	b.WriteString("\n")
	b.WriteString(FormatGaps(m.Gaps()))
	return b.String()
}

func formatBand(title string, items []tshape.Item) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			it.Category, it.Name,
			RenderLevel(it.Required, 0, tshape.MaxLevel),
			RenderLevel(it.Current, it.Required, tshape.MaxLevel),
			levelLabel(it.Current),
		}
	}
	return Bold(title) + "\n" + RenderTable([]string{"CATEGORY", "SKILL", "REQUIRED", "CURRENT", ""}, rows)
}

// FormatGaps lists items whose current level is below the requirement.
func FormatGaps(gaps []tshape.Item) string {
	if len(gaps) == 0 {
		return StyleGreen.Render("No gaps. Every skill meets its required level.") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d gap(s) to close:", len(gaps))) + "\n")
	for _, g := range gaps {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleYellow.Render("▲"), g.Name,
			Dim(fmt.Sprintf("(%s → %s)", levelLabel(g.Current), levelLabel(g.Required))))
	}
	return b.String()
}

func levelLabel(level int) string {
	label, err := tshape.ProficiencyLabel(level)
	if err != nil {
		return strconv.Itoa(level)
	}
	return label
}
