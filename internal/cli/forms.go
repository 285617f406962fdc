package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ladderHuhTheme returns the form theme matching the formatter palette.
func ladderHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(ladderHuhTheme()).WithShowHelp(false)
}

// formCommit moves staged text fields into the draft after the form
// completes. Numeric fields are edited as text and parsed here.
type formCommit func() error

func noCommit() error { return nil }

func textInput(title string, value *string, required bool) *huh.Input {
	in := huh.NewInput().Title(title).Value(value)
	if required {
		in = in.Validate(validateRequired)
	}
	return in
}

func textArea(title string, value *string, required bool) *huh.Text {
	t := huh.NewText().Title(title).Value(value).Lines(3)
	if required {
		t = t.Validate(validateRequired)
	}
	return t
}

func enumSelect[E ~string](title string, value *E, options []domain.Option) *huh.Select[E] {
	opts := make([]huh.Option[E], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, E(o.Value))
	}
	return huh.NewSelect[E]().Title(title).Options(opts...).Value(value)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePercent(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a number between 0 and 100")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateDuration(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < domain.MinCoachingDuration {
		return fmt.Errorf("enter at least %g hours", domain.MinCoachingDuration)
	}
	return nil
}

func courseForm(c *domain.Course) (*huh.Form, formCommit) {
	progress := strconv.Itoa(c.Progress)
	form := newForm(
		huh.NewGroup(
			textInput("Name", &c.Name, true),
			enumSelect("Type", &c.Type, domain.CourseTypeOptions),
			textInput("Start date (YYYY-MM-DD)", &c.StartDate, true),
			textInput("End date (YYYY-MM-DD)", &c.EndDate, false),
		),
		huh.NewGroup(
			huh.NewInput().Title("Progress (%)").Value(&progress).Validate(validatePercent),
			enumSelect("Status", &c.Status, domain.CourseStatusOptions),
			enumSelect("Quarter", &c.Quarter, domain.QuarterOptions),
		),
	)
	return form, func() error {
		n, err := strconv.Atoi(strings.TrimSpace(progress))
		if err != nil {
			return fmt.Errorf("progress %q: %w", progress, err)
		}
		c.Progress = n
		return nil
	}
}

func coachingForm(s *domain.CoachingSession) (*huh.Form, formCommit) {
	duration := strconv.FormatFloat(s.Duration, 'f', -1, 64)
	form := newForm(
		huh.NewGroup(
			textInput("Coach", &s.Coach, true),
			textInput("Start date (YYYY-MM-DD)", &s.StartDate, true),
			textInput("End date (YYYY-MM-DD)", &s.EndDate, false),
			huh.NewInput().Title("Duration (hours)").Value(&duration).Validate(validateDuration),
			enumSelect("Frequency", &s.Frequency, domain.FrequencyOptions),
		),
		huh.NewGroup(
			textArea("Objective", &s.Objective, true),
			textArea("Progress", &s.Progress, false),
			enumSelect("Status", &s.Status, domain.CoachingStatusOptions),
		),
	)
	return form, func() error {
		v, err := strconv.ParseFloat(strings.TrimSpace(duration), 64)
		if err != nil {
			return fmt.Errorf("duration %q: %w", duration, err)
		}
		s.Duration = v
		return nil
	}
}

func applicationForm(a *domain.Application) (*huh.Form, formCommit) {
	hours := strconv.Itoa(a.Hours)
	form := newForm(
		huh.NewGroup(
			textArea("Description", &a.Description, true),
			huh.NewInput().Title("Hours").Value(&hours).Validate(validateNonNegativeInt),
			enumSelect("Progress", &a.Progress, domain.ApplicationProgressOptions),
			textArea("Notes", &a.Notes, false),
		),
	)
	return form, func() error {
		n, err := strconv.Atoi(strings.TrimSpace(hours))
		if err != nil {
			return fmt.Errorf("hours %q: %w", hours, err)
		}
		a.Hours = n
		return nil
	}
}

func certificationForm(c *domain.Certification) (*huh.Form, formCommit) {
	return newForm(
		huh.NewGroup(
			textInput("Name", &c.Name, true),
			textInput("Organization", &c.Organization, true),
			textInput("Date (YYYY-MM)", &c.Date, true),
			textInput("Credential ID", &c.CredentialID, false),
			textInput("Credential URL", &c.CredentialURL, false),
		),
	), noCommit
}

func educationForm(e *domain.Education) (*huh.Form, formCommit) {
	return newForm(
		huh.NewGroup(
			textInput("Institution", &e.Institution, true),
			textInput("Degree", &e.Degree, true),
			enumSelect("Status", &e.Status, domain.EducationStatusOptions),
			textInput("Start year", &e.StartYear, true),
			textInput("End year", &e.EndYear, false),
			textArea("Details", &e.Details, false),
		),
	), noCommit
}

func experienceForm(e *domain.Experience) (*huh.Form, formCommit) {
	return newForm(
		huh.NewGroup(
			textInput("Company", &e.Company, true),
			textInput("Role", &e.Role, true),
			textInput("Start date (YYYY-MM)", &e.StartDate, true),
			textInput("End date (YYYY-MM)", &e.EndDate, false),
			textArea("Responsibilities", &e.Responsibilities, false),
		),
	), noCommit
}

func skillForm(s *domain.Skill) (*huh.Form, formCommit) {
	return newForm(
		huh.NewGroup(
			textInput("Category", &s.Category, true),
			textInput("Technology", &s.Technology, true),
			enumSelect("Proficiency", &s.Proficiency, domain.ProficiencyOptions),
		),
	), noCommit
}

func profileForm(p *domain.Profile) (*huh.Form, formCommit) {
	return newForm(
		huh.NewGroup(
			textInput("Name", &p.Name, true),
			textInput("Email", &p.Email, true),
			textInput("Manager", &p.Manager, false),
			enumSelect("Level", &p.Level, domain.LevelOptions),
			enumSelect("Location", &p.Location, domain.LocationOptions),
			enumSelect("Professional profile", &p.Profile, domain.ProfessionalProfileOptions),
		),
		huh.NewGroup(
			textArea("Description", &p.Description, false),
			textArea("Known for", &p.KnownFor, false),
			textArea("I love tech because", &p.LoveTechBecause, false),
		),
	), noCommit
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}
