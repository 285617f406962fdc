package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/spf13/pflag"
)

// enumFlag is a pflag.Value that only accepts one enum's values. Labels are
// accepted too, case-insensitively, so "--status 'in progress'" works.
type enumFlag[E ~string] struct {
	target  *E
	options []domain.Option
}

func newEnumFlag[E ~string](target *E, options []domain.Option) *enumFlag[E] {
	return &enumFlag[E]{target: target, options: options}
}

func (f *enumFlag[E]) String() string {
	if f.target == nil {
		return ""
	}
	return string(*f.target)
}

func (f *enumFlag[E]) Set(v string) error {
	for _, o := range f.options {
		if strings.EqualFold(o.Value, v) || strings.EqualFold(o.Label, v) {
			*f.target = E(o.Value)
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", optionValues(f.options))
}

func (f *enumFlag[E]) Type() string { return "enum" }

func optionValues(options []domain.Option) string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return strings.Join(values, "|")
}

func enumUsage(what string, options []domain.Option) string {
	return fmt.Sprintf("%s (%s)", what, optionValues(options))
}

func bindCourse(fs *pflag.FlagSet, c *domain.Course) {
	fs.StringVar(&c.Name, "name", c.Name, "Course name")
	fs.Var(newEnumFlag(&c.Type, domain.CourseTypeOptions), "type", enumUsage("Course type", domain.CourseTypeOptions))
	fs.StringVar(&c.StartDate, "start", c.StartDate, "Start date (YYYY-MM-DD)")
	fs.StringVar(&c.EndDate, "end", c.EndDate, "End date (YYYY-MM-DD)")
	fs.IntVar(&c.Progress, "progress", c.Progress, "Progress percentage (0-100)")
	fs.Var(newEnumFlag(&c.Status, domain.CourseStatusOptions), "status", enumUsage("Status", domain.CourseStatusOptions))
	fs.Var(newEnumFlag(&c.Quarter, domain.QuarterOptions), "quarter", enumUsage("Quarter", domain.QuarterOptions))
}

func bindCoaching(fs *pflag.FlagSet, s *domain.CoachingSession) {
	fs.StringVar(&s.Coach, "coach", s.Coach, "Coach name")
	fs.StringVar(&s.StartDate, "start", s.StartDate, "Start date (YYYY-MM-DD)")
	fs.StringVar(&s.EndDate, "end", s.EndDate, "End date (YYYY-MM-DD)")
	fs.Float64Var(&s.Duration, "duration", s.Duration, "Session duration in hours")
	fs.Var(newEnumFlag(&s.Frequency, domain.FrequencyOptions), "frequency", enumUsage("Frequency", domain.FrequencyOptions))
	fs.StringVar(&s.Objective, "objective", s.Objective, "Coaching objective")
	fs.StringVar(&s.Progress, "notes", s.Progress, "Progress notes")
	fs.Var(newEnumFlag(&s.Status, domain.CoachingStatusOptions), "status", enumUsage("Status", domain.CoachingStatusOptions))
}

func bindApplication(fs *pflag.FlagSet, a *domain.Application) {
	fs.StringVar(&a.Description, "description", a.Description, "What was applied")
	fs.IntVar(&a.Hours, "hours", a.Hours, "Hours invested")
	fs.Var(newEnumFlag(&a.Progress, domain.ApplicationProgressOptions), "progress", enumUsage("Progress", domain.ApplicationProgressOptions))
	fs.StringVar(&a.Notes, "notes", a.Notes, "Notes")
}

func bindCertification(fs *pflag.FlagSet, c *domain.Certification) {
	fs.StringVar(&c.Name, "name", c.Name, "Certification name")
	fs.StringVar(&c.Organization, "org", c.Organization, "Issuing organization")
	fs.StringVar(&c.Date, "date", c.Date, "Date earned (YYYY-MM)")
	fs.StringVar(&c.CredentialID, "credential-id", c.CredentialID, "Credential ID")
	fs.StringVar(&c.CredentialURL, "credential-url", c.CredentialURL, "Credential URL")
}

func bindEducation(fs *pflag.FlagSet, e *domain.Education) {
	fs.StringVar(&e.Institution, "institution", e.Institution, "Institution")
	fs.StringVar(&e.Degree, "degree", e.Degree, "Degree or program")
	fs.Var(newEnumFlag(&e.Status, domain.EducationStatusOptions), "status", enumUsage("Status", domain.EducationStatusOptions))
	fs.StringVar(&e.StartYear, "start", e.StartYear, "Start year (YYYY)")
	fs.StringVar(&e.EndYear, "end", e.EndYear, "End year (YYYY), blank if ongoing")
	fs.StringVar(&e.Details, "details", e.Details, "Details")
}

func bindExperience(fs *pflag.FlagSet, e *domain.Experience) {
	fs.StringVar(&e.Company, "company", e.Company, "Company")
	fs.StringVar(&e.Role, "role", e.Role, "Role")
	fs.StringVar(&e.StartDate, "start", e.StartDate, "Start date (YYYY-MM)")
	fs.StringVar(&e.EndDate, "end", e.EndDate, "End date (YYYY-MM), blank if current")
	fs.StringVar(&e.Responsibilities, "responsibilities", e.Responsibilities, "Responsibilities")
}

func bindSkill(fs *pflag.FlagSet, s *domain.Skill) {
	fs.StringVar(&s.Category, "category", s.Category, "Skill category")
	fs.StringVar(&s.Technology, "technology", s.Technology, "Technology")
	fs.Var(newEnumFlag(&s.Proficiency, domain.ProficiencyOptions), "proficiency", enumUsage("Proficiency", domain.ProficiencyOptions))
}

func bindProfile(fs *pflag.FlagSet, p *domain.Profile) {
	fs.StringVar(&p.Name, "name", p.Name, "Full name")
	fs.StringVar(&p.Email, "email", p.Email, "Email")
	fs.StringVar(&p.Description, "description", p.Description, "Short description")
	fs.StringVar(&p.Manager, "manager", p.Manager, "Manager")
	fs.Var(newEnumFlag(&p.Level, domain.LevelOptions), "level", enumUsage("Level", domain.LevelOptions))
	fs.Var(newEnumFlag(&p.Location, domain.LocationOptions), "location", enumUsage("Location", domain.LocationOptions))
	fs.StringVar(&p.KnownFor, "known-for", p.KnownFor, "What you are known for")
	fs.StringVar(&p.LoveTechBecause, "love-tech", p.LoveTechBecause, "Why you love tech")
	fs.Var(newEnumFlag(&p.Profile, domain.ProfessionalProfileOptions), "profile", enumUsage("Professional profile", domain.ProfessionalProfileOptions))
}

// applyChangedFlags copies every flag the user set on src onto rec through
// a fresh flag set bound by bind. Untouched fields keep rec's values.
func applyChangedFlags[T any](src *pflag.FlagSet, rec *T, bind func(*pflag.FlagSet, *T)) error {
	dst := pflag.NewFlagSet("record", pflag.ContinueOnError)
	bind(dst, rec)

	var err error
	src.Visit(func(f *pflag.Flag) {
		if err != nil || dst.Lookup(f.Name) == nil {
			return
		}
		if setErr := dst.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("--%s: %w", f.Name, setErr)
		}
	})
	return err
}
