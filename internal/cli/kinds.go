package cli

import (
	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/pflag"
)

// recordKind describes how one record list is listed and edited, both on
// the command line and in the TUI.
type recordKind[T domain.Record[T]] struct {
	uc    app.RecordUseCase[T]
	cols  formatter.Columns[T]
	name  func(T) string
	bind  func(*pflag.FlagSet, *T)
	form  func(*T) (*huh.Form, formCommit)
	short string
}

func (k recordKind[T]) kind() domain.Kind { return k.uc.Kind() }

func courseKind(uc app.RecordUseCase[domain.Course]) recordKind[domain.Course] {
	return recordKind[domain.Course]{
		uc: uc, cols: formatter.CourseColumns, bind: bindCourse, form: courseForm,
		name:  func(c domain.Course) string { return c.Name },
		short: "Manage courses and learning",
	}
}

func coachingKind(uc app.RecordUseCase[domain.CoachingSession]) recordKind[domain.CoachingSession] {
	return recordKind[domain.CoachingSession]{
		uc: uc, cols: formatter.CoachingColumns, bind: bindCoaching, form: coachingForm,
		name:  func(s domain.CoachingSession) string { return s.Coach },
		short: "Manage coaching sessions",
	}
}

func applicationKind(uc app.RecordUseCase[domain.Application]) recordKind[domain.Application] {
	return recordKind[domain.Application]{
		uc: uc, cols: formatter.ApplicationColumns, bind: bindApplication, form: applicationForm,
		name:  func(a domain.Application) string { return formatter.Truncate(a.Description, 40) },
		short: "Manage applied learning",
	}
}

func certificationKind(uc app.RecordUseCase[domain.Certification]) recordKind[domain.Certification] {
	return recordKind[domain.Certification]{
		uc: uc, cols: formatter.CertificationColumns, bind: bindCertification, form: certificationForm,
		name:  func(c domain.Certification) string { return c.Name },
		short: "Manage certifications",
	}
}

func educationKind(uc app.RecordUseCase[domain.Education]) recordKind[domain.Education] {
	return recordKind[domain.Education]{
		uc: uc, cols: formatter.EducationColumns, bind: bindEducation, form: educationForm,
		name:  func(e domain.Education) string { return e.Institution },
		short: "Manage education",
	}
}

func experienceKind(uc app.RecordUseCase[domain.Experience]) recordKind[domain.Experience] {
	return recordKind[domain.Experience]{
		uc: uc, cols: formatter.ExperienceColumns, bind: bindExperience, form: experienceForm,
		name:  func(e domain.Experience) string { return e.Role + " @ " + e.Company },
		short: "Manage work experience",
	}
}

func skillKind(uc app.SkillUseCase) recordKind[domain.Skill] {
	return recordKind[domain.Skill]{
		uc: uc, cols: formatter.SkillColumns, bind: bindSkill, form: skillForm,
		name:  func(s domain.Skill) string { return s.Technology },
		short: "Manage the skills matrix",
	}
}
