package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/repository"
	"github.com/alexanderramin/ladder/internal/sample"
	"github.com/alexanderramin/ladder/internal/service"
)

// Tracker bundles every list of the career tracker.
type Tracker struct {
	Courses        RecordUseCase[domain.Course]
	Coaching       RecordUseCase[domain.CoachingSession]
	Applications   RecordUseCase[domain.Application]
	Certifications RecordUseCase[domain.Certification]
	Education      RecordUseCase[domain.Education]
	Experience     RecordUseCase[domain.Experience]
	Skills         SkillUseCase
	Profile        ProfileUseCase
}

// NewMemoryTracker builds a process-local tracker, optionally holding the
// sample data.
func NewMemoryTracker(seed bool, observers ...service.UseCaseObserver) *Tracker {
	var (
		courses        []domain.Course
		coaching       []domain.CoachingSession
		applications   []domain.Application
		certifications []domain.Certification
		education      []domain.Education
		experience     []domain.Experience
		skills         []domain.Skill
		profile        domain.Profile
	)
	if seed {
		courses = sample.Courses()
		coaching = sample.CoachingSessions()
		applications = sample.Applications()
		certifications = sample.Certifications()
		education = sample.Education()
		experience = sample.Experience()
		skills = sample.Skills()
		profile = sample.Profile()
	}

	return &Tracker{
		Courses:        service.NewRecordService[domain.Course](repository.NewMemoryRecordRepo(courses...), domain.NewCourse, observers...),
		Coaching:       service.NewRecordService[domain.CoachingSession](repository.NewMemoryRecordRepo(coaching...), domain.NewCoachingSession, observers...),
		Applications:   service.NewRecordService[domain.Application](repository.NewMemoryRecordRepo(applications...), domain.NewApplication, observers...),
		Certifications: service.NewRecordService[domain.Certification](repository.NewMemoryRecordRepo(certifications...), domain.NewCertification, observers...),
		Education:      service.NewRecordService[domain.Education](repository.NewMemoryRecordRepo(education...), domain.NewEducation, observers...),
		Experience:     service.NewRecordService[domain.Experience](repository.NewMemoryRecordRepo(experience...), domain.NewExperience, observers...),
		Skills:         service.NewSkillService(repository.NewMemoryRecordRepo(skills...), observers...),
		Profile:        service.NewProfileService(repository.NewMemoryProfileRepo(profile), observers...),
	}
}

// NewSQLiteTracker builds a tracker on conn. With seed set, lists that have
// never been used receive the sample data.
func NewSQLiteTracker(ctx context.Context, conn *sql.DB, seed bool, observers ...service.UseCaseObserver) (*Tracker, error) {
	courses := repository.NewSQLiteRecordRepo[domain.Course](conn)
	coaching := repository.NewSQLiteRecordRepo[domain.CoachingSession](conn)
	applications := repository.NewSQLiteRecordRepo[domain.Application](conn)
	certifications := repository.NewSQLiteRecordRepo[domain.Certification](conn)
	education := repository.NewSQLiteRecordRepo[domain.Education](conn)
	experience := repository.NewSQLiteRecordRepo[domain.Experience](conn)
	skills := repository.NewSQLiteRecordRepo[domain.Skill](conn)
	profile := repository.NewSQLiteProfileRepo(conn)

	if seed {
		seeds := []func() error{
			func() error { return courses.Seed(ctx, sample.Courses()) },
			func() error { return coaching.Seed(ctx, sample.CoachingSessions()) },
			func() error { return applications.Seed(ctx, sample.Applications()) },
			func() error { return certifications.Seed(ctx, sample.Certifications()) },
			func() error { return education.Seed(ctx, sample.Education()) },
			func() error { return experience.Seed(ctx, sample.Experience()) },
			func() error { return skills.Seed(ctx, sample.Skills()) },
			func() error { return profile.Seed(ctx, sample.Profile()) },
		}
		for _, run := range seeds {
			if err := run(); err != nil {
				return nil, fmt.Errorf("seeding sample data: %w", err)
			}
		}
	}

	return &Tracker{
		Courses:        service.NewRecordService[domain.Course](courses, domain.NewCourse, observers...),
		Coaching:       service.NewRecordService[domain.CoachingSession](coaching, domain.NewCoachingSession, observers...),
		Applications:   service.NewRecordService[domain.Application](applications, domain.NewApplication, observers...),
		Certifications: service.NewRecordService[domain.Certification](certifications, domain.NewCertification, observers...),
		Education:      service.NewRecordService[domain.Education](education, domain.NewEducation, observers...),
		Experience:     service.NewRecordService[domain.Experience](experience, domain.NewExperience, observers...),
		Skills:         service.NewSkillService(skills, observers...),
		Profile:        service.NewProfileService(profile, observers...),
	}, nil
}
