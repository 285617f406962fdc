package testutil

import (
	"github.com/alexanderramin/ladder/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithCourseStatus(s domain.CourseStatus) CourseOption {
	return func(c *domain.Course) {
		c.Status = s
	}
}

func WithCourseProgress(pct int) CourseOption {
	return func(c *domain.Course) {
		c.Progress = pct
	}
}

func WithCourseType(t domain.CourseType) CourseOption {
	return func(c *domain.Course) {
		c.Type = t
	}
}

// NewTestCourse returns a valid, unsaved course.
func NewTestCourse(name string, opts ...CourseOption) domain.Course {
	c := domain.NewCourse()
	c.Name = name
	c.StartDate = "2024-01-15"
	c.EndDate = "2024-03-30"
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Coaching options
type CoachingOption func(*domain.CoachingSession)

func WithCoachingStatus(s domain.CoachingStatus) CoachingOption {
	return func(c *domain.CoachingSession) {
		c.Status = s
	}
}

func WithDuration(hours float64) CoachingOption {
	return func(c *domain.CoachingSession) {
		c.Duration = hours
	}
}

func NewTestCoaching(coach string, opts ...CoachingOption) domain.CoachingSession {
	c := domain.NewCoachingSession()
	c.Coach = coach
	c.StartDate = "2024-02-01"
	c.Objective = "Grow as a technical lead"
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func NewTestApplication(description string, hours int) domain.Application {
	a := domain.NewApplication()
	a.Description = description
	a.Hours = hours
	return a
}

func NewTestCertification(name string) domain.Certification {
	return domain.Certification{
		Name:         name,
		Organization: "Cloud Native Computing Foundation",
		Date:         "2024-05",
		CredentialID: "CKA-0001",
	}
}

func NewTestEducation(institution string) domain.Education {
	e := domain.NewEducation()
	e.Institution = institution
	e.Degree = "BSc Computer Science"
	e.StartYear = "2014"
	e.EndYear = "2018"
	return e
}

func NewTestExperience(company string) domain.Experience {
	return domain.Experience{
		Company:   company,
		Role:      "Software Engineer",
		StartDate: "2019-01",
	}
}

// Skill options
type SkillOption func(*domain.Skill)

func WithProficiency(p domain.Proficiency) SkillOption {
	return func(s *domain.Skill) {
		s.Proficiency = p
	}
}

func NewTestSkill(category, technology string, opts ...SkillOption) domain.Skill {
	s := domain.NewSkill()
	s.Category = category
	s.Technology = technology
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func NewTestProfile(name string) domain.Profile {
	return domain.Profile{
		Email:    "dev@example.com",
		Name:     name,
		Level:    domain.LevelMid,
		Location: "chile",
		Profile:  "backend",
	}
}
