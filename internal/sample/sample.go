// Package sample holds the data a fresh tracker starts with.
package sample

import "github.com/alexanderramin/ladder/internal/domain"

func Courses() []domain.Course {
	return []domain.Course{
		{
			ID:        1,
			Name:      "Advanced React Patterns",
			Type:      domain.CourseOnline,
			StartDate: "2023-01-15",
			EndDate:   "2023-03-30",
			Progress:  75,
			Status:    domain.CourseInProgress,
			Quarter:   domain.Q1,
		},
		{
			ID:        2,
			Name:      "Docker and Kubernetes Fundamentals",
			Type:      domain.CourseWorkshop,
			StartDate: "2023-04-10",
			EndDate:   "2023-05-15",
			Progress:  25,
			Status:    domain.CourseInProgress,
			Quarter:   domain.Q2,
		},
	}
}

func CoachingSessions() []domain.CoachingSession {
	return []domain.CoachingSession{
		{
			ID:        1,
			Coach:     "Sarah Johnson",
			StartDate: "2023-02-01",
			EndDate:   "2023-07-31",
			Duration:  1,
			Frequency: domain.FrequencyBiWeekly,
			Objective: "Improve leadership and team management skills",
			Progress:  "Completed 10 sessions, showing improvement in delegation and conflict resolution",
			Status:    domain.CoachingActive,
		},
		{
			ID:        2,
			Coach:     "Michael Chen",
			StartDate: "2022-09-15",
			EndDate:   "2023-03-15",
			Duration:  2,
			Frequency: domain.FrequencyMonthly,
			Objective: "Enhance system architecture design skills",
			Progress:  "Completed all sessions, successfully applied learning to recent project",
			Status:    domain.CoachingCompleted,
		},
	}
}

func Applications() []domain.Application {
	return []domain.Application{
		{
			ID:          1,
			Description: "Applied React patterns learned from Advanced React course to refactor the authentication flow in our main product",
			Hours:       20,
			Progress:    domain.ApplicationComplete,
			Notes:       "Successfully reduced bundle size by 15% and improved authentication performance",
		},
		{
			ID:          2,
			Description: "Implementing Docker containerization for our microservices based on Docker workshop learnings",
			Hours:       15,
			Progress:    domain.ApplicationPartial,
			Notes:       "Completed containerization of 3 out of 5 services, facing some networking challenges",
		},
	}
}

func Certifications() []domain.Certification {
	return []domain.Certification{
		{
			ID:            1,
			Name:          "AWS Certified Solutions Architect",
			Organization:  "Amazon Web Services",
			Date:          "2022-05",
			CredentialID:  "AWS-123456",
			CredentialURL: "https://aws.amazon.com/verification",
		},
		{
			ID:            2,
			Name:          "Professional Scrum Master I",
			Organization:  "Scrum.org",
			Date:          "2021-11",
			CredentialID:  "PSM-987654",
			CredentialURL: "https://www.scrum.org/certificates",
		},
	}
}

func Education() []domain.Education {
	return []domain.Education{
		{
			ID:          1,
			Institution: "University of Technology",
			Degree:      "Bachelor of Science in Computer Science",
			Status:      domain.EducationCompleted,
			StartYear:   "2013",
			EndYear:     "2017",
			Details:     "Graduated with honors. Specialized in software engineering and artificial intelligence.",
		},
		{
			ID:          2,
			Institution: "Tech Academy",
			Degree:      "Master of Science in Data Science",
			Status:      domain.EducationInProgress,
			StartYear:   "2022",
			Details:     "Currently focusing on machine learning and big data analytics.",
		},
	}
}

func Experience() []domain.Experience {
	return []domain.Experience{
		{
			ID:               1,
			Company:          "Tech Solutions Inc.",
			Role:             "Senior Software Engineer",
			StartDate:        "2020-01",
			EndDate:          "2023-03",
			Responsibilities: "Led a team of 5 developers to build and maintain a cloud-based SaaS platform. Implemented CI/CD pipelines and improved system performance by 40%.",
		},
		{
			ID:               2,
			Company:          "Digital Innovations",
			Role:             "Software Developer",
			StartDate:        "2017-06",
			EndDate:          "2019-12",
			Responsibilities: "Developed and maintained RESTful APIs for mobile applications. Collaborated with UX designers to implement responsive web interfaces.",
		},
	}
}

func Skills() []domain.Skill {
	return []domain.Skill{
		{ID: 1, Category: "Frontend", Technology: "React", Proficiency: domain.ProficiencyExpert},
		{ID: 2, Category: "Frontend", Technology: "Angular", Proficiency: domain.ProficiencyCompetent},
		{ID: 3, Category: "Backend", Technology: "Node.js", Proficiency: domain.ProficiencyProficient},
		{ID: 4, Category: "Backend", Technology: "Python", Proficiency: domain.ProficiencyAdvancedBeginner},
		{ID: 5, Category: "Database", Technology: "MongoDB", Proficiency: domain.ProficiencyCompetent},
		{ID: 6, Category: "Database", Technology: "PostgreSQL", Proficiency: domain.ProficiencyProficient},
		{ID: 7, Category: "DevOps", Technology: "Docker", Proficiency: domain.ProficiencyNovice},
		{ID: 8, Category: "DevOps", Technology: "Kubernetes", Proficiency: domain.ProficiencyNovice},
	}
}

func Profile() domain.Profile {
	return domain.Profile{
		Email:           "john.doe@example.com",
		Name:            "John Doe",
		Description:     "Experienced software engineer with a passion for building scalable web applications.",
		Manager:         "Jane Smith",
		Level:           domain.LevelSenior,
		Location:        "mexico",
		KnownFor:        "Problem solving, React, Node.js",
		LoveTechBecause: "I love technology because it allows me to create solutions that impact people's lives.",
		Profile:         "fullstack",
	}
}
