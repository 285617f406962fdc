package domain

import "net/url"

// Certification is an earned credential.
type Certification struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Organization  string `json:"organization"`
	Date          string `json:"date"`
	CredentialID  string `json:"credentialId"`
	CredentialURL string `json:"credentialUrl"`
}

func NewCertification() Certification { return Certification{} }

func (c Certification) Kind() Kind    { return KindCertification }
func (c Certification) RecordID() int { return c.ID }
func (c Certification) WithID(id int) Certification {
	c.ID = id
	return c
}

func (c Certification) Validate() error {
	if err := firstError(
		requireText("name", c.Name),
		requireText("organization", c.Organization),
		requireText("date", c.Date),
	); err != nil {
		return err
	}
	if c.CredentialURL != "" {
		u, err := url.Parse(c.CredentialURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fieldError("credentialUrl", "must be an absolute URL, got %q", c.CredentialURL)
		}
	}
	return nil
}

type EducationStatus string

const (
	EducationCompleted  EducationStatus = "completed"
	EducationInProgress EducationStatus = "in-progress"
)

var EducationStatusOptions = []Option{
	{string(EducationCompleted), "Completed"},
	{string(EducationInProgress), "In Progress"},
}

func (s EducationStatus) Label() string {
	switch s {
	case EducationCompleted:
		return "Completed"
	case EducationInProgress:
		return "In Progress"
	default:
		return string(s)
	}
}

func (s EducationStatus) Tone() Tone {
	switch s {
	case EducationCompleted:
		return ToneSuccess
	case EducationInProgress:
		return ToneInfo
	default:
		return ToneNeutral
	}
}

// Education is a formal education entry. Years are kept as entered; an
// empty EndYear means ongoing.
type Education struct {
	ID          int             `json:"id"`
	Institution string          `json:"institution"`
	Degree      string          `json:"degree"`
	Status      EducationStatus `json:"status"`
	StartYear   string          `json:"startYear"`
	EndYear     string          `json:"endYear"`
	Details     string          `json:"details"`
}

func NewEducation() Education {
	return Education{Status: EducationCompleted}
}

func (e Education) Kind() Kind    { return KindEducation }
func (e Education) RecordID() int { return e.ID }
func (e Education) WithID(id int) Education {
	e.ID = id
	return e
}

func (e Education) Validate() error {
	return firstError(
		requireText("institution", e.Institution),
		requireText("degree", e.Degree),
		requireText("startYear", e.StartYear),
		validateYear("startYear", e.StartYear),
		validateYear("endYear", e.EndYear),
		oneOf("status", string(e.Status), EducationStatusOptions),
	)
}

func validateYear(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) != 4 {
		return fieldError(field, "must be a four digit year, got %q", value)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return fieldError(field, "must be a four digit year, got %q", value)
		}
	}
	return nil
}

// Experience is one position in the work history. An empty EndDate means
// current.
type Experience struct {
	ID               int    `json:"id"`
	Company          string `json:"company"`
	Role             string `json:"role"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Responsibilities string `json:"responsibilities"`
}

func NewExperience() Experience { return Experience{} }

func (e Experience) Kind() Kind    { return KindExperience }
func (e Experience) RecordID() int { return e.ID }
func (e Experience) WithID(id int) Experience {
	e.ID = id
	return e
}

func (e Experience) Validate() error {
	return firstError(
		requireText("company", e.Company),
		requireText("role", e.Role),
		requireText("startDate", e.StartDate),
	)
}
