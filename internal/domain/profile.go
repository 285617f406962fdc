package domain

type Level string

const (
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
	LevelLead   Level = "lead"
)

var LevelOptions = []Option{
	{string(LevelJunior), "Junior"},
	{string(LevelMid), "Mid-level"},
	{string(LevelSenior), "Senior"},
	{string(LevelLead), "Lead"},
}

func (l Level) Label() string {
	switch l {
	case LevelJunior:
		return "Junior"
	case LevelMid:
		return "Mid-level"
	case LevelSenior:
		return "Senior"
	case LevelLead:
		return "Lead"
	default:
		return string(l)
	}
}

type Location string

var LocationOptions = []Option{
	{"argentina", "Argentina"},
	{"brazil", "Brazil"},
	{"chile", "Chile"},
	{"colombia", "Colombia"},
	{"mexico", "Mexico"},
	{"peru", "Peru"},
}

func (l Location) Label() string {
	return optionLabel(LocationOptions, string(l))
}

type ProfessionalProfile string

var ProfessionalProfileOptions = []Option{
	{"fullstack", "Full Stack"},
	{"frontend", "Front End"},
	{"backend", "Back End"},
	{"sdet", "SDET"},
	{"qa-automation", "QA Automation Engineer"},
	{"qa-manual", "Manual QA"},
	{"scrum-master", "Scrum Master"},
	{"business-analyst", "Business Analyst"},
}

func (p ProfessionalProfile) Label() string {
	return optionLabel(ProfessionalProfileOptions, string(p))
}

func optionLabel(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Profile is the general-information form. There is exactly one per user.
type Profile struct {
	Email           string              `json:"email"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Manager         string              `json:"manager"`
	Level           Level               `json:"level"`
	Location        Location            `json:"location"`
	KnownFor        string              `json:"knownFor"`
	LoveTechBecause string              `json:"loveTechBecause"`
	Profile         ProfessionalProfile `json:"profile"`
}

func (p Profile) Validate() error {
	if err := firstError(
		requireText("email", p.Email),
		requireText("name", p.Name),
	); err != nil {
		return err
	}
	var errs []error
	if p.Level != "" {
		errs = append(errs, oneOf("level", string(p.Level), LevelOptions))
	}
	if p.Location != "" {
		errs = append(errs, oneOf("location", string(p.Location), LocationOptions))
	}
	if p.Profile != "" {
		errs = append(errs, oneOf("profile", string(p.Profile), ProfessionalProfileOptions))
	}
	return firstError(errs...)
}
