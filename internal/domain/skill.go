package domain

// Proficiency is a Dreyfus-style skill rating.
type Proficiency string

const (
	ProficiencyNovice           Proficiency = "novice"
	ProficiencyAdvancedBeginner Proficiency = "advanced-beginner"
	ProficiencyCompetent        Proficiency = "competent"
	ProficiencyProficient       Proficiency = "proficient"
	ProficiencyExpert           Proficiency = "expert"
)

var ProficiencyOptions = []Option{
	{string(ProficiencyNovice), "Novice"},
	{string(ProficiencyAdvancedBeginner), "Advanced Beginner"},
	{string(ProficiencyCompetent), "Competent"},
	{string(ProficiencyProficient), "Proficient"},
	{string(ProficiencyExpert), "Expert"},
}

func (p Proficiency) Label() string {
	switch p {
	case ProficiencyNovice:
		return "Novice"
	case ProficiencyAdvancedBeginner:
		return "Advanced Beginner"
	case ProficiencyCompetent:
		return "Competent"
	case ProficiencyProficient:
		return "Proficient"
	case ProficiencyExpert:
		return "Expert"
	default:
		return string(p)
	}
}

func (p Proficiency) Tone() Tone {
	switch p {
	case ProficiencyExpert, ProficiencyProficient:
		return ToneSuccess
	case ProficiencyCompetent:
		return ToneInfo
	case ProficiencyAdvancedBeginner, ProficiencyNovice:
		return ToneWarning
	default:
		return ToneNeutral
	}
}

// Level returns the 1-based ordinal of p, or 0 for unknown values.
func (p Proficiency) Level() int {
	switch p {
	case ProficiencyNovice:
		return 1
	case ProficiencyAdvancedBeginner:
		return 2
	case ProficiencyCompetent:
		return 3
	case ProficiencyProficient:
		return 4
	case ProficiencyExpert:
		return 5
	default:
		return 0
	}
}

// Skill is a rated technology within a category.
type Skill struct {
	ID          int         `json:"id"`
	Category    string      `json:"category"`
	Technology  string      `json:"technology"`
	Proficiency Proficiency `json:"proficiency"`
}

func NewSkill() Skill {
	return Skill{Proficiency: ProficiencyNovice}
}

func (s Skill) Kind() Kind    { return KindSkill }
func (s Skill) RecordID() int { return s.ID }
func (s Skill) WithID(id int) Skill {
	s.ID = id
	return s
}

func (s Skill) Validate() error {
	return firstError(
		requireText("category", s.Category),
		requireText("technology", s.Technology),
		oneOf("proficiency", string(s.Proficiency), ProficiencyOptions),
	)
}
