package domain

// Kind names one record list. The value doubles as the storage key and the
// singular CLI noun.
type Kind string

const (
	KindCourse        Kind = "course"
	KindCoaching      Kind = "coaching"
	KindApplication   Kind = "application"
	KindCertification Kind = "certification"
	KindEducation     Kind = "education"
	KindExperience    Kind = "experience"
	KindSkill         Kind = "skill"
	KindProfile       Kind = "profile"
)

// Plural returns the collection name used in HTTP routes.
func (k Kind) Plural() string {
	switch k {
	case KindCourse:
		return "courses"
	case KindCoaching:
		return "coaching"
	case KindApplication:
		return "applications"
	case KindCertification:
		return "certifications"
	case KindEducation:
		return "education"
	case KindExperience:
		return "experiences"
	case KindSkill:
		return "skills"
	case KindProfile:
		return "profile"
	default:
		return string(k) + "s"
	}
}

// Title returns the tab heading for the kind.
func (k Kind) Title() string {
	switch k {
	case KindCourse:
		return "Courses"
	case KindCoaching:
		return "Coaching"
	case KindApplication:
		return "Application"
	case KindCertification:
		return "Certifications"
	case KindEducation:
		return "Education"
	case KindExperience:
		return "Experience"
	case KindSkill:
		return "Skills"
	case KindProfile:
		return "Profile"
	default:
		return string(k)
	}
}

// Tone is the presentation class of an enum value. Renderers map it to a
// badge color.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
)

// Option is one selectable value of an enum field, as offered by forms.
type Option struct {
	Value string
	Label string
}
