package domain

type ApplicationProgress string

const (
	ApplicationOngoing  ApplicationProgress = "ongoing"
	ApplicationPartial  ApplicationProgress = "partial"
	ApplicationComplete ApplicationProgress = "complete"
)

var ApplicationProgressOptions = []Option{
	{string(ApplicationOngoing), "Ongoing"},
	{string(ApplicationPartial), "Partial"},
	{string(ApplicationComplete), "Complete"},
}

func (p ApplicationProgress) Label() string {
	switch p {
	case ApplicationOngoing:
		return "Ongoing"
	case ApplicationPartial:
		return "Partial"
	case ApplicationComplete:
		return "Complete"
	default:
		return string(p)
	}
}

func (p ApplicationProgress) Tone() Tone {
	switch p {
	case ApplicationComplete:
		return ToneSuccess
	case ApplicationPartial:
		return ToneWarning
	case ApplicationOngoing:
		return ToneInfo
	default:
		return ToneNeutral
	}
}

// Application records putting something learned into practice.
type Application struct {
	ID          int                 `json:"id"`
	Description string              `json:"description"`
	Hours       int                 `json:"hours"`
	Progress    ApplicationProgress `json:"progress"`
	Notes       string              `json:"notes"`
}

func NewApplication() Application {
	return Application{Progress: ApplicationOngoing}
}

func (a Application) Kind() Kind    { return KindApplication }
func (a Application) RecordID() int { return a.ID }
func (a Application) WithID(id int) Application {
	a.ID = id
	return a
}

func (a Application) Validate() error {
	if a.Hours < 0 {
		return fieldError("hours", "must not be negative, got %d", a.Hours)
	}
	return firstError(
		requireText("description", a.Description),
		oneOf("progress", string(a.Progress), ApplicationProgressOptions),
	)
}
