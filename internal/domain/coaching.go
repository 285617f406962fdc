package domain

type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
)

var FrequencyOptions = []Option{
	{string(FrequencyWeekly), "Weekly"},
	{string(FrequencyBiWeekly), "Bi-weekly"},
	{string(FrequencyMonthly), "Monthly"},
}

func (f Frequency) Label() string {
	switch f {
	case FrequencyWeekly:
		return "Weekly"
	case FrequencyBiWeekly:
		return "Bi-weekly"
	case FrequencyMonthly:
		return "Monthly"
	default:
		return string(f)
	}
}

func (f Frequency) Tone() Tone {
	return ToneNeutral
}

type CoachingStatus string

const (
	CoachingActive    CoachingStatus = "active"
	CoachingOnHold    CoachingStatus = "on-hold"
	CoachingCompleted CoachingStatus = "completed"
)

var CoachingStatusOptions = []Option{
	{string(CoachingActive), "Active"},
	{string(CoachingOnHold), "On Hold"},
	{string(CoachingCompleted), "Completed"},
}

func (s CoachingStatus) Label() string {
	switch s {
	case CoachingActive:
		return "Active"
	case CoachingOnHold:
		return "On Hold"
	case CoachingCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func (s CoachingStatus) Tone() Tone {
	switch s {
	case CoachingActive:
		return ToneSuccess
	case CoachingOnHold:
		return ToneWarning
	case CoachingCompleted:
		return ToneInfo
	default:
		return ToneNeutral
	}
}

// MinCoachingDuration is the shortest accepted session length in hours.
const MinCoachingDuration = 0.5

// CoachingSession is a coaching engagement with one coach.
type CoachingSession struct {
	ID        int            `json:"id"`
	Coach     string         `json:"coach"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Duration  float64        `json:"duration"`
	Frequency Frequency      `json:"frequency"`
	Objective string         `json:"objective"`
	Progress  string         `json:"progress"`
	Status    CoachingStatus `json:"status"`
}

func NewCoachingSession() CoachingSession {
	return CoachingSession{
		Duration:  1,
		Frequency: FrequencyWeekly,
		Status:    CoachingActive,
	}
}

func (s CoachingSession) Kind() Kind    { return KindCoaching }
func (s CoachingSession) RecordID() int { return s.ID }
func (s CoachingSession) WithID(id int) CoachingSession {
	s.ID = id
	return s
}

func (s CoachingSession) Validate() error {
	if s.Duration < MinCoachingDuration {
		return fieldError("duration", "must be at least %.1f hours, got %g", MinCoachingDuration, s.Duration)
	}
	return firstError(
		requireText("coach", s.Coach),
		requireText("startDate", s.StartDate),
		requireText("objective", s.Objective),
		oneOf("frequency", string(s.Frequency), FrequencyOptions),
		oneOf("status", string(s.Status), CoachingStatusOptions),
	)
}
