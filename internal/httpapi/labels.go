package httpapi

import "github.com/alexanderramin/ladder/internal/domain"

type labelJSON struct {
	Label string      `json:"label"`
	Tone  domain.Tone `json:"tone,omitempty"`
}

type labeled interface {
	Label() string
	Tone() domain.Tone
}

func toned(v labeled) labelJSON {
	return labelJSON{Label: v.Label(), Tone: v.Tone()}
}

func courseLabels(c domain.Course) map[string]labelJSON {
	return map[string]labelJSON{
		"type":    toned(c.Type),
		"status":  toned(c.Status),
		"quarter": {Label: c.Quarter.Label()},
	}
}

func coachingLabels(s domain.CoachingSession) map[string]labelJSON {
	return map[string]labelJSON{
		"frequency": toned(s.Frequency),
		"status":    toned(s.Status),
	}
}

func applicationLabels(a domain.Application) map[string]labelJSON {
	return map[string]labelJSON{"progress": toned(a.Progress)}
}

func educationLabels(e domain.Education) map[string]labelJSON {
	return map[string]labelJSON{"status": toned(e.Status)}
}

func skillLabels(s domain.Skill) map[string]labelJSON {
	return map[string]labelJSON{"proficiency": toned(s.Proficiency)}
}

func profileLabels(p domain.Profile) map[string]labelJSON {
	return map[string]labelJSON{
		"level":    {Label: p.Level.Label()},
		"location": {Label: p.Location.Label()},
		"profile":  {Label: p.Profile.Label()},
	}
}

func noLabels[T any](T) map[string]labelJSON { return nil }
