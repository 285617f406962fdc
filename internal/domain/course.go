package domain

type CourseType string

const (
	CourseOnline        CourseType = "online-course"
	CourseWorkshop      CourseType = "workshop"
	CourseConference    CourseType = "conference"
	CourseCertification CourseType = "certification"
	CourseBook          CourseType = "book"
)

// CourseTypeOptions lists course types in form order.
var CourseTypeOptions = []Option{
	{string(CourseOnline), "Online Course"},
	{string(CourseWorkshop), "Workshop"},
	{string(CourseConference), "Conference"},
	{string(CourseCertification), "Certification"},
	{string(CourseBook), "Book"},
}

func (t CourseType) Label() string {
	switch t {
	case CourseOnline:
		return "Online Course"
	case CourseWorkshop:
		return "Workshop"
	case CourseConference:
		return "Conference"
	case CourseCertification:
		return "Certification"
	case CourseBook:
		return "Book"
	default:
		return string(t)
	}
}

func (t CourseType) Tone() Tone {
	return ToneNeutral
}

type CourseStatus string

const (
	CourseNotStarted CourseStatus = "not-started"
	CourseInProgress CourseStatus = "in-progress"
	CourseCompleted  CourseStatus = "completed"
)

var CourseStatusOptions = []Option{
	{string(CourseNotStarted), "Not Started"},
	{string(CourseInProgress), "In Progress"},
	{string(CourseCompleted), "Completed"},
}

func (s CourseStatus) Label() string {
	switch s {
	case CourseNotStarted:
		return "Not Started"
	case CourseInProgress:
		return "In Progress"
	case CourseCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func (s CourseStatus) Tone() Tone {
	switch s {
	case CourseCompleted:
		return ToneSuccess
	case CourseInProgress:
		return ToneInfo
	case CourseNotStarted:
		return ToneNeutral
	default:
		return ToneNeutral
	}
}

type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

var QuarterOptions = []Option{
	{string(Q1), "Q1"},
	{string(Q2), "Q2"},
	{string(Q3), "Q3"},
	{string(Q4), "Q4"},
}

func (q Quarter) Label() string { return string(q) }

// Course is one entry of the courses & learning list.
type Course struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Type      CourseType   `json:"type"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Progress  int          `json:"progress"`
	Status    CourseStatus `json:"status"`
	Quarter   Quarter      `json:"quarter"`
}

// NewCourse returns a blank course with the form defaults.
func NewCourse() Course {
	return Course{
		Type:    CourseOnline,
		Status:  CourseNotStarted,
		Quarter: Q1,
	}
}

func (c Course) Kind() Kind    { return KindCourse }
func (c Course) RecordID() int { return c.ID }
func (c Course) WithID(id int) Course {
	c.ID = id
	return c
}

func (c Course) Validate() error {
	if c.Progress < 0 || c.Progress > 100 {
		return fieldError("progress", "must be between 0 and 100, got %d", c.Progress)
	}
	return firstError(
		requireText("name", c.Name),
		requireText("startDate", c.StartDate),
		oneOf("type", string(c.Type), CourseTypeOptions),
		oneOf("status", string(c.Status), CourseStatusOptions),
		oneOf("quarter", string(c.Quarter), QuarterOptions),
	)
}

// ProgressRatio returns progress as a 0..1 fraction for progress bars.
func (c Course) ProgressRatio() float64 {
	return float64(c.Progress) / 100
}
