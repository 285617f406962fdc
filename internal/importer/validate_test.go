package importer

import (
	"strings"
	"testing"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	p := sample.Profile()
	return &Document{
		Profile:        &p,
		Courses:        sample.Courses(),
		Coaching:       sample.CoachingSessions(),
		Applications:   sample.Applications(),
		Certifications: sample.Certifications(),
		Education:      sample.Education(),
		Experience:     sample.Experience(),
		Skills:         sample.Skills(),
	}
}

func TestValidateDocument_Sample(t *testing.T) {
	assert.Empty(t, ValidateDocument(sampleDocument()))
}

func TestValidateDocument_Empty(t *testing.T) {
	assert.Empty(t, ValidateDocument(&Document{}))
}

func TestValidateDocument_ReportsEveryFailure(t *testing.T) {
	doc := sampleDocument()
	doc.Profile.Email = ""
	doc.Courses[1].Progress = 120
	doc.Skills = append(doc.Skills, domain.Skill{Category: "Cloud", Technology: "AWS", Proficiency: "guru"})

	errs := ValidateDocument(doc)
	require.Len(t, errs, 3)
	assert.True(t, strings.HasPrefix(errs[0].Error(), "profile:"))
	assert.True(t, strings.HasPrefix(errs[1].Error(), "courses[1]:"))
	assert.True(t, strings.HasPrefix(errs[2].Error(), "skills[8]:"))
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`{
		"courses": [{"name": "Go", "type": "online", "startDate": "2024-01-01", "status": "not-started", "quarter": "Q1"}],
		"skills": [{"category": "Backend", "technology": "Go", "proficiency": "competent"}]
	}`))
	require.NoError(t, err)
	assert.Nil(t, doc.Profile)
	require.Len(t, doc.Courses, 1)
	assert.Equal(t, "Go", doc.Courses[0].Name)
	assert.Equal(t, 2, doc.Len())
}

func TestParseDocument_RejectsUnknownFields(t *testing.T) {
	_, err := ParseDocument(strings.NewReader(`{"projects": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects")
}

func TestParseDocument_Malformed(t *testing.T) {
	_, err := ParseDocument(strings.NewReader(`{"courses": [`))
	assert.Error(t, err)
}
