// Package importer reads and writes the JSON backup of a whole tracker.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/ladder/internal/domain"
)

// Document is the backup file layout. Record ids in a document are
// informational only; importing assigns fresh ids.
type Document struct {
	Profile        *domain.Profile          `json:"profile,omitempty"`
	Courses        []domain.Course          `json:"courses,omitempty"`
	Coaching       []domain.CoachingSession `json:"coaching,omitempty"`
	Applications   []domain.Application     `json:"applications,omitempty"`
	Certifications []domain.Certification   `json:"certifications,omitempty"`
	Education      []domain.Education       `json:"education,omitempty"`
	Experience     []domain.Experience      `json:"experience,omitempty"`
	Skills         []domain.Skill           `json:"skills,omitempty"`
}

// LoadDocument reads and parses a backup file.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDocument(f)
}

// ParseDocument decodes a backup. Unknown top-level or record fields are
// rejected so a typo does not silently drop data.
func ParseDocument(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &doc, nil
}

// Write encodes doc as indented JSON.
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Len returns the number of records in d, not counting the profile.
func (d *Document) Len() int {
	return len(d.Courses) + len(d.Coaching) + len(d.Applications) +
		len(d.Certifications) + len(d.Education) + len(d.Experience) + len(d.Skills)
}
