package importer

import (
	"fmt"

	"github.com/alexanderramin/ladder/internal/domain"
)

// ValidateDocument checks every record before anything is written.
// Returns a slice of all validation errors found.
func ValidateDocument(doc *Document) []error {
	var errs []error

	if doc.Profile != nil {
		if err := doc.Profile.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("profile: %w", err))
		}
	}

	errs = append(errs, validateRecords("courses", doc.Courses)...)
	errs = append(errs, validateRecords("coaching", doc.Coaching)...)
	errs = append(errs, validateRecords("applications", doc.Applications)...)
	errs = append(errs, validateRecords("certifications", doc.Certifications)...)
	errs = append(errs, validateRecords("education", doc.Education)...)
	errs = append(errs, validateRecords("experience", doc.Experience)...)
	errs = append(errs, validateRecords("skills", doc.Skills)...)

	return errs
}

func validateRecords[T domain.Record[T]](field string, records []T) []error {
	var errs []error
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", field, i, err))
		}
	}
	return errs
}
