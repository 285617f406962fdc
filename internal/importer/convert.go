package importer

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/domain"
)

// Result counts what an import wrote.
type Result struct {
	Records map[domain.Kind]int
	Profile bool
}

// Total returns the number of records written.
func (r Result) Total() int {
	n := 0
	for _, c := range r.Records {
		n += c
	}
	return n
}

// Import validates doc and appends its records to t in document order.
// Nothing is written when validation fails. A present profile replaces
// the stored one.
func Import(ctx context.Context, t *app.Tracker, doc *Document) (Result, error) {
	if errs := ValidateDocument(doc); len(errs) > 0 {
		return Result{}, formatValidationErrors(errs)
	}

	res := Result{Records: make(map[domain.Kind]int)}
	steps := []func() error{
		func() error { return appendAll(ctx, t.Courses, doc.Courses, res.Records) },
		func() error { return appendAll(ctx, t.Coaching, doc.Coaching, res.Records) },
		func() error { return appendAll(ctx, t.Applications, doc.Applications, res.Records) },
		func() error { return appendAll(ctx, t.Certifications, doc.Certifications, res.Records) },
		func() error { return appendAll(ctx, t.Education, doc.Education, res.Records) },
		func() error { return appendAll(ctx, t.Experience, doc.Experience, res.Records) },
		func() error { return appendAll[domain.Skill](ctx, t.Skills, doc.Skills, res.Records) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return res, err
		}
	}

	if doc.Profile != nil {
		if err := t.Profile.Save(ctx, *doc.Profile); err != nil {
			return res, fmt.Errorf("saving profile: %w", err)
		}
		res.Profile = true
	}
	return res, nil
}

func appendAll[T domain.Record[T]](ctx context.Context, uc app.RecordUseCase[T], records []T, counts map[domain.Kind]int) error {
	for i, rec := range records {
		if _, err := uc.Add(ctx, rec.WithID(0)); err != nil {
			return fmt.Errorf("adding %s %d of %d: %w", uc.Kind(), i+1, len(records), err)
		}
		counts[uc.Kind()]++
	}
	return nil
}

// Export snapshots every list and the profile of t.
func Export(ctx context.Context, t *app.Tracker) (*Document, error) {
	var (
		doc Document
		err error
	)
	if doc.Courses, err = t.Courses.List(ctx); err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	if doc.Coaching, err = t.Coaching.List(ctx); err != nil {
		return nil, fmt.Errorf("listing coaching: %w", err)
	}
	if doc.Applications, err = t.Applications.List(ctx); err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	if doc.Certifications, err = t.Certifications.List(ctx); err != nil {
		return nil, fmt.Errorf("listing certifications: %w", err)
	}
	if doc.Education, err = t.Education.List(ctx); err != nil {
		return nil, fmt.Errorf("listing education: %w", err)
	}
	if doc.Experience, err = t.Experience.List(ctx); err != nil {
		return nil, fmt.Errorf("listing experience: %w", err)
	}
	if doc.Skills, err = t.Skills.List(ctx); err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}

	p, err := t.Profile.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	// A never-saved profile is left out so re-importing does not fail
	// validation on it.
	if p != (domain.Profile{}) {
		doc.Profile = &p
	}
	return &doc, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
}
