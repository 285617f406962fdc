package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/repository"
)

// ProfileService reads and saves the single general-information profile.
type ProfileService struct {
	repo     repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(repo repository.ProfileRepo, observers ...UseCaseObserver) *ProfileService {
	return &ProfileService{repo: repo, observer: useCaseObserverOrNoop(observers)}
}

// Get returns the stored profile, or an empty one if none was saved yet.
func (s *ProfileService) Get(ctx context.Context) (domain.Profile, error) {
	p, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.Profile{}, nil
	}
	return p, err
}

func (s *ProfileService) Save(ctx context.Context, p domain.Profile) (err error) {
	defer observe(ctx, s.observer, "save-profile", map[string]any{"kind": string(domain.KindProfile)})(&err)

	if err = p.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, p)
}
