package app

import (
	"context"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/editor"
	"github.com/alexanderramin/ladder/internal/service"
)

// RecordUseCase is what the CLI, TUI and HTTP surfaces need from one list.
// It also satisfies editor.Store.
type RecordUseCase[T domain.Record[T]] interface {
	Kind() domain.Kind
	Blank() T
	NewSession() *editor.Session[T]
	Add(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int, rec T) (T, error)
	Remove(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (T, error)
	List(ctx context.Context) ([]T, error)
}

type SkillUseCase interface {
	RecordUseCase[domain.Skill]
	Filter(ctx context.Context, f service.SkillFilter) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]string, error)
	SetProficiency(ctx context.Context, id int, p domain.Proficiency) (domain.Skill, error)
}

type ProfileUseCase interface {
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
}

var (
	_ RecordUseCase[domain.Course] = (*service.RecordService[domain.Course])(nil)
	_ SkillUseCase                 = (*service.SkillService)(nil)
	_ ProfileUseCase               = (*service.ProfileService)(nil)
)
