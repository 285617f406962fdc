package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/repository"
)

const (
	// fuzzyMinRunes is the shortest search term matched by edit distance.
	fuzzyMinRunes = 4
	// fuzzyMaxDistance is the largest edit distance counted as a match.
	fuzzyMaxDistance = 2
)

// SkillFilter narrows the skills list. Zero fields match everything.
type SkillFilter struct {
	Search      string
	Category    string
	Proficiency domain.Proficiency
}

func (f SkillFilter) match(s domain.Skill) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, s.Category) {
		return false
	}
	if f.Proficiency != "" && f.Proficiency != s.Proficiency {
		return false
	}
	return matchesSearch(s, f.Search)
}

func matchesSearch(s domain.Skill, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	tech := strings.ToLower(s.Technology)
	if strings.Contains(tech, term) || strings.Contains(strings.ToLower(s.Category), term) {
		return true
	}
	if utf8.RuneCountInString(term) < fuzzyMinRunes {
		return false
	}
	return levenshtein.ComputeDistance(tech, term) <= fuzzyMaxDistance
}

// SkillService adds search and inline rating to the skills list.
type SkillService struct {
	*RecordService[domain.Skill]
}

func NewSkillService(repo repository.RecordRepo[domain.Skill], observers ...UseCaseObserver) *SkillService {
	return &SkillService{RecordService: NewRecordService(repo, domain.NewSkill, observers...)}
}

// Filter returns the skills matching f in list order.
func (s *SkillService) Filter(ctx context.Context, f SkillFilter) ([]domain.Skill, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Skill
	for _, sk := range all {
		if f.match(sk) {
			out = append(out, sk)
		}
	}
	return out, nil
}

// Categories returns the distinct categories in first-seen order.
func (s *SkillService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	var out []string
	for _, sk := range all {
		if !seen[sk.Category] {
			seen[sk.Category] = true
			out = append(out, sk.Category)
		}
	}
	return out, nil
}

// SetProficiency changes the rating of one skill and leaves its other
// fields alone, including edits that land while the rating is applied.
func (s *SkillService) SetProficiency(ctx context.Context, id int, p domain.Proficiency) (domain.Skill, error) {
	return s.Modify(ctx, id, func(sk domain.Skill) domain.Skill {
		sk.Proficiency = p
		return sk
	})
}
