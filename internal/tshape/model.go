package tshape

import (
	"errors"
	"fmt"
)

// MinLevel and MaxLevel bound every required and current level.
const (
	MinLevel = 1
	MaxLevel = 5
)

// ErrLevelOutOfRange is returned for levels outside MinLevel..MaxLevel.
var ErrLevelOutOfRange = errors.New("proficiency level out of range")

var levelLabels = [MaxLevel]string{
	"Novice",
	"Advanced Beginner",
	"Competent",
	"Proficient",
	"Expert",
}

// ProficiencyLabel returns the name of a 1-based level.
func ProficiencyLabel(level int) (string, error) {
	if level < MinLevel || level > MaxLevel {
		return "", fmt.Errorf("level %d: %w", level, ErrLevelOutOfRange)
	}
	return levelLabels[level-1], nil
}

// Labels returns the level names in ascending order.
func Labels() []string {
	out := levelLabels
	return out[:]
}

// Item is one skill of a role model with the level the role expects and the
// level the person has.
type Item struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Required int    `json:"required"`
	Current  int    `json:"current"`
}

// HasGap reports whether the current level is below the required one.
func (i Item) HasGap() bool {
	return i.Current < i.Required
}

// Ratio is the current level as a fraction of MaxLevel.
func (i Item) Ratio() float64 {
	return float64(i.Current) / MaxLevel
}

// Model is a T-shaped skill profile: deep primary skills and broad
// secondary ones.
type Model struct {
	Role      string `json:"role"`
	Level     string `json:"level"`
	Primary   []Item `json:"primary"`
	Secondary []Item `json:"secondary"`
}

// Title is the heading shown above the model, e.g. "Full Stack Developer (Senior)".
func (m Model) Title() string {
	if m.Level == "" {
		return m.Role
	}
	return fmt.Sprintf("%s (%s)", m.Role, m.Level)
}

// Gaps returns primary then secondary items whose current level is below the
// required level, each group in model order.
func (m Model) Gaps() []Item {
	var gaps []Item
	for _, group := range [][]Item{m.Primary, m.Secondary} {
		for _, it := range group {
			if it.HasGap() {
				gaps = append(gaps, it)
			}
		}
	}
	return gaps
}

// Validate rejects items with levels outside MinLevel..MaxLevel.
func (m Model) Validate() error {
	for _, group := range [][]Item{m.Primary, m.Secondary} {
		for _, it := range group {
			for _, lvl := range []int{it.Required, it.Current} {
				if lvl < MinLevel || lvl > MaxLevel {
					return fmt.Errorf("%s: level %d: %w", it.Name, lvl, ErrLevelOutOfRange)
				}
			}
		}
	}
	return nil
}
