package domain

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitNameTaken   = errors.New("a habit with this name already exists")
)

const (
	MinWeight     = 1
	DefaultWeight = 1
	MaxNameLen    = 100
)

// Habit is something the user tries to avoid. Name doubles as the key used
// in the history map, so renaming or deleting a habit leaves old days
// pointing at a name that no longer resolves.
type Habit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

func NewHabit(name string) (*Habit, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrHabitNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return nil, ErrHabitNameTooLong
	}

	return &Habit{
		ID:     uuid.NewString(),
		Name:   trimmed,
		Weight: DefaultWeight,
	}, nil
}

// ClampWeight enforces the weight floor applied on every write.
func ClampWeight(w int) int {
	if w < MinWeight {
		return MinWeight
	}
	return w
}

func (h *Habit) SetWeight(w int) {
	h.Weight = ClampWeight(w)
}

// TotalWeight sums the weight of every defined habit, floored at 1 so callers
// can divide by it.
func TotalWeight(habits []Habit) int {
	total := 0
	for _, h := range habits {
		total = AddWeight(total, h.Weight)
	}
	if total < 1 {
		return 1
	}
	return total
}

// AddWeight sums two weights, saturating at math.MaxInt instead of wrapping.
func AddWeight(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// WeightOf resolves a history name against the current habit list. Names of
// deleted habits weigh nothing.
func WeightOf(habits []Habit, name string) int {
	for _, h := range habits {
		if h.Name == name {
			return h.Weight
		}
	}
	return 0
}
