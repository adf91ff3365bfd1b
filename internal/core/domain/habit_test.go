package domain_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates habit with default weight", func(t *testing.T) {
		h, err := domain.NewHabit("  Doomscrolling ")

		assert.Nil(t, err)
		assert.NotNil(t, h)
		assert.Equal(t, "Doomscrolling", h.Name)
		assert.Equal(t, domain.DefaultWeight, h.Weight)
		assert.NotEmpty(t, h.ID)
	})

	t.Run("Success: IDs are unique", func(t *testing.T) {
		a, _ := domain.NewHabit("A")
		b, _ := domain.NewHabit("A")
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Error: Empty Name", func(t *testing.T) {
		_, err := domain.NewHabit("   ")
		assert.Equal(t, domain.ErrHabitNameEmpty, err)
	})

	t.Run("Error: Name Too Long", func(t *testing.T) {
		_, err := domain.NewHabit(strings.Repeat("a", 101))
		assert.Equal(t, domain.ErrHabitNameTooLong, err)
	})
}

func TestHabit_SetWeight(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"Keeps positive weight", 7, 7},
		{"Keeps minimum", 1, 1},
		{"Clamps zero", 0, 1},
		{"Clamps negative", -4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := domain.Habit{Name: "A", Weight: 3}
			h.SetWeight(tt.in)
			assert.Equal(t, tt.want, h.Weight)
		})
	}
}

func TestTotalWeight(t *testing.T) {
	assert.Equal(t, 1, domain.TotalWeight(nil), "floor avoids division by zero")
	assert.Equal(t, 4, domain.TotalWeight([]domain.Habit{{Weight: 3}, {Weight: 1}}))
	assert.Equal(t, math.MaxInt, domain.TotalWeight([]domain.Habit{{Weight: math.MaxInt}, {Weight: 1 << 20}}),
		"huge weights saturate instead of wrapping negative")
}

func TestWeightOf(t *testing.T) {
	habits := []domain.Habit{{Name: "Alcohol", Weight: 3}, {Name: "Sugar", Weight: 1}}

	assert.Equal(t, 3, domain.WeightOf(habits, "Alcohol"))
	assert.Equal(t, 0, domain.WeightOf(habits, "Deleted"), "orphaned names weigh nothing")
	assert.Equal(t, 0, domain.WeightOf(habits, "alcohol"), "join is case sensitive")
}
