package types_test

import (
	"testing"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func TestClampRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{name: "Within bounds", value: 700, expected: 700},
		{name: "At lower bound", value: 0, expected: 0},
		{name: "At upper bound", value: 1000, expected: 1000},
		{name: "Below lower bound", value: -47, expected: 0},
		{name: "Above upper bound", value: 1008, expected: 1000},
		{name: "Far below", value: -100000, expected: 0},
		{name: "Far above", value: 100000, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, types.ClampRating(tt.value))
		})
	}
}

func TestClampRatingDeltaSequences(t *testing.T) {
	t.Parallel()

	// A reward near the ceiling saturates instead of overflowing
	assert.Equal(t, 1000, types.ClampRating(998+10))

	// A penalty near the floor saturates at zero
	assert.Equal(t, 0, types.ClampRating(3-50))
}

func TestNewUserRatingDefaults(t *testing.T) {
	t.Parallel()

	rating := types.NewUserRating("user-1", time.Now())

	for _, category := range enum.AllCategories() {
		assert.Equal(t, types.DefaultRating, rating.Value(category), "category %s", category)
	}
}

func TestUserRatingSetValue(t *testing.T) {
	t.Parallel()

	rating := types.NewUserRating("user-1", time.Now())

	rating.Set(enum.CategoryCleanliness, 650)
	assert.Equal(t, 650, rating.Value(enum.CategoryCleanliness))

	// Other categories stay untouched
	assert.Equal(t, types.DefaultRating, rating.Value(enum.CategoryBehavior))

	rating.Set(enum.CategoryMaintainerBehavior, 710)
	assert.Equal(t, 710, rating.Value(enum.CategoryMaintainerBehavior))
}
