package types_test

import (
	"testing"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func block(location enum.HouseLocation, date, start, end string) *types.TimeBlock {
	return &types.TimeBlock{
		HouseID:   "house-1",
		Location:  location,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestTimeBlockOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *types.TimeBlock
		b        *types.TimeBlock
		expected bool
	}{
		{
			name:     "Identical slots overlap",
			a:        block(enum.LocationKitchen, "2026-09-01", "10:00", "11:00"),
			b:        block(enum.LocationKitchen, "2026-09-01", "10:00", "11:00"),
			expected: true,
		},
		{
			name:     "Partial overlap",
			a:        block(enum.LocationKitchen, "2026-09-01", "10:00", "11:00"),
			b:        block(enum.LocationKitchen, "2026-09-01", "10:30", "11:30"),
			expected: true,
		},
		{
			name:     "Containment overlaps",
			a:        block(enum.LocationKitchen, "2026-09-01", "09:00", "12:00"),
			b:        block(enum.LocationKitchen, "2026-09-01", "10:00", "11:00"),
			expected: true,
		},
		{
			name:     "Back to back slots do not overlap",
			a:        block(enum.LocationKitchen, "2026-09-01", "10:00", "11:00"),
			b:        block(enum.LocationKitchen, "2026-09-01", "11:00", "12:00"),
			expected: false,
		},
		{
			name:     "Different locations never overlap",
			a:        block(enum.LocationKitchen, "2026-09-01", "10:00", "11:00"),
			b:        block(enum.LocationBathroom, "2026-09-01", "10:00", "11:00"),
			expected: false,
		},
		{
			name:     "Different dates never overlap",
			a:        block(enum.LocationKitchen, "2026-09-01", "10:00", "11:00"),
			b:        block(enum.LocationKitchen, "2026-09-02", "10:00", "11:00"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}
