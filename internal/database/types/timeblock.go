package types

import (
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
)

// TimeBlock reserves a shared house location for a user on a given date.
type TimeBlock struct {
	ID        string             `bun:",pk,notnull" json:"id"`
	HouseID   string             `bun:",notnull"    json:"houseId"`
	UserID    string             `bun:",notnull"    json:"userId"`
	Location  enum.HouseLocation `bun:",notnull"    json:"location"`
	Date      string             `bun:",notnull"    json:"date"` // YYYY-MM-DD
	StartTime string             `bun:",notnull"    json:"startTime"`
	EndTime   string             `bun:",notnull"    json:"endTime"`
	CreatedAt time.Time          `bun:",notnull"    json:"createdAt"`
}

// Overlaps reports whether two half-open [start, end) intervals on the same
// location and date collide. Times compare lexically in HH:MM form.
func (b *TimeBlock) Overlaps(other *TimeBlock) bool {
	if b.HouseID != other.HouseID || b.Location != other.Location || b.Date != other.Date {
		return false
	}
	return b.StartTime < other.EndTime && other.StartTime < b.EndTime
}
