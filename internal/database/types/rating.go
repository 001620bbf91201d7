package types

import (
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
)

// Rating bounds. Every stored category value stays within [MinRating,
// MaxRating]; new users start every category at DefaultRating.
const (
	MinRating     = 0
	MaxRating     = 1000
	DefaultRating = 700
)

// ClampRating bounds a raw rating value to [MinRating, MaxRating].
func ClampRating(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

// UserRating holds one user's current score per rating category. The record
// is created at registration and mutated only through clamped deltas.
type UserRating struct {
	UserID                  string    `bun:",pk,notnull" json:"userId"`
	Cleanliness             int       `bun:",notnull"    json:"cleanliness"`
	Behavior                int       `bun:",notnull"    json:"behavior"`
	Payment                 int       `bun:",notnull"    json:"payment"`
	Maintenance             int       `bun:",notnull"    json:"maintenance"`
	Communication           int       `bun:",notnull"    json:"communication"`
	MaintainerCommunication int       `bun:",notnull"    json:"maintainerCommunication"`
	MaintainerBehavior      int       `bun:",notnull"    json:"maintainerBehavior"`
	MaintainerMaintenance   int       `bun:",notnull"    json:"maintainerMaintenance"`
	UpdatedAt               time.Time `bun:",notnull"    json:"updatedAt"`
}

// NewUserRating returns a rating record with every category at the default.
func NewUserRating(userID string, now time.Time) *UserRating {
	r := &UserRating{UserID: userID, UpdatedAt: now}
	for _, c := range enum.AllCategories() {
		r.Set(c, DefaultRating)
	}
	return r
}

// Value returns the current score for a category.
func (r *UserRating) Value(c enum.RatingCategory) int {
	switch c {
	case enum.CategoryCleanliness:
		return r.Cleanliness
	case enum.CategoryBehavior:
		return r.Behavior
	case enum.CategoryPayment:
		return r.Payment
	case enum.CategoryMaintenance:
		return r.Maintenance
	case enum.CategoryCommunication:
		return r.Communication
	case enum.CategoryMaintainerCommunication:
		return r.MaintainerCommunication
	case enum.CategoryMaintainerBehavior:
		return r.MaintainerBehavior
	case enum.CategoryMaintainerMaintenance:
		return r.MaintainerMaintenance
	}
	return 0
}

// Set stores a score for a category. The caller clamps first.
func (r *UserRating) Set(c enum.RatingCategory, v int) {
	switch c {
	case enum.CategoryCleanliness:
		r.Cleanliness = v
	case enum.CategoryBehavior:
		r.Behavior = v
	case enum.CategoryPayment:
		r.Payment = v
	case enum.CategoryMaintenance:
		r.Maintenance = v
	case enum.CategoryCommunication:
		r.Communication = v
	case enum.CategoryMaintainerCommunication:
		r.MaintainerCommunication = v
	case enum.CategoryMaintainerBehavior:
		r.MaintainerBehavior = v
	case enum.CategoryMaintainerMaintenance:
		r.MaintainerMaintenance = v
	}
}

// Values maps every category to its current score.
func (r *UserRating) Values() map[enum.RatingCategory]int {
	out := make(map[enum.RatingCategory]int, len(enum.AllCategories()))
	for _, c := range enum.AllCategories() {
		out[c] = r.Value(c)
	}
	return out
}

// RatingHistory is one entry of the append-only rating audit ledger.
// Entries are never mutated or deleted.
type RatingHistory struct {
	ID        int64               `bun:",pk,autoincrement" json:"id"`
	UserID    string              `bun:",notnull"          json:"userId"`
	Category  enum.RatingCategory `bun:",notnull"          json:"category"`
	OldValue  int                 `bun:",notnull"          json:"oldValue"`
	NewValue  int                 `bun:",notnull"          json:"newValue"`
	Delta     int                 `bun:",notnull"          json:"delta"`
	Reason    string              `bun:",notnull"          json:"reason"`
	TopicID   string              `bun:""                  json:"topicId,omitempty"`
	CreatedAt time.Time           `bun:",notnull"          json:"createdAt"`
}
