package types

import (
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
)

// Topic represents a discussion or report item tied to a house.
//
// Category is required whenever Type is not general; it names the rating
// dimension affected when the topic ages out. ArchivedAt is non-null exactly
// when Status is archived, and archived is terminal.
type Topic struct {
	ID          string              `bun:",pk,notnull"        json:"id"`
	HouseID     string              `bun:",notnull"           json:"houseId"`
	CreatedBy   string              `bun:",notnull"           json:"createdBy"`
	CreatedFor  []string            `bun:",array"             json:"createdFor"`
	Type        enum.TopicType      `bun:",notnull"           json:"type"`
	Category    enum.RatingCategory `bun:""                   json:"category,omitempty"`
	Description string              `bun:",notnull"           json:"description"`
	Images      []string            `bun:",array"             json:"images,omitempty"`
	Status      enum.TopicStatus    `bun:",notnull"           json:"status"`
	Votes       int                 `bun:",notnull,default:0" json:"votes"`
	CreatedAt   time.Time           `bun:",notnull"           json:"createdAt"`
	ArchivedAt  *time.Time          `bun:""                   json:"archivedAt,omitempty"`
}

// IsArchived reports whether the topic reached its terminal state.
func (t *Topic) IsArchived() bool {
	return t.Status == enum.TopicStatusArchived
}

// ValidateForCreate checks the category/type coupling at the boundary.
func (t *Topic) ValidateForCreate() error {
	if t.Type != enum.TopicTypeGeneral && t.Category == "" {
		return ErrCategoryRequired
	}
	if t.Category != "" {
		if _, err := enum.ParseRatingCategory(t.Category.String()); err != nil {
			return err
		}
	}
	return nil
}
