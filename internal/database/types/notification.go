package types

import "time"

// Notification types emitted by the rating engine and topic flows.
const (
	NotificationRatingPenalty = "rating_penalty"
	NotificationRatingReward  = "rating_reward"
	NotificationTopicMention  = "topic_mention"
)

// Notification is a persisted message for a user. Delivery is fire-and-forget;
// a failed insert never affects the outcome that produced it.
type Notification struct {
	ID        string         `bun:",pk,notnull"            json:"id"`
	UserID    string         `bun:",notnull"               json:"userId"`
	Type      string         `bun:",notnull"               json:"type"`
	Message   string         `bun:",notnull"               json:"message"`
	Metadata  map[string]any `bun:",type:jsonb"            json:"metadata,omitempty"`
	Read      bool           `bun:",notnull,default:false" json:"read"`
	CreatedAt time.Time      `bun:",notnull"               json:"createdAt"`
}
