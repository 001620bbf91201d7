package enum

import "fmt"

// TopicType represents the kind of discussion a topic holds.
type TopicType string

const (
	// TopicTypeGeneral is an ordinary discussion with no rating effect.
	TopicTypeGeneral TopicType = "general"
	// TopicTypeConflict reports a conflict and penalizes its targets on aging out.
	TopicTypeConflict TopicType = "conflict"
	// TopicTypeMentions praises its targets and rewards them on aging out.
	TopicTypeMentions TopicType = "mentions"
)

// ParseTopicType validates a raw topic type string.
func ParseTopicType(s string) (TopicType, error) {
	switch TopicType(s) {
	case TopicTypeGeneral, TopicTypeConflict, TopicTypeMentions:
		return TopicType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTopicType, s)
	}
}

func (t TopicType) String() string {
	return string(t)
}

// TopicStatus represents where a topic is in its lifecycle.
type TopicStatus string

const (
	TopicStatusActive TopicStatus = "active"
	// TopicStatusInactive marks a topic suspended by its vote tally.
	TopicStatusInactive TopicStatus = "inactive"
	// TopicStatusArchived is terminal; no transition leaves it.
	TopicStatusArchived TopicStatus = "archived"
)

// ParseTopicStatus validates a raw topic status string.
func ParseTopicStatus(s string) (TopicStatus, error) {
	switch TopicStatus(s) {
	case TopicStatusActive, TopicStatusInactive, TopicStatusArchived:
		return TopicStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTopicStatus, s)
	}
}

func (s TopicStatus) String() string {
	return string(s)
}
