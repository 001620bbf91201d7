package enum

import "fmt"

// VoteType represents the direction of a vote on a topic.
type VoteType string

const (
	VoteTypeUpvote   VoteType = "upvote"
	VoteTypeDownvote VoteType = "downvote"
)

// ParseVoteType validates a raw vote type string.
func ParseVoteType(s string) (VoteType, error) {
	switch VoteType(s) {
	case VoteTypeUpvote, VoteTypeDownvote:
		return VoteType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVoteType, s)
	}
}

func (v VoteType) String() string {
	return string(v)
}
