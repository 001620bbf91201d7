package types

import (
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
)

// TopicVote is a single vote cast on a topic. Votes are append-only: a voter
// changing position inserts a new row, it never edits or deletes old ones.
type TopicVote struct {
	ID        string        `bun:",pk,notnull" json:"id"`
	TopicID   string        `bun:",notnull"    json:"topicId"`
	UserID    string        `bun:",notnull"    json:"userId"`
	VoteType  enum.VoteType `bun:",notnull"    json:"voteType"`
	CreatedAt time.Time     `bun:",notnull"    json:"createdAt"`
}

// VoteTally aggregates all recorded votes on a topic.
type VoteTally struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Net returns upvotes minus downvotes.
func (t VoteTally) Net() int {
	return t.Upvotes - t.Downvotes
}

// VoteStatus is a voter's view of a topic's votes.
type VoteStatus struct {
	CurrentVote     enum.VoteType `json:"currentVote,omitempty"`
	NextAllowedVote string        `json:"nextAllowedVote"`
	Tally           VoteTally     `json:"tally"`
	Net             int           `json:"net"`
}

// ValidateVoteSequence enforces the no-consecutive-identical-votes rule.
// last is nil when the voter has no prior vote on the topic.
func ValidateVoteSequence(last *TopicVote, next enum.VoteType) error {
	if last != nil && last.VoteType == next {
		return ErrSameConsecutiveVote
	}
	return nil
}

// NextAllowedVote names which vote types the voter may cast next.
func NextAllowedVote(last *TopicVote) string {
	if last == nil {
		return "both"
	}
	if last.VoteType == enum.VoteTypeUpvote {
		return enum.VoteTypeDownvote.String()
	}
	return enum.VoteTypeUpvote.String()
}

// DeriveTopicStatus computes the vote-driven status of a non-archived topic:
// a net tally below half the house's active member count suspends the topic.
func DeriveTopicStatus(net, activeMembers int) enum.TopicStatus {
	if float64(net) < float64(activeMembers)/2 {
		return enum.TopicStatusInactive
	}
	return enum.TopicStatusActive
}
