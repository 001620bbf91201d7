package types_test

import (
	"testing"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVoteSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		last    *types.TopicVote
		next    enum.VoteType
		wantErr error
	}{
		{
			name: "First vote is always allowed",
			last: nil,
			next: enum.VoteTypeUpvote,
		},
		{
			name:    "Repeating an upvote is rejected",
			last:    &types.TopicVote{VoteType: enum.VoteTypeUpvote},
			next:    enum.VoteTypeUpvote,
			wantErr: types.ErrSameConsecutiveVote,
		},
		{
			name:    "Repeating a downvote is rejected",
			last:    &types.TopicVote{VoteType: enum.VoteTypeDownvote},
			next:    enum.VoteTypeDownvote,
			wantErr: types.ErrSameConsecutiveVote,
		},
		{
			name: "Switching from up to down is allowed",
			last: &types.TopicVote{VoteType: enum.VoteTypeUpvote},
			next: enum.VoteTypeDownvote,
		},
		{
			name: "Switching from down to up is allowed",
			last: &types.TopicVote{VoteType: enum.VoteTypeDownvote},
			next: enum.VoteTypeUpvote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := types.ValidateVoteSequence(tt.last, tt.next)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNextAllowedVote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "both", types.NextAllowedVote(nil))
	assert.Equal(t, "downvote", types.NextAllowedVote(&types.TopicVote{VoteType: enum.VoteTypeUpvote}))
	assert.Equal(t, "upvote", types.NextAllowedVote(&types.TopicVote{VoteType: enum.VoteTypeDownvote}))
}

func TestDeriveTopicStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		net           int
		activeMembers int
		expected      enum.TopicStatus
	}{
		{name: "Net above half stays active", net: 3, activeMembers: 4, expected: enum.TopicStatusActive},
		{name: "Net exactly half stays active", net: 2, activeMembers: 4, expected: enum.TopicStatusActive},
		{name: "Net just below half suspends", net: 1, activeMembers: 4, expected: enum.TopicStatusInactive},
		{name: "Negative net suspends", net: -2, activeMembers: 4, expected: enum.TopicStatusInactive},
		{name: "Odd member count uses true half", net: 2, activeMembers: 5, expected: enum.TopicStatusInactive},
		{name: "Odd member count above half", net: 3, activeMembers: 5, expected: enum.TopicStatusActive},
		{name: "Empty house with zero net stays active", net: 0, activeMembers: 0, expected: enum.TopicStatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, types.DeriveTopicStatus(tt.net, tt.activeMembers))
		})
	}
}

func TestVoteTallyNet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, types.VoteTally{Upvotes: 5, Downvotes: 3}.Net())
	assert.Equal(t, -4, types.VoteTally{Upvotes: 0, Downvotes: 4}.Net())
	assert.Equal(t, 0, types.VoteTally{}.Net())
}
