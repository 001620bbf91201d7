package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/service"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVoteTopicStore struct {
	topic      *types.Topic
	lastVotes  int
	lastStatus enum.TopicStatus
	updates    int
}

func (s *fakeVoteTopicStore) GetTopicByID(_ context.Context, topicID string) (*types.Topic, error) {
	if s.topic == nil || s.topic.ID != topicID {
		return nil, types.ErrTopicNotFound
	}

	copied := *s.topic

	return &copied, nil
}

func (s *fakeVoteTopicStore) UpdateVoteState(
	_ context.Context, _ string, votes int, status enum.TopicStatus,
) error {
	s.lastVotes = votes
	s.lastStatus = status
	s.updates++

	return nil
}

type fakeVoteStore struct {
	votes []*types.TopicVote
}

func (s *fakeVoteStore) InsertVote(_ context.Context, vote *types.TopicVote) error {
	copied := *vote
	copied.CreatedAt = time.Now()
	s.votes = append(s.votes, &copied)

	return nil
}

func (s *fakeVoteStore) GetLastVote(_ context.Context, topicID, userID string) (*types.TopicVote, error) {
	for i := len(s.votes) - 1; i >= 0; i-- {
		if s.votes[i].TopicID == topicID && s.votes[i].UserID == userID {
			return s.votes[i], nil
		}
	}

	return nil, nil
}

func (s *fakeVoteStore) CountVotes(_ context.Context, topicID string) (types.VoteTally, error) {
	var tally types.VoteTally

	for _, vote := range s.votes {
		if vote.TopicID != topicID {
			continue
		}

		if vote.VoteType == enum.VoteTypeUpvote {
			tally.Upvotes++
		} else {
			tally.Downvotes++
		}
	}

	return tally, nil
}

type fakeMembershipStore struct {
	members map[string]*types.HouseMember
	active  int
}

func (s *fakeMembershipStore) GetMember(_ context.Context, _, userID string) (*types.HouseMember, error) {
	member, ok := s.members[userID]
	if !ok {
		return nil, types.ErrNotHouseMember
	}

	return member, nil
}

func (s *fakeMembershipStore) CountActiveMembers(_ context.Context, _ string) (int, error) {
	return s.active, nil
}

func setupVoteService(activeMembers int) (*service.VoteService, *fakeVoteTopicStore, *fakeVoteStore) {
	topics := &fakeVoteTopicStore{
		topic: &types.Topic{
			ID:      "topic-1",
			HouseID: "house-1",
			Type:    enum.TopicTypeGeneral,
			Status:  enum.TopicStatusActive,
		},
	}
	votes := &fakeVoteStore{}
	members := &fakeMembershipStore{
		members: map[string]*types.HouseMember{
			"alice": {HouseID: "house-1", UserID: "alice", Status: enum.MemberStatusActive},
			"bob":   {HouseID: "house-1", UserID: "bob", Status: enum.MemberStatusActive},
			"carol": {HouseID: "house-1", UserID: "carol", Status: enum.MemberStatusPending},
		},
		active: activeMembers,
	}

	return service.NewVote(topics, votes, members, zap.NewNop()), topics, votes
}

func TestCastVoteRecordsAndTallies(t *testing.T) {
	t.Parallel()

	svc, topics, votes := setupVoteService(2)

	result, err := svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeUpvote)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Tally.Upvotes)
	assert.Equal(t, 0, result.Tally.Downvotes)
	assert.Equal(t, enum.VoteTypeUpvote, result.CurrentVote)
	assert.Len(t, votes.votes, 1)
	assert.Equal(t, 1, topics.updates)
	assert.Equal(t, enum.TopicStatusActive, topics.lastStatus)
}

func TestCastVoteRejectsConsecutiveIdentical(t *testing.T) {
	t.Parallel()

	svc, topics, votes := setupVoteService(2)

	_, err := svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeUpvote)
	require.NoError(t, err)

	_, err = svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeUpvote)
	require.ErrorIs(t, err, types.ErrSameConsecutiveVote)

	// The rejected vote left no trace
	assert.Len(t, votes.votes, 1)
	assert.Equal(t, 1, topics.updates)
}

func TestCastVoteAllowsAlternation(t *testing.T) {
	t.Parallel()

	svc, _, votes := setupVoteService(2)

	_, err := svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeUpvote)
	require.NoError(t, err)

	result, err := svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeDownvote)
	require.NoError(t, err)

	// Votes are append-only; both remain in the ledger
	assert.Len(t, votes.votes, 2)
	assert.Equal(t, 1, result.Tally.Upvotes)
	assert.Equal(t, 1, result.Tally.Downvotes)
}

func TestCastVoteSuspendsTopicBelowThreshold(t *testing.T) {
	t.Parallel()

	// Four active members: net below 2 suspends
	svc, topics, _ := setupVoteService(4)

	result, err := svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeDownvote)
	require.NoError(t, err)

	assert.Equal(t, enum.TopicStatusInactive, result.Topic.Status)
	assert.Equal(t, enum.TopicStatusInactive, topics.lastStatus)
	assert.Equal(t, -1, topics.lastVotes)
}

func TestCastVoteRejectsArchivedTopic(t *testing.T) {
	t.Parallel()

	svc, topics, votes := setupVoteService(2)
	topics.topic.Status = enum.TopicStatusArchived

	_, err := svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeUpvote)
	require.ErrorIs(t, err, types.ErrTopicArchived)
	assert.Empty(t, votes.votes)
}

func TestCastVoteRejectsNonMembers(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupVoteService(2)

	_, err := svc.CastVote(t.Context(), "topic-1", "mallory", enum.VoteTypeUpvote)
	require.ErrorIs(t, err, types.ErrNotHouseMember)
}

func TestCastVoteRejectsInactiveMembers(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupVoteService(2)

	_, err := svc.CastVote(t.Context(), "topic-1", "carol", enum.VoteTypeUpvote)
	require.ErrorIs(t, err, types.ErrMemberNotActive)
}

func TestCastVoteRejectsUnknownTopic(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupVoteService(2)

	_, err := svc.CastVote(t.Context(), "missing", "alice", enum.VoteTypeUpvote)
	require.ErrorIs(t, err, types.ErrTopicNotFound)
}

func TestGetVoteStatus(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupVoteService(2)

	status, err := svc.GetVoteStatus(t.Context(), "topic-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "both", status.NextAllowedVote)

	_, err = svc.CastVote(t.Context(), "topic-1", "alice", enum.VoteTypeUpvote)
	require.NoError(t, err)

	status, err = svc.GetVoteStatus(t.Context(), "topic-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "downvote", status.NextAllowedVote)
	assert.Equal(t, 1, status.Net)
}
