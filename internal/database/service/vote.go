package service

import (
	"context"
	"fmt"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"go.uber.org/zap"
)

// VoteTopicStore is the topic access the vote service needs.
type VoteTopicStore interface {
	GetTopicByID(ctx context.Context, topicID string) (*types.Topic, error)
	UpdateVoteState(ctx context.Context, topicID string, votes int, status enum.TopicStatus) error
}

// VoteStore is the vote access the vote service needs.
type VoteStore interface {
	InsertVote(ctx context.Context, vote *types.TopicVote) error
	GetLastVote(ctx context.Context, topicID, userID string) (*types.TopicVote, error)
	CountVotes(ctx context.Context, topicID string) (types.VoteTally, error)
}

// MembershipStore is the house membership access the vote service needs.
type MembershipStore interface {
	GetMember(ctx context.Context, houseID, userID string) (*types.HouseMember, error)
	CountActiveMembers(ctx context.Context, houseID string) (int, error)
}

// VoteService enforces the voting rules and keeps topic tallies current.
type VoteService struct {
	topics  VoteTopicStore
	votes   VoteStore
	members MembershipStore
	logger  *zap.Logger
}

// NewVote creates a new vote service.
func NewVote(
	topics VoteTopicStore, votes VoteStore, members MembershipStore, logger *zap.Logger,
) *VoteService {
	return &VoteService{
		topics:  topics,
		votes:   votes,
		members: members,
		logger:  logger.Named("vote_service"),
	}
}

// VoteResult is the projection returned after a vote is recorded.
type VoteResult struct {
	Topic       *types.Topic    `json:"topic"`
	Tally       types.VoteTally `json:"tally"`
	CurrentVote enum.VoteType   `json:"currentVote"`
}

// CastVote records a vote and recomputes the topic's tally and derived
// status. Archived topics reject votes outright; a voter may never repeat
// their previous vote type on the same topic.
func (s *VoteService) CastVote(
	ctx context.Context, topicID, userID string, voteType enum.VoteType,
) (*VoteResult, error) {
	topic, err := s.topics.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	if topic.IsArchived() {
		return nil, types.ErrTopicArchived
	}

	member, err := s.members.GetMember(ctx, topic.HouseID, userID)
	if err != nil {
		return nil, err
	}
	if member.Status != enum.MemberStatusActive {
		return nil, types.ErrMemberNotActive
	}

	lastVote, err := s.votes.GetLastVote(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	if err := types.ValidateVoteSequence(lastVote, voteType); err != nil {
		return nil, err
	}

	vote := &types.TopicVote{
		TopicID:  topicID,
		UserID:   userID,
		VoteType: voteType,
	}
	if err := s.votes.InsertVote(ctx, vote); err != nil {
		return nil, err
	}

	tally, err := s.votes.CountVotes(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to recount votes: %w", err)
	}

	activeMembers, err := s.members.CountActiveMembers(ctx, topic.HouseID)
	if err != nil {
		return nil, err
	}

	status := types.DeriveTopicStatus(tally.Net(), activeMembers)
	if err := s.topics.UpdateVoteState(ctx, topicID, tally.Net(), status); err != nil {
		return nil, err
	}

	topic.Votes = tally.Net()
	topic.Status = status

	s.logger.Debug("Vote recorded",
		zap.String("topicID", topicID),
		zap.String("userID", userID),
		zap.String("voteType", voteType.String()),
		zap.Int("net", tally.Net()))

	return &VoteResult{
		Topic:       topic,
		Tally:       tally,
		CurrentVote: voteType,
	}, nil
}

// GetVoteStatus reports a voter's position on a topic along with the tally.
func (s *VoteService) GetVoteStatus(
	ctx context.Context, topicID, userID string,
) (*types.VoteStatus, error) {
	if _, err := s.topics.GetTopicByID(ctx, topicID); err != nil {
		return nil, err
	}

	lastVote, err := s.votes.GetLastVote(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}

	tally, err := s.votes.CountVotes(ctx, topicID)
	if err != nil {
		return nil, err
	}

	status := &types.VoteStatus{
		NextAllowedVote: types.NextAllowedVote(lastVote),
		Tally:           tally,
		Net:             tally.Net(),
	}
	if lastVote != nil {
		status.CurrentVote = lastVote.VoteType
	}

	return status, nil
}
