package service

import (
	"context"
	"fmt"

	"github.com/brkuhgk/Nestara/internal/database/models"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopicService handles topic creation and listing.
type TopicService struct {
	topics *models.TopicModel
	houses *models.HouseModel
	votes  *models.VoteModel
	logger *zap.Logger
}

// NewTopic creates a new topic service.
func NewTopic(
	topics *models.TopicModel, houses *models.HouseModel, votes *models.VoteModel, logger *zap.Logger,
) *TopicService {
	return &TopicService{
		topics: topics,
		houses: houses,
		votes:  votes,
		logger: logger.Named("topic_service"),
	}
}

// TopicWithPosition is a topic together with the caller's current vote.
type TopicWithPosition struct {
	*types.Topic
	UserVote enum.VoteType `json:"userVote,omitempty"`
}

// CreateTopic validates and inserts a topic for an active house member.
func (s *TopicService) CreateTopic(ctx context.Context, topic *types.Topic) (*types.Topic, error) {
	if _, err := enum.ParseTopicType(topic.Type.String()); err != nil {
		return nil, err
	}
	if err := topic.ValidateForCreate(); err != nil {
		return nil, err
	}

	member, err := s.houses.GetMember(ctx, topic.HouseID, topic.CreatedBy)
	if err != nil {
		return nil, err
	}
	if member.Status != enum.MemberStatusActive {
		return nil, types.ErrMemberNotActive
	}

	if topic.ID == "" {
		topic.ID = uuid.New().String()
	}
	if err := s.topics.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}

	s.logger.Info("Topic created",
		zap.String("topicID", topic.ID),
		zap.String("houseID", topic.HouseID),
		zap.String("type", topic.Type.String()))

	return topic, nil
}

// GetHouseTopics lists a house's topics with the caller's vote position on
// each, optionally filtered by type and status.
func (s *TopicService) GetHouseTopics(
	ctx context.Context, houseID, userID string, topicType enum.TopicType, status enum.TopicStatus,
) ([]*TopicWithPosition, error) {
	if _, err := s.houses.GetMember(ctx, houseID, userID); err != nil {
		return nil, err
	}

	topics, err := s.topics.GetHouseTopics(ctx, houseID, topicType, status)
	if err != nil {
		return nil, err
	}

	topicIDs := make([]string, len(topics))
	for i, t := range topics {
		topicIDs[i] = t.ID
	}

	positions, err := s.votes.GetUserPositions(ctx, topicIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vote positions: %w", err)
	}

	out := make([]*TopicWithPosition, len(topics))
	for i, t := range topics {
		out[i] = &TopicWithPosition{Topic: t, UserVote: positions[t.ID]}
	}

	return out, nil
}
