package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteModel handles database operations for topic votes.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a new vote model.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// InsertVote appends a vote record. Prior votes are kept for audit.
func (m *VoteModel) InsertVote(ctx context.Context, vote *types.TopicVote) error {
	if vote.ID == "" {
		vote.ID = uuid.New().String()
	}
	vote.CreatedAt = time.Now()

	_, err := m.db.NewInsert().
		Model(vote).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// GetLastVote retrieves a voter's most recent vote on a topic, or nil when
// the voter has not voted on it.
func (m *VoteModel) GetLastVote(ctx context.Context, topicID, userID string) (*types.TopicVote, error) {
	var vote types.TopicVote
	err := m.db.NewSelect().
		Model(&vote).
		Where("topic_id = ?", topicID).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last vote: %w", err)
	}
	return &vote, nil
}

// CountVotes tallies all recorded votes on a topic.
func (m *VoteModel) CountVotes(ctx context.Context, topicID string) (types.VoteTally, error) {
	var tally types.VoteTally

	upvotes, err := m.db.NewSelect().
		Model((*types.TopicVote)(nil)).
		Where("topic_id = ?", topicID).
		Where("vote_type = ?", enum.VoteTypeUpvote).
		Count(ctx)
	if err != nil {
		return tally, fmt.Errorf("failed to count upvotes: %w", err)
	}

	downvotes, err := m.db.NewSelect().
		Model((*types.TopicVote)(nil)).
		Where("topic_id = ?", topicID).
		Where("vote_type = ?", enum.VoteTypeDownvote).
		Count(ctx)
	if err != nil {
		return tally, fmt.Errorf("failed to count downvotes: %w", err)
	}

	tally.Upvotes = upvotes
	tally.Downvotes = downvotes

	return tally, nil
}

// GetUserPositions retrieves a voter's latest vote per topic for a set of
// topics, used when listing a house's topics.
func (m *VoteModel) GetUserPositions(
	ctx context.Context, topicIDs []string, userID string,
) (map[string]enum.VoteType, error) {
	positions := make(map[string]enum.VoteType, len(topicIDs))
	if len(topicIDs) == 0 {
		return positions, nil
	}

	var votes []*types.TopicVote
	err := m.db.NewSelect().
		Model(&votes).
		Where("topic_id IN (?)", bun.In(topicIDs)).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote positions: %w", err)
	}

	// Later votes overwrite earlier ones, leaving the latest per topic.
	for _, vote := range votes {
		positions[vote.TopicID] = vote.VoteType
	}

	return positions, nil
}
