package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TopicModel handles database operations for topic records.
type TopicModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTopic creates a new topic model.
func NewTopic(db *bun.DB, logger *zap.Logger) *TopicModel {
	return &TopicModel{
		db:     db,
		logger: logger.Named("db_topic"),
	}
}

// CreateTopic inserts a new topic record.
func (m *TopicModel) CreateTopic(ctx context.Context, topic *types.Topic) error {
	topic.Status = enum.TopicStatusActive
	topic.CreatedAt = time.Now()

	_, err := m.db.NewInsert().
		Model(topic).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}

	return nil
}

// GetTopicByID retrieves a topic by its ID.
func (m *TopicModel) GetTopicByID(ctx context.Context, topicID string) (*types.Topic, error) {
	var topic types.Topic
	err := m.db.NewSelect().
		Model(&topic).
		Where("id = ?", topicID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return &topic, nil
}

// GetHouseTopics retrieves a house's topics, newest first, optionally
// filtered by type and status.
func (m *TopicModel) GetHouseTopics(
	ctx context.Context, houseID string, topicType enum.TopicType, status enum.TopicStatus,
) ([]*types.Topic, error) {
	query := m.db.NewSelect().
		Model((*types.Topic)(nil)).
		Where("house_id = ?", houseID).
		Order("created_at DESC")

	if topicType != "" {
		query = query.Where("type = ?", topicType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var topics []*types.Topic
	if err := query.Scan(ctx, &topics); err != nil {
		return nil, fmt.Errorf("failed to get house topics: %w", err)
	}
	return topics, nil
}

// GetAgedActiveTopics pages through active topics created before the cutoff,
// ordered by id with an exclusive id cursor. Archived topics drop out of the
// filter, which is what makes the lifecycle scan resumable.
func (m *TopicModel) GetAgedActiveTopics(
	ctx context.Context, cutoff time.Time, afterID string, limit int,
) ([]*types.Topic, error) {
	query := m.db.NewSelect().
		Model((*types.Topic)(nil)).
		Where("created_at < ?", cutoff).
		Where("status = ?", enum.TopicStatusActive).
		Order("id ASC").
		Limit(limit)

	if afterID != "" {
		query = query.Where("id > ?", afterID)
	}

	var topics []*types.Topic
	if err := query.Scan(ctx, &topics); err != nil {
		return nil, fmt.Errorf("failed to get aged topics: %w", err)
	}
	return topics, nil
}

// ArchiveTopic marks a topic archived and stamps archived_at. The status
// guard keeps archival idempotent and terminal.
func (m *TopicModel) ArchiveTopic(ctx context.Context, topicID string, archivedAt time.Time) error {
	_, err := m.db.NewUpdate().
		Model((*types.Topic)(nil)).
		Set("status = ?", enum.TopicStatusArchived).
		Set("archived_at = ?", archivedAt).
		Where("id = ?", topicID).
		Where("status != ?", enum.TopicStatusArchived).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive topic: %w", err)
	}
	return nil
}

// UpdateVoteState persists a recomputed tally and derived status. Archived
// topics are excluded so a vote can never resurrect one.
func (m *TopicModel) UpdateVoteState(
	ctx context.Context, topicID string, votes int, status enum.TopicStatus,
) error {
	_, err := m.db.NewUpdate().
		Model((*types.Topic)(nil)).
		Set("votes = ?", votes).
		Set("status = ?", status).
		Where("id = ?", topicID).
		Where("status != ?", enum.TopicStatusArchived).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update topic vote state: %w", err)
	}
	return nil
}
