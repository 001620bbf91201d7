package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// RatingModel handles database operations for user ratings and their history.
type RatingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewRating creates a new rating model.
func NewRating(db *bun.DB, logger *zap.Logger) *RatingModel {
	return &RatingModel{
		db:     db,
		logger: logger.Named("db_rating"),
	}
}

// CreateDefault inserts a rating record with every category at the default
// value. Called once at registration; a second call is a no-op.
func (m *RatingModel) CreateDefault(ctx context.Context, userID string) error {
	rating := types.NewUserRating(userID, time.Now())

	_, err := m.db.NewInsert().
		Model(rating).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create default ratings: %w", err)
	}

	return nil
}

// GetUserRating retrieves a user's rating record.
func (m *RatingModel) GetUserRating(ctx context.Context, userID string) (*types.UserRating, error) {
	var rating types.UserRating
	err := m.db.NewSelect().
		Model(&rating).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to get user rating: %w", err)
	}
	return &rating, nil
}

// GetHistory retrieves a user's rating history, newest first.
func (m *RatingModel) GetHistory(ctx context.Context, userID string) ([]*types.RatingHistory, error) {
	var entries []*types.RatingHistory
	err := m.db.NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating history: %w", err)
	}
	return entries, nil
}
