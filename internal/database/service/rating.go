package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/dbretry"
	"github.com/brkuhgk/Nestara/internal/database/models"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// RatingService handles rating mutations and reads.
type RatingService struct {
	db     *bun.DB
	model  *models.RatingModel
	logger *zap.Logger
}

// NewRating creates a new rating service.
func NewRating(db *bun.DB, model *models.RatingModel, logger *zap.Logger) *RatingService {
	return &RatingService{
		db:     db,
		model:  model,
		logger: logger.Named("rating_service"),
	}
}

// GetUserRatings returns a user's current value per category.
func (s *RatingService) GetUserRatings(
	ctx context.Context, userID string,
) (map[enum.RatingCategory]int, error) {
	rating, err := s.model.GetUserRating(ctx, userID)
	if err != nil {
		return nil, err
	}
	return rating.Values(), nil
}

// GetRatingHistory returns a user's audit ledger, newest first.
func (s *RatingService) GetRatingHistory(
	ctx context.Context, userID string,
) ([]*types.RatingHistory, error) {
	return s.model.GetHistory(ctx, userID)
}

// InitUserRatings creates the default rating record for a new user.
func (s *RatingService) InitUserRatings(ctx context.Context, userID string) error {
	return s.model.CreateDefault(ctx, userID)
}

// ApplyDelta adjusts one category of one user's rating by a signed delta and
// appends a history entry, all in one transaction. The row lock serializes
// concurrent mutations of the same user so no update is lost, and the value
// is clamped before commit so the stored value never leaves its bounds.
func (s *RatingService) ApplyDelta(
	ctx context.Context, userID string, category enum.RatingCategory,
	delta int, reason, topicID string,
) (int, error) {
	if _, err := enum.ParseRatingCategory(category.String()); err != nil {
		return 0, err
	}

	// The whole transaction retries on transient failures; it is atomic, so a
	// retried attempt never double-applies the delta.
	newValue, err := dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		return s.applyDeltaTx(ctx, userID, category, delta, reason, topicID)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("Applied rating delta",
		zap.String("userID", userID),
		zap.String("category", category.String()),
		zap.Int("delta", delta),
		zap.Int("newValue", newValue))

	return newValue, nil
}

func (s *RatingService) applyDeltaTx(
	ctx context.Context, userID string, category enum.RatingCategory,
	delta int, reason, topicID string,
) (int, error) {
	var newValue int

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var rating types.UserRating
		err := tx.NewSelect().
			Model(&rating).
			Where("user_id = ?", userID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrRatingNotFound
			}
			return fmt.Errorf("failed to lock rating row: %w", err)
		}

		oldValue := rating.Value(category)
		newValue = types.ClampRating(oldValue + delta)

		now := time.Now()
		rating.Set(category, newValue)
		rating.UpdatedAt = now

		_, err = tx.NewUpdate().
			Model(&rating).
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update rating: %w", err)
		}

		history := &types.RatingHistory{
			UserID:    userID,
			Category:  category,
			OldValue:  oldValue,
			NewValue:  newValue,
			Delta:     delta,
			Reason:    reason,
			TopicID:   topicID,
			CreatedAt: now,
		}
		_, err = tx.NewInsert().
			Model(history).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to record rating history: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to apply rating delta: %w", err)
	}

	return newValue, nil
}
