package models

import (
	"context"
	"fmt"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TimeBlockModel handles database operations for shared-space bookings.
type TimeBlockModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTimeBlock creates a new time block model.
func NewTimeBlock(db *bun.DB, logger *zap.Logger) *TimeBlockModel {
	return &TimeBlockModel{
		db:     db,
		logger: logger.Named("db_timeblock"),
	}
}

// InsertIfSlotFree books a slot only when it overlaps no existing booking
// for the same location and date. The check and the insert run in one
// transaction under a per-slot advisory lock, so two concurrent bookings
// cannot both pass the overlap scan.
func (m *TimeBlockModel) InsertIfSlotFree(ctx context.Context, block *types.TimeBlock) error {
	return m.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		slotKey := fmt.Sprintf("timeblock:%s:%s:%s", block.HouseID, block.Location, block.Date)
		if _, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", slotKey).Exec(ctx); err != nil {
			return fmt.Errorf("failed to lock booking slot: %w", err)
		}

		var existing []*types.TimeBlock
		err := tx.NewSelect().
			Model(&existing).
			Where("house_id = ?", block.HouseID).
			Where("location = ?", block.Location).
			Where("date = ?", block.Date).
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to get slot bookings: %w", err)
		}

		for _, other := range existing {
			if block.Overlaps(other) {
				return types.ErrTimeBlockOverlap
			}
		}

		if block.ID == "" {
			block.ID = uuid.New().String()
		}
		block.CreatedAt = time.Now()

		_, err = tx.NewInsert().
			Model(block).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert time block: %w", err)
		}

		return nil
	})
}

// GetBlocksForSlot retrieves all bookings for a location on a date, ordered
// by start time.
func (m *TimeBlockModel) GetBlocksForSlot(
	ctx context.Context, houseID string, location enum.HouseLocation, date string,
) ([]*types.TimeBlock, error) {
	var blocks []*types.TimeBlock
	err := m.db.NewSelect().
		Model(&blocks).
		Where("house_id = ?", houseID).
		Where("location = ?", location).
		Where("date = ?", date).
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get time blocks: %w", err)
	}
	return blocks, nil
}

// GetUserBlocks retrieves a user's bookings within a date range.
func (m *TimeBlockModel) GetUserBlocks(
	ctx context.Context, userID, startDate, endDate string,
) ([]*types.TimeBlock, error) {
	var blocks []*types.TimeBlock
	err := m.db.NewSelect().
		Model(&blocks).
		Where("user_id = ?", userID).
		Where("date >= ?", startDate).
		Where("date <= ?", endDate).
		Order("date ASC", "start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user time blocks: %w", err)
	}
	return blocks, nil
}

// DeleteTimeBlock removes a booking. Only the owner may delete it.
func (m *TimeBlockModel) DeleteTimeBlock(ctx context.Context, blockID, userID string) error {
	_, err := m.db.NewDelete().
		Model((*types.TimeBlock)(nil)).
		Where("id = ?", blockID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete time block: %w", err)
	}
	return nil
}
