package service

import (
	"context"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"go.uber.org/zap"
)

// TimeBlockStore is the booking access the time block service needs.
// InsertIfSlotFree must perform its overlap check and insert atomically and
// return ErrTimeBlockOverlap when the slot is taken.
type TimeBlockStore interface {
	InsertIfSlotFree(ctx context.Context, block *types.TimeBlock) error
	GetBlocksForSlot(ctx context.Context, houseID string, location enum.HouseLocation, date string) ([]*types.TimeBlock, error)
	GetUserBlocks(ctx context.Context, userID, startDate, endDate string) ([]*types.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, blockID, userID string) error
}

// TimeBlockService handles shared-space booking with overlap rejection.
type TimeBlockService struct {
	blocks TimeBlockStore
	logger *zap.Logger
}

// NewTimeBlock creates a new time block service.
func NewTimeBlock(blocks TimeBlockStore, logger *zap.Logger) *TimeBlockService {
	return &TimeBlockService{
		blocks: blocks,
		logger: logger.Named("timeblock_service"),
	}
}

// CreateTimeBlock books a slot, rejecting any overlap with an existing
// booking for the same location and date. The store serializes concurrent
// bookings of the same slot.
func (s *TimeBlockService) CreateTimeBlock(
	ctx context.Context, block *types.TimeBlock,
) (*types.TimeBlock, error) {
	if err := s.blocks.InsertIfSlotFree(ctx, block); err != nil {
		return nil, err
	}

	s.logger.Debug("Booked time block",
		zap.String("houseID", block.HouseID),
		zap.String("location", block.Location.String()),
		zap.String("date", block.Date))

	return block, nil
}

// GetLocationTimeBlocks lists bookings for a location on a date.
func (s *TimeBlockService) GetLocationTimeBlocks(
	ctx context.Context, houseID string, location enum.HouseLocation, date string,
) ([]*types.TimeBlock, error) {
	return s.blocks.GetBlocksForSlot(ctx, houseID, location, date)
}

// GetUserTimeBlocks lists a user's bookings within a date range.
func (s *TimeBlockService) GetUserTimeBlocks(
	ctx context.Context, userID, startDate, endDate string,
) ([]*types.TimeBlock, error) {
	return s.blocks.GetUserBlocks(ctx, userID, startDate, endDate)
}

// DeleteTimeBlock removes a user's own booking.
func (s *TimeBlockService) DeleteTimeBlock(ctx context.Context, blockID, userID string) error {
	return s.blocks.DeleteTimeBlock(ctx, blockID, userID)
}
