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

// HouseModel handles database operations for houses and their memberships.
type HouseModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewHouse creates a new house model.
func NewHouse(db *bun.DB, logger *zap.Logger) *HouseModel {
	return &HouseModel{
		db:     db,
		logger: logger.Named("db_house"),
	}
}

// CreateHouse inserts a house and enrolls the creator as an active maintainer
// in a single transaction.
func (m *HouseModel) CreateHouse(ctx context.Context, house *types.House) error {
	house.CreatedAt = time.Now()

	err := m.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(house).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert house: %w", err)
		}

		member := &types.HouseMember{
			HouseID:   house.ID,
			UserID:    house.CreatedBy,
			Role:      enum.UserRoleMaintainer,
			Status:    enum.MemberStatusActive,
			JoinedAt:  house.CreatedAt,
			UpdatedAt: house.CreatedAt,
		}
		if _, err := tx.NewInsert().Model(member).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert creator membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create house: %w", err)
	}

	return nil
}

// GetHouseByID retrieves a house by its ID.
func (m *HouseModel) GetHouseByID(ctx context.Context, houseID string) (*types.House, error) {
	var house types.House
	err := m.db.NewSelect().
		Model(&house).
		Where("id = ?", houseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrHouseNotFound
		}
		return nil, fmt.Errorf("failed to get house: %w", err)
	}
	return &house, nil
}

// AddMember enrolls a user into a house. New members start pending until a
// maintainer approves them.
func (m *HouseModel) AddMember(ctx context.Context, member *types.HouseMember) error {
	now := time.Now()
	member.JoinedAt = now
	member.UpdatedAt = now

	_, err := m.db.NewInsert().
		Model(member).
		On("CONFLICT (house_id, user_id) DO UPDATE").
		Set("role = EXCLUDED.role").
		Set("status = EXCLUDED.status").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add house member: %w", err)
	}

	return nil
}

// GetMember retrieves a single membership record.
func (m *HouseModel) GetMember(ctx context.Context, houseID, userID string) (*types.HouseMember, error) {
	var member types.HouseMember
	err := m.db.NewSelect().
		Model(&member).
		Where("house_id = ?", houseID).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotHouseMember
		}
		return nil, fmt.Errorf("failed to get house member: %w", err)
	}
	return &member, nil
}

// GetMembers retrieves every membership record of a house.
func (m *HouseModel) GetMembers(ctx context.Context, houseID string) ([]*types.HouseMember, error) {
	var members []*types.HouseMember
	err := m.db.NewSelect().
		Model(&members).
		Where("house_id = ?", houseID).
		Order("joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get house members: %w", err)
	}
	return members, nil
}

// CountActiveMembers counts members with active status in a house.
func (m *HouseModel) CountActiveMembers(ctx context.Context, houseID string) (int, error) {
	count, err := m.db.NewSelect().
		Model((*types.HouseMember)(nil)).
		Where("house_id = ?", houseID).
		Where("status = ?", enum.MemberStatusActive).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}
	return count, nil
}

// UpdateMemberStatus transitions a membership's status.
func (m *HouseModel) UpdateMemberStatus(
	ctx context.Context, houseID, userID string, status enum.MemberStatus,
) error {
	res, err := m.db.NewUpdate().
		Model((*types.HouseMember)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("house_id = ?", houseID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update member status: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return types.ErrNotHouseMember
	}

	return nil
}
