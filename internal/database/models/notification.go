package models

import (
	"context"
	"fmt"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// NotificationModel handles database operations for notification records.
type NotificationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewNotification creates a new notification model.
func NewNotification(db *bun.DB, logger *zap.Logger) *NotificationModel {
	return &NotificationModel{
		db:     db,
		logger: logger.Named("db_notification"),
	}
}

// InsertNotification stores a notification for later delivery.
func (m *NotificationModel) InsertNotification(ctx context.Context, n *types.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()

	_, err := m.db.NewInsert().
		Model(n).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// GetUserNotifications retrieves a user's notifications, newest first.
func (m *NotificationModel) GetUserNotifications(
	ctx context.Context, userID string,
) ([]*types.Notification, error) {
	var notifications []*types.Notification
	err := m.db.NewSelect().
		Model(&notifications).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a notification as read.
func (m *NotificationModel) MarkRead(ctx context.Context, notificationID, userID string) error {
	_, err := m.db.NewUpdate().
		Model((*types.Notification)(nil)).
		Set("read = TRUE").
		Where("id = ?", notificationID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
