package notifier

import (
	"context"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/models"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier delivers in-app notifications. Delivery is best effort: failures
// are logged and never propagated to the caller.
type Notifier struct {
	model  *models.NotificationModel
	logger *zap.Logger
}

// New creates a notifier backed by the notification model.
func New(model *models.NotificationModel, logger *zap.Logger) *Notifier {
	return &Notifier{
		model:  model,
		logger: logger.Named("notifier"),
	}
}

// Notify stores a notification for the user. Errors are swallowed after
// logging so notification failures cannot fail the triggering operation.
func (n *Notifier) Notify(ctx context.Context, userID, notifType, message string, metadata map[string]any) {
	notification := &types.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	if err := n.model.InsertNotification(ctx, notification); err != nil {
		n.logger.Error("Failed to insert notification",
			zap.String("userID", userID),
			zap.String("type", notifType),
			zap.Error(err))
	}
}
