package handler

import (
	"net/http"

	"github.com/brkuhgk/Nestara/internal/database"
	"github.com/brkuhgk/Nestara/internal/rest/middleware/auth"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// NotificationHandler handles in-app notification endpoints.
type NotificationHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(db database.Client, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		db:     db,
		logger: logger,
	}
}

// GetOwnNotifications lists the caller's notifications, newest first.
func (h *NotificationHandler) GetOwnNotifications(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	notifications, err := h.db.Model().Notification().GetUserNotifications(req.Context(), claims.UserID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkNotificationRead(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	if err := h.db.Model().Notification().MarkRead(req.Context(), req.Param("id"), claims.UserID); err != nil {
		return writeError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
