package handler

import (
	"net/http"
	"time"

	"github.com/brkuhgk/Nestara/internal/database"
	"github.com/brkuhgk/Nestara/internal/rest/convert"
	"github.com/brkuhgk/Nestara/internal/rest/middleware/auth"
	restTypes "github.com/brkuhgk/Nestara/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(db database.Client, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		db:     db,
		logger: logger,
	}
}

// GetUser returns a user's public profile.
func (h *UserHandler) GetUser(w http.ResponseWriter, req bunrouter.Request) error {
	user, err := h.db.Model().User().GetUserByID(req.Context(), req.Param("id"))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, convert.User(user))
}

// GetSelf returns the caller's own profile.
func (h *UserHandler) GetSelf(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	user, err := h.db.Model().User().GetUserByID(req.Context(), claims.UserID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, convert.User(user))
}

// UpdateSelf changes the caller's mutable profile fields.
func (h *UserHandler) UpdateSelf(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	var body restTypes.UpdateUserRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.db.Model().User().GetUserByID(req.Context(), claims.UserID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if body.Name != "" {
		user.Name = body.Name
	}

	if body.Phone != "" {
		user.Phone = body.Phone
	}

	user.UpdatedAt = time.Now()

	if err := h.db.Model().User().UpdateUser(req.Context(), user); err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, convert.User(user))
}
