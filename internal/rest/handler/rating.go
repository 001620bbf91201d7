package handler

import (
	"net/http"

	"github.com/brkuhgk/Nestara/internal/database"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/brkuhgk/Nestara/internal/rest/middleware/auth"
	restTypes "github.com/brkuhgk/Nestara/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// MaxManualDelta bounds a single manual rating adjustment.
const MaxManualDelta = 50

// RatingHandler exposes rating state and manual adjustments. Scheduled
// mutations come from the lifecycle worker through the same service path.
type RatingHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(db database.Client, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{
		db:     db,
		logger: logger,
	}
}

// GetUserRatings returns a user's current score in every category.
func (h *RatingHandler) GetUserRatings(w http.ResponseWriter, req bunrouter.Request) error {
	rating, err := h.db.Service().Rating().GetUserRatings(req.Context(), req.Param("id"))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, rating)
}

// UpdateUserRating applies a bounded manual adjustment to one category of a
// user's rating. Maintainers only; the adjustment lands in the same audit
// ledger as worker-computed deltas.
func (h *RatingHandler) UpdateUserRating(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	if claims.Role != enum.UserRoleMaintainer {
		return writeJSON(w, http.StatusForbidden, restTypes.ErrorResponse{Error: "maintainer role required"})
	}

	var body restTypes.UpdateRatingRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	if body.Reason == "" {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "reason is required"})
	}

	if body.Delta == 0 || body.Delta < -MaxManualDelta || body.Delta > MaxManualDelta {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "delta must be non-zero and within [-50, 50]"})
	}

	category, err := enum.ParseRatingCategory(body.Category)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	userID := req.Param("id")

	newValue, err := h.db.Service().Rating().ApplyDelta(
		req.Context(), userID, category, body.Delta, body.Reason, "")
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, restTypes.RatingUpdateResponse{
		UserID:   userID,
		Category: category.String(),
		Delta:    body.Delta,
		NewValue: newValue,
	})
}

// GetOwnRatingHistory returns the caller's rating adjustment ledger.
func (h *RatingHandler) GetOwnRatingHistory(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	history, err := h.db.Service().Rating().GetRatingHistory(req.Context(), claims.UserID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, struct {
		UserID  string                 `json:"userId"`
		History []*types.RatingHistory `json:"history"`
	}{UserID: claims.UserID, History: history})
}
