package handler

import (
	"net/http"
	"regexp"
	"time"

	"github.com/brkuhgk/Nestara/internal/database"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/brkuhgk/Nestara/internal/rest/middleware/auth"
	restTypes "github.com/brkuhgk/Nestara/internal/rest/types"
	"github.com/google/uuid"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// TimeBlockHandler handles shared-location booking endpoints.
type TimeBlockHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewTimeBlockHandler creates a new time block handler.
func NewTimeBlockHandler(db database.Client, logger *zap.Logger) *TimeBlockHandler {
	return &TimeBlockHandler{
		db:     db,
		logger: logger,
	}
}

// CreateTimeBlock books a location slot for the caller.
func (h *TimeBlockHandler) CreateTimeBlock(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	houseID := req.Param("id")

	member, err := h.db.Model().House().GetMember(req.Context(), houseID, claims.UserID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if member.Status != enum.MemberStatusActive {
		return writeError(w, h.logger, types.ErrMemberNotActive)
	}

	var body restTypes.CreateTimeBlockRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	location, err := enum.ParseHouseLocation(body.Location)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "date must be YYYY-MM-DD"})
	}

	if !timeRe.MatchString(body.StartTime) || !timeRe.MatchString(body.EndTime) || body.StartTime >= body.EndTime {
		return writeJSON(w, http.StatusBadRequest,
			restTypes.ErrorResponse{Error: "startTime and endTime must be HH:MM with startTime before endTime"})
	}

	block := &types.TimeBlock{
		ID:        uuid.New().String(),
		HouseID:   houseID,
		UserID:    claims.UserID,
		Location:  location,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		CreatedAt: time.Now(),
	}

	created, err := h.db.Service().TimeBlock().CreateTimeBlock(req.Context(), block)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, created)
}

// GetLocationTimeBlocks lists bookings for a location on a date.
func (h *TimeBlockHandler) GetLocationTimeBlocks(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	houseID := req.Param("id")

	if _, err := h.db.Model().House().GetMember(req.Context(), houseID, claims.UserID); err != nil {
		return writeError(w, h.logger, err)
	}

	location, err := enum.ParseHouseLocation(req.Param("location"))
	if err != nil {
		return writeError(w, h.logger, err)
	}

	date := req.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "date must be YYYY-MM-DD"})
	}

	blocks, err := h.db.Service().TimeBlock().GetLocationTimeBlocks(req.Context(), houseID, location, date)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, blocks)
}

// GetOwnTimeBlocks lists the caller's bookings within a date range.
func (h *TimeBlockHandler) GetOwnTimeBlocks(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	query := req.URL.Query()

	startDate := query.Get("startDate")
	endDate := query.Get("endDate")

	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "startDate must be YYYY-MM-DD"})
	}

	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "endDate must be YYYY-MM-DD"})
	}

	blocks, err := h.db.Service().TimeBlock().GetUserTimeBlocks(req.Context(), claims.UserID, startDate, endDate)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, blocks)
}

// DeleteTimeBlock cancels one of the caller's own bookings.
func (h *TimeBlockHandler) DeleteTimeBlock(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	if err := h.db.Service().TimeBlock().DeleteTimeBlock(req.Context(), req.Param("id"), claims.UserID); err != nil {
		return writeError(w, h.logger, err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
