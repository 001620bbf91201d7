package handler

import (
	"net/http"
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

// HouseHandler handles house and membership endpoints.
type HouseHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewHouseHandler creates a new house handler.
func NewHouseHandler(db database.Client, logger *zap.Logger) *HouseHandler {
	return &HouseHandler{
		db:     db,
		logger: logger,
	}
}

// CreateHouse creates a house with the caller as its first active member.
func (h *HouseHandler) CreateHouse(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())

	var body restTypes.CreateHouseRequest
	if err := decodeJSON(req, &body); err != nil || body.Name == "" {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "house name is required"})
	}

	house := &types.House{
		ID:        uuid.New().String(),
		Name:      body.Name,
		Address:   body.Address,
		CreatedBy: claims.UserID,
		CreatedAt: time.Now(),
	}

	if err := h.db.Model().House().CreateHouse(req.Context(), house); err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, house)
}

// GetHouse returns a house and its members. Callers must be members.
func (h *HouseHandler) GetHouse(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	houseID := req.Param("id")

	if _, err := h.db.Model().House().GetMember(req.Context(), houseID, claims.UserID); err != nil {
		return writeError(w, h.logger, err)
	}

	house, err := h.db.Model().House().GetHouseByID(req.Context(), houseID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	members, err := h.db.Model().House().GetMembers(req.Context(), houseID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, struct {
		House   *types.House         `json:"house"`
		Members []*types.HouseMember `json:"members"`
	}{House: house, Members: members})
}

// AddMember invites a user into the house with pending status. Only active
// members may invite.
func (h *HouseHandler) AddMember(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	houseID := req.Param("id")

	caller, err := h.db.Model().House().GetMember(req.Context(), houseID, claims.UserID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if caller.Status != enum.MemberStatusActive {
		return writeError(w, h.logger, types.ErrMemberNotActive)
	}

	var body restTypes.AddMemberRequest
	if err := decodeJSON(req, &body); err != nil || body.UserID == "" {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "userId is required"})
	}

	role, err := enum.ParseUserRole(body.Role)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if _, err := h.db.Model().User().GetUserByID(req.Context(), body.UserID); err != nil {
		return writeError(w, h.logger, err)
	}

	now := time.Now()
	member := &types.HouseMember{
		HouseID:   houseID,
		UserID:    body.UserID,
		Role:      role,
		Status:    enum.MemberStatusPending,
		JoinedAt:  now,
		UpdatedAt: now,
	}

	if err := h.db.Model().House().AddMember(req.Context(), member); err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, member)
}

// UpdateMemberStatus changes a member's status. Invited users activate
// their own membership; active members may deactivate others.
func (h *HouseHandler) UpdateMemberStatus(w http.ResponseWriter, req bunrouter.Request) error {
	claims := auth.FromContext(req.Context())
	houseID := req.Param("id")
	userID := req.Param("userId")

	var body restTypes.UpdateMemberStatusRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	status, err := enum.ParseMemberStatus(body.Status)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if userID != claims.UserID {
		caller, err := h.db.Model().House().GetMember(req.Context(), houseID, claims.UserID)
		if err != nil {
			return writeError(w, h.logger, err)
		}

		if caller.Status != enum.MemberStatusActive {
			return writeError(w, h.logger, types.ErrMemberNotActive)
		}
	}

	if _, err := h.db.Model().House().GetMember(req.Context(), houseID, userID); err != nil {
		return writeError(w, h.logger, err)
	}

	if err := h.db.Model().House().UpdateMemberStatus(req.Context(), houseID, userID, status); err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, struct {
		HouseID string `json:"houseId"`
		UserID  string `json:"userId"`
		Status  string `json:"status"`
	}{HouseID: houseID, UserID: userID, Status: status.String()})
}
