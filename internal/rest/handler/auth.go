package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/brkuhgk/Nestara/internal/database"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/brkuhgk/Nestara/internal/identity"
	"github.com/brkuhgk/Nestara/internal/rest/convert"
	restTypes "github.com/brkuhgk/Nestara/internal/rest/types"
	"github.com/google/uuid"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	db       database.Client
	provider *identity.Provider
	logger   *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(db database.Client, provider *identity.Provider, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		db:       db,
		provider: provider,
		logger:   logger,
	}
}

// Register creates an account and its default ratings, returning a token.
func (h *AuthHandler) Register(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.RegisterRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Email == "" || body.Username == "" || len(body.Password) < 8 {
		return writeJSON(w, http.StatusBadRequest,
			restTypes.ErrorResponse{Error: "email, username and a password of at least 8 characters are required"})
	}

	role, err := enum.ParseUserRole(body.Role)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	if _, err := h.db.Model().User().GetUserByEmail(req.Context(), body.Email); err == nil {
		return writeJSON(w, http.StatusConflict, restTypes.ErrorResponse{Error: "email already registered"})
	} else if !errors.Is(err, types.ErrUserNotFound) {
		return writeError(w, h.logger, err)
	}

	hash, err := h.provider.HashPassword(body.Password)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	now := time.Now()
	user := &types.User{
		ID:           uuid.New().String(),
		Email:        body.Email,
		Username:     body.Username,
		Name:         body.Name,
		PasswordHash: hash,
		Phone:        body.Phone,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.db.Model().User().CreateUser(req.Context(), user); err != nil {
		return writeError(w, h.logger, err)
	}

	// Every account starts with default ratings in all categories
	if err := h.db.Service().Rating().InitUserRatings(req.Context(), user.ID); err != nil {
		return writeError(w, h.logger, err)
	}

	token, err := h.provider.GenerateToken(user.ID, user.Role)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, restTypes.AuthResponse{
		Token: token,
		User:  convert.User(user),
	})
}

// Login verifies credentials and returns a token.
func (h *AuthHandler) Login(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.LoginRequest
	if err := decodeJSON(req, &body); err != nil {
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.db.Model().User().GetUserByEmail(req.Context(), strings.ToLower(strings.TrimSpace(body.Email)))
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return writeJSON(w, http.StatusUnauthorized, restTypes.ErrorResponse{Error: "invalid credentials"})
		}

		return writeError(w, h.logger, err)
	}

	if !h.provider.CheckPassword(user.PasswordHash, body.Password) {
		return writeJSON(w, http.StatusUnauthorized, restTypes.ErrorResponse{Error: "invalid credentials"})
	}

	token, err := h.provider.GenerateToken(user.ID, user.Role)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, restTypes.AuthResponse{
		Token: token,
		User:  convert.User(user),
	})
}
