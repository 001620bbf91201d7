package handler

import (
	"errors"
	"net/http"

	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	restTypes "github.com/brkuhgk/Nestara/internal/rest/types"
	"github.com/bytedance/sonic"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// statusFor maps domain sentinel errors to HTTP status codes. Anything the
// taxonomy does not cover is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, enum.ErrInvalidUserRole),
		errors.Is(err, enum.ErrInvalidCategory),
		errors.Is(err, enum.ErrInvalidTopicType),
		errors.Is(err, enum.ErrInvalidTopicStatus),
		errors.Is(err, enum.ErrInvalidVoteType),
		errors.Is(err, enum.ErrInvalidMemberStatus),
		errors.Is(err, enum.ErrInvalidLocation),
		errors.Is(err, types.ErrCategoryRequired):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUserNotFound),
		errors.Is(err, types.ErrHouseNotFound),
		errors.Is(err, types.ErrTopicNotFound),
		errors.Is(err, types.ErrRatingNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrSameConsecutiveVote),
		errors.Is(err, types.ErrTopicArchived),
		errors.Is(err, types.ErrTimeBlockOverlap):
		return http.StatusConflict
	case errors.Is(err, types.ErrNotHouseMember),
		errors.Is(err, types.ErrMemberNotActive):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends the uniform error payload for a domain error. Internal
// errors are logged and masked.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))

		message = "internal server error"
	}

	w.WriteHeader(status)

	return bunrouter.JSON(w, restTypes.ErrorResponse{Error: message})
}

// writeJSON sends a payload with the given status code.
func writeJSON(w http.ResponseWriter, status int, value any) error {
	w.WriteHeader(status)

	return bunrouter.JSON(w, value)
}

// decodeJSON reads a request body into v.
func decodeJSON(req bunrouter.Request, v any) error {
	defer req.Body.Close()

	return sonic.ConfigDefault.NewDecoder(req.Body).Decode(v)
}
