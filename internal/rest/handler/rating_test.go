package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/brkuhgk/Nestara/internal/identity"
	"github.com/brkuhgk/Nestara/internal/rest/handler"
	"github.com/brkuhgk/Nestara/internal/rest/middleware/auth"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// updateRating routes a manual adjustment request through a real router so
// param extraction and the handler's gate checks are exercised together.
// The requests below never reach the store, so the handler gets no client.
func updateRating(t *testing.T, role enum.UserRole, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := handler.NewRatingHandler(nil, zap.NewNop())
	router := bunrouter.New()
	router.POST("/users/:id/ratings", h.UpdateUserRating)

	req := httptest.NewRequest(http.MethodPost, "/users/user-1/ratings", strings.NewReader(body))
	claims := &identity.Claims{UserID: "caller-1", Role: role}
	req = req.WithContext(auth.NewContext(req.Context(), claims))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestUpdateUserRatingRequiresMaintainer(t *testing.T) {
	t.Parallel()

	recorder := updateRating(t, enum.UserRoleTenant,
		`{"category":"cleanliness","delta":10,"reason":"monthly kitchen review"}`)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestUpdateUserRatingValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed body", body: `{"delta":`},
		{name: "Missing reason", body: `{"category":"cleanliness","delta":10}`},
		{name: "Zero delta", body: `{"category":"cleanliness","delta":0,"reason":"no-op"}`},
		{name: "Delta above bound", body: `{"category":"cleanliness","delta":80,"reason":"too big"}`},
		{name: "Delta below bound", body: `{"category":"cleanliness","delta":-80,"reason":"too big"}`},
		{name: "Unknown category", body: `{"category":"tidiness","delta":10,"reason":"bad category"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := updateRating(t, enum.UserRoleMaintainer, tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
