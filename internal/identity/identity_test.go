package identity_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
	"github.com/brkuhgk/Nestara/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	provider := identity.New("test-secret", 60)

	token, err := provider.GenerateToken("user-1", enum.UserRoleTenant)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := provider.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, enum.UserRoleTenant, claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	provider := identity.New("test-secret", -1)

	token, err := provider.GenerateToken("user-1", enum.UserRoleTenant)
	require.NoError(t, err)

	_, err = provider.ValidateToken(token)
	require.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	t.Parallel()

	issuer := identity.New("secret-a", 60)
	verifier := identity.New("secret-b", 60)

	token, err := issuer.GenerateToken("user-1", enum.UserRoleMaintainer)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	t.Parallel()

	provider := identity.New("test-secret", 60)

	hash, err := provider.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, provider.CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, provider.CheckPassword(hash, "wrong password"))
}

func TestExtractClaims(t *testing.T) {
	t.Parallel()

	provider := identity.New("test-secret", 60)

	token, err := provider.GenerateToken("user-1", enum.UserRoleTenant)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "Valid bearer token", header: "Bearer " + token, want: true},
		{name: "Lowercase scheme accepted", header: "bearer " + token, want: true},
		{name: "Missing header", header: "", want: false},
		{name: "Wrong scheme", header: "Basic " + token, want: false},
		{name: "Garbage token", header: "Bearer not-a-token", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			claims := provider.ExtractClaims(req)
			if tt.want {
				require.NotNil(t, claims)
				assert.Equal(t, "user-1", claims.UserID)
			} else {
				assert.Nil(t, claims)
			}
		})
	}
}

// Token lifetimes count from issuance, so a fresh token should expire in the
// future by roughly the configured amount.
func TestTokenExpiryWindow(t *testing.T) {
	t.Parallel()

	provider := identity.New("test-secret", 30)

	token, err := provider.GenerateToken("user-1", enum.UserRoleTenant)
	require.NoError(t, err)

	claims, err := provider.ValidateToken(token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 29*time.Minute)
	assert.LessOrEqual(t, remaining, 30*time.Minute)
}
