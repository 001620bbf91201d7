package convert

import (
	"github.com/brkuhgk/Nestara/internal/database/types"
	restTypes "github.com/brkuhgk/Nestara/internal/rest/types"
)

// User converts a database user to its public REST projection. The password
// hash never crosses this boundary.
func User(user *types.User) *restTypes.User {
	if user == nil {
		return nil
	}

	return &restTypes.User{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}
