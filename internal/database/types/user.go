package types

import (
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
)

// User represents a registered account.
type User struct {
	ID           string        `bun:",pk,notnull"     json:"id"`
	Email        string        `bun:",notnull,unique" json:"email"`
	Username     string        `bun:",notnull,unique" json:"username"`
	Name         string        `bun:",notnull"        json:"name"`
	PasswordHash string        `bun:",notnull"        json:"-"`
	Phone        string        `bun:""                json:"phone,omitempty"`
	Role         enum.UserRole `bun:",notnull"        json:"role"`
	CreatedAt    time.Time     `bun:",notnull"        json:"createdAt"`
	UpdatedAt    time.Time     `bun:",notnull"        json:"updatedAt"`
}
