package types

import (
	"time"

	"github.com/brkuhgk/Nestara/internal/database/types/enum"
)

// House represents a shared household.
type House struct {
	ID        string    `bun:",pk,notnull" json:"id"`
	Name      string    `bun:",notnull"    json:"name"`
	Address   string    `bun:""            json:"address,omitempty"`
	CreatedBy string    `bun:",notnull"    json:"createdBy"`
	CreatedAt time.Time `bun:",notnull"    json:"createdAt"`
}

// HouseMember links a user to a house with a role and membership status.
type HouseMember struct {
	HouseID   string            `bun:",pk,notnull" json:"houseId"`
	UserID    string            `bun:",pk,notnull" json:"userId"`
	Role      enum.UserRole     `bun:",notnull"    json:"role"`
	Status    enum.MemberStatus `bun:",notnull"    json:"status"`
	JoinedAt  time.Time         `bun:",notnull"    json:"joinedAt"`
	UpdatedAt time.Time         `bun:",notnull"    json:"updatedAt"`
}
