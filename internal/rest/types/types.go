package types

import "time"

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a signed token and the authenticated user.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// User is the public projection of an account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateUserRequest changes the caller's mutable profile fields.
type UpdateUserRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// UpdateRatingRequest is a manual rating adjustment of one category.
type UpdateRatingRequest struct {
	Category string `json:"category"`
	Delta    int    `json:"delta"`
	Reason   string `json:"reason"`
}

// RatingUpdateResponse reports the outcome of a rating adjustment.
type RatingUpdateResponse struct {
	UserID   string `json:"userId"`
	Category string `json:"category"`
	Delta    int    `json:"delta"`
	NewValue int    `json:"newValue"`
}

// CreateHouseRequest creates a house owned by the caller.
type CreateHouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// AddMemberRequest invites a user into a house.
type AddMemberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// UpdateMemberStatusRequest changes a member's status.
type UpdateMemberStatusRequest struct {
	Status string `json:"status"`
}

// CreateTopicRequest opens a topic in a house.
type CreateTopicRequest struct {
	Type        string   `json:"type"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description"`
	CreatedFor  []string `json:"createdFor,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// VoteRequest casts a vote on a topic.
type VoteRequest struct {
	VoteType string `json:"voteType"`
}

// CreateTimeBlockRequest books a shared location slot.
type CreateTimeBlockRequest struct {
	Location  string `json:"location"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
