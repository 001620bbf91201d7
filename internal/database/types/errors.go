package types

import "errors"

// Validation errors reject a request before any state change.
var (
	ErrCategoryRequired = errors.New("rating category required for this topic type")
)

// Not-found errors.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrHouseNotFound  = errors.New("house not found")
	ErrTopicNotFound  = errors.New("topic not found")
	ErrRatingNotFound = errors.New("user rating not found")
)

// Conflict errors.
var (
	ErrSameConsecutiveVote = errors.New("cannot cast the same vote twice in a row")
	ErrTopicArchived       = errors.New("topic is archived")
	ErrTimeBlockOverlap    = errors.New("time slot already booked")
)

// Authorization errors.
var (
	ErrNotHouseMember  = errors.New("user is not a member of this house")
	ErrMemberNotActive = errors.New("house membership is not active")
)
