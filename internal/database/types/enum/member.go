package enum

import "fmt"

// MemberStatus represents a user's membership state within a house.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusInactive MemberStatus = "inactive"
)

// ParseMemberStatus validates a raw membership status string.
func ParseMemberStatus(s string) (MemberStatus, error) {
	switch MemberStatus(s) {
	case MemberStatusActive, MemberStatusPending, MemberStatusInactive:
		return MemberStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMemberStatus, s)
	}
}

// String implements fmt.Stringer.
func (s MemberStatus) String() string {
	return string(s)
}

// HouseLocation is a shared space that can be booked with time blocks.
type HouseLocation string

const (
	LocationKitchen  HouseLocation = "kitchen"
	LocationBathroom HouseLocation = "bathroom"
	LocationHall     HouseLocation = "hall"
)

// ParseHouseLocation validates a raw location string.
func ParseHouseLocation(s string) (HouseLocation, error) {
	switch HouseLocation(s) {
	case LocationKitchen, LocationBathroom, LocationHall:
		return HouseLocation(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
}

// String implements fmt.Stringer.
func (l HouseLocation) String() string {
	return string(l)
}
