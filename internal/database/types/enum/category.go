package enum

import "fmt"

// UserRole represents the role a user plays in a house.
type UserRole string

const (
	UserRoleTenant     UserRole = "tenant"
	UserRoleMaintainer UserRole = "maintainer"
)

// ParseUserRole validates a raw role string.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case UserRoleTenant, UserRoleMaintainer:
		return UserRole(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUserRole, s)
	}
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// RatingCategory is a named rating dimension scoped to a user role.
type RatingCategory string

const (
	// Tenant categories.
	CategoryCleanliness   RatingCategory = "cleanliness"
	CategoryBehavior      RatingCategory = "behavior"
	CategoryPayment       RatingCategory = "payment"
	CategoryMaintenance   RatingCategory = "maintenance"
	CategoryCommunication RatingCategory = "communication"

	// Maintainer categories. Communication, behavior and maintenance are
	// shared names but live in separate columns on the rating record.
	CategoryMaintainerCommunication RatingCategory = "maintainer_communication"
	CategoryMaintainerBehavior      RatingCategory = "maintainer_behavior"
	CategoryMaintainerMaintenance   RatingCategory = "maintainer_maintenance"
)

// TenantCategories lists the rating dimensions of a tenant.
func TenantCategories() []RatingCategory {
	return []RatingCategory{
		CategoryCleanliness,
		CategoryBehavior,
		CategoryPayment,
		CategoryMaintenance,
		CategoryCommunication,
	}
}

// MaintainerCategories lists the rating dimensions of a maintainer.
func MaintainerCategories() []RatingCategory {
	return []RatingCategory{
		CategoryMaintainerCommunication,
		CategoryMaintainerBehavior,
		CategoryMaintainerMaintenance,
	}
}

// AllCategories lists every rating dimension across both roles.
func AllCategories() []RatingCategory {
	return append(TenantCategories(), MaintainerCategories()...)
}

// ParseRatingCategory validates a raw category string.
func ParseRatingCategory(s string) (RatingCategory, error) {
	for _, c := range AllCategories() {
		if RatingCategory(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Role returns the user role a category belongs to.
func (c RatingCategory) Role() UserRole {
	switch c {
	case CategoryMaintainerCommunication, CategoryMaintainerBehavior, CategoryMaintainerMaintenance:
		return UserRoleMaintainer
	default:
		return UserRoleTenant
	}
}

func (c RatingCategory) String() string {
	return string(c)
}
