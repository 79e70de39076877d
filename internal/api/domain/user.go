package domain

import "time"

// DefaultTimezone is assigned to new users until they change it.
const DefaultTimezone = "Asia/Tokyo"

// User is a Tasche account. ID is the identity provider's subject
// ("auth0|..." or "test|..."), so every provider identity maps to at
// most one user.
type User struct {
	ID       string
	Email    string
	Name     string
	Picture  *string // avatar URL from the provider (nullable)
	Timezone string  // IANA zone name, e.g. "Asia/Tokyo"

	CreatedAt time.Time
	UpdatedAt time.Time
}
