package domain

import "time"

type User struct {
	ID              string
	Country         string
	CompletedOrders int
	CreatedAt       time.Time
}

type UserRepository interface {
	GetUserByID(userID string) (*User, error)
	// FindEligibleJurors returns ids of users in the given country with
	// at least one completed order, minus the excluded set, capped at
	// limit rows.
	FindEligibleJurors(country string, excluded []string, limit int) ([]string, error)
}
