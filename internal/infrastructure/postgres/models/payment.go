package models

import "time"

type PaymentModel struct {
	ID               string `gorm:"primaryKey"`
	OrderID          string `gorm:"uniqueIndex"`
	Amount           float64
	Currency         string
	Status           string `gorm:"index"`
	RefundedAt       *time.Time
	EscrowReleasedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
