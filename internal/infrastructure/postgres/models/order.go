package models

import "time"

type OrderModel struct {
	ID          string `gorm:"primaryKey"`
	BuyerID     string `gorm:"index"`
	SellerID    string `gorm:"index"`
	AmountFiat  float64
	Currency    string
	Status      string `gorm:"index"`
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
