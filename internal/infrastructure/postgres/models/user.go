package models

import "time"

type UserModel struct {
	ID              string `gorm:"primaryKey"`
	Country         string `gorm:"index"`
	CompletedOrders int
	CreatedAt       time.Time
}
