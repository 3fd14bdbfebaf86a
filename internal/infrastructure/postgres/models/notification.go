package models

import "time"

type NotificationModel struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Type      string
	Title     string
	Message   string
	Link      string
	CreatedAt time.Time
}
