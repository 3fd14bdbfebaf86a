package models

import "time"

type JuryAssignmentModel struct {
	DisputeID  string `gorm:"primaryKey"`
	JurorID    string `gorm:"primaryKey"`
	AssignedAt time.Time
}
