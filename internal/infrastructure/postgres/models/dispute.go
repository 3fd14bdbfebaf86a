package models

import "time"

type DisputeModel struct {
	ID              string `gorm:"primaryKey"`
	OrderID         string `gorm:"index"`
	InitiatorID     string
	Reason          string
	Description     string
	Evidence        string // JSON-encoded list of URIs
	Status          string `gorm:"index"`
	VotesForBuyer   int
	VotesForSeller  int
	BuyerRefundRate *int
	Order           OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
}
