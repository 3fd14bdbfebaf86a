package domain

import "time"

type OrderStatus string

const (
	// StatusDisputed is the order state while its dispute is live. The
	// order lifecycle before that point is owned by the marketplace
	// service, not by this one.
	StatusDisputed  OrderStatus = "DISPUTED"
	StatusRefunded  OrderStatus = "REFUNDED"
	StatusConfirmed OrderStatus = "CONFIRMED"
)

type Order struct {
	ID          string
	BuyerID     string
	SellerID    string
	AmountFiat  float64
	Currency    string
	Status      OrderStatus
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
}
