package domain

import "time"

type PaymentStatus string

const (
	PaymentEscrowHeld PaymentStatus = "ESCROW_HELD"
	PaymentRefunded   PaymentStatus = "REFUNDED"
	PaymentReleased   PaymentStatus = "RELEASED"
)

type Payment struct {
	ID               string
	OrderID          string
	Amount           float64
	Currency         string
	Status           PaymentStatus
	RefundedAt       *time.Time
	EscrowReleasedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SettlementOutcome is the binary settlement decision derived from the
// buyer refund rate. The rate itself stays on the dispute row for audit
// even though settlement never splits the escrowed amount.
type SettlementOutcome string

const (
	OutcomeFullRefund  SettlementOutcome = "FULL_REFUND"
	OutcomeFullRelease SettlementOutcome = "FULL_RELEASE"
)

// OutcomeForRate is the single place the >=50 rule lives: a tie favors
// the buyer.
func OutcomeForRate(buyerRefundRate int) SettlementOutcome {
	if buyerRefundRate >= 50 {
		return OutcomeFullRefund
	}
	return OutcomeFullRelease
}

type PaymentRepository interface {
	CreatePayment(payment *Payment) error
	GetPaymentByOrderID(orderID string) (*Payment, error)
}

type SettlementRepository interface {
	// ApplySettlement transitions the order and its escrowed payment
	// together. Returns false when the payment already left
	// ESCROW_HELD, which makes repeated application a no-op.
	ApplySettlement(orderID string, outcome SettlementOutcome, settledAt time.Time) (bool, error)
}
