package domain

import "time"

type DisputeStatus string

const (
	DisputeOpen     DisputeStatus = "OPEN"
	DisputeVoting   DisputeStatus = "VOTING"
	DisputeResolved DisputeStatus = "RESOLVED"
)

// Dispute is one buyer/seller disagreement tied to exactly one order.
// BuyerRefundRate is written once, when status flips to RESOLVED, and
// never changes afterwards.
type Dispute struct {
	ID              string
	OrderID         string
	InitiatorID     string
	Reason          string
	Description     string
	Evidence        []string
	Status          DisputeStatus
	VotesForBuyer   int
	VotesForSeller  int
	BuyerRefundRate *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
}

func (d *Dispute) TotalVotes() int {
	return d.VotesForBuyer + d.VotesForSeller
}

type GetDisputesFilter struct {
	OrderID     *string
	InitiatorID *string
	Status      *string
	Page        int
	Limit       int
}

type DisputeRepository interface {
	CreateDispute(dispute *Dispute) error
	GetDisputeByID(disputeID string) (*Dispute, error)
	GetDisputeByOrderID(orderID string) (*Dispute, error)
	FindActiveByOrderID(orderID string) (*Dispute, error)
	// MarkVoting flips OPEN -> VOTING. Returns false when the dispute
	// was not OPEN anymore.
	MarkVoting(disputeID string) (bool, error)
	// Reopen flips VOTING -> OPEN, but only while no vote has been
	// recorded. Returns false when the guard did not match.
	Reopen(disputeID string) (bool, error)
	// SubmitVote inserts the vote row and increments the matching tally
	// column in one transaction.
	SubmitVote(vote *DisputeVote) error
	// ResolveAndSettle flips VOTING -> RESOLVED with the given refund
	// rate and applies the order/payment settlement in the same
	// transaction. Returns false when another writer resolved first.
	ResolveAndSettle(disputeID, orderID string, buyerRefundRate int, outcome SettlementOutcome, resolvedAt time.Time) (bool, error)
	FindExpiredVotings(before time.Time) ([]*Dispute, error)
	ListVotes(disputeID string) ([]*DisputeVote, error)
	GetDisputes(filter GetDisputesFilter) ([]*Dispute, int64, error)
}
