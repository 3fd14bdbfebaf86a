package domain

type DisputeEvent struct {
	DisputeID       string `json:"dispute_id"`
	OrderID         string `json:"order_id"`
	Status          string `json:"status"`
	BuyerRefundRate *int   `json:"buyer_refund_rate,omitempty"`
	Outcome         string `json:"outcome,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

type DisputeEventPublisher interface {
	PublishDispute(event DisputeEvent) error
}
