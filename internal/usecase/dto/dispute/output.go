package disputedto

import "github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"

type GetDisputesOutput struct {
	Disputes   []*domain.Dispute
	Pagination Pagination
}

type Pagination struct {
	CurrentPage  int32
	TotalPages   int32
	TotalItems   int32
	ItemsPerPage int32
}

// SweepResult summarizes one pass of the expired-voting sweep.
type SweepResult struct {
	Processed int
	Resolved  int
	Reopened  int
	Failed    int
}
