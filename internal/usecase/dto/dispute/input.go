package disputedto

import "github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"

type OpenDisputeInput struct {
	OrderID     string
	InitiatorID string
	Reason      string
	Description string
	Evidence    []string
}

type SubmitVoteInput struct {
	DisputeID string
	VoterID   string
	VoteFor   domain.VoteSide
	Comment   string
}

type GetDisputesInput struct {
	OrderID     *string
	InitiatorID *string
	Status      *string
	Page        int64
	Limit       int64
}
