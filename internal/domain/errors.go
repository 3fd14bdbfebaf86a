package domain

import "errors"

var (
	ErrDisputeNotFound      = errors.New("dispute not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrNotVotingState       = errors.New("dispute is not in voting state")
	ErrDisputeNotOpen       = errors.New("dispute is not open")
	ErrDisputeNotResolved   = errors.New("dispute is not resolved")
	ErrDuplicateVote        = errors.New("voter already voted on this dispute")
	ErrPartyCannotVote      = errors.New("dispute parties cannot vote")
	ErrNotJuror             = errors.New("voter is not on the jury panel")
	ErrInvalidVoteSide      = errors.New("invalid vote side")
	ErrNotParticipant       = errors.New("initiator is not a party of the order")
	ErrDisputeAlreadyActive = errors.New("order already has an active dispute")
	ErrEmptyJuryPool        = errors.New("no eligible jurors found")
)
