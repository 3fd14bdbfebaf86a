package domain

import "time"

type VoteSide string

const (
	VoteForBuyer  VoteSide = "BUYER"
	VoteForSeller VoteSide = "SELLER"
)

func (s VoteSide) Valid() bool {
	return s == VoteForBuyer || s == VoteForSeller
}

// DisputeVote is immutable once created. (DisputeID, VoterID) is unique
// at the storage layer so concurrent duplicates from the same voter are
// rejected by the database, not only by application checks.
type DisputeVote struct {
	ID        string
	DisputeID string
	VoterID   string
	VoteFor   VoteSide
	Comment   string
	CreatedAt time.Time
}
