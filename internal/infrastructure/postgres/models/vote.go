package models

import "time"

// The composite unique index is the storage-level guarantee behind
// one-vote-per-voter; the application precheck only produces the
// friendlier error for the common case.
type DisputeVoteModel struct {
	ID        string `gorm:"primaryKey"`
	DisputeID string `gorm:"uniqueIndex:idx_dispute_voter"`
	VoterID   string `gorm:"uniqueIndex:idx_dispute_voter"`
	VoteFor   string
	Comment   string
	CreatedAt time.Time
}
