package domain

import "time"

// JuryAssignment records who was invited to vote on a dispute. The
// assignment set is what SubmitVote checks panel membership against.
type JuryAssignment struct {
	DisputeID  string
	JurorID    string
	AssignedAt time.Time
}

type JuryAssignmentRepository interface {
	CreateAssignments(assignments []*JuryAssignment) error
	ListJurorIDs(disputeID string) ([]string, error)
	IsJuror(disputeID, jurorID string) (bool, error)
}
