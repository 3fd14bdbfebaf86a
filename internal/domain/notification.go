package domain

import "time"

const (
	NotificationJuryInvite      = "JURY_INVITE"
	NotificationDisputeOutcome  = "DISPUTE_OUTCOME"
	NotificationDisputeReopened = "DISPUTE_REOPENED"
)

type Notification struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Message   string
	Link      string
	CreatedAt time.Time
}

type NotificationRepository interface {
	CreateNotifications(notifications []*Notification) error
}

// PushSender delivers best-effort push notifications. Callers log
// failures and move on; a failed push never rolls anything back.
type PushSender interface {
	Push(userID, title, body string, metadata map[string]string) error
}
