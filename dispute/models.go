// Package dispute manages the court cases opened over fully executed
// agreements. Case status changes are mirrored into the staff ticket queue
// through the ticket bridge.
package dispute

import "time"

// Status represents the lifecycle of a court case.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether the case can no longer move.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

// Case mirrors the disputes table.
type Case struct {
	ID          string
	AgreementID string
	OpenedBy    string
	Subject     string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
}
