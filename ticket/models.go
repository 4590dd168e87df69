// Package ticket tracks the staff work queue: scholar reviews of signed
// agreements and the bookkeeping around court cases. Tickets shadow the
// status of the entity they track via the bridge in this package.
package ticket

import "time"

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCanceled   Status = "canceled"
)

// Entity kinds a ticket can track.
const (
	EntityAgreement = "agreement"
	EntityCase      = "case"
)

// Ticket mirrors the review_tickets table.
type Ticket struct {
	ID         string
	EntityKind string
	EntityID   string
	Title      string
	Status     Status
	AssigneeID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DoneAt     *time.Time
}

// Closed reports whether the ticket reached a terminal status.
func (s Status) Closed() bool {
	return s == StatusDone || s == StatusCanceled
}

// Event mirrors the ticket_events audit table.
type Event struct {
	ID        int64
	TicketID  string
	Type      string
	ActorID   *string
	CreatedAt time.Time
	Payload   []byte
}
