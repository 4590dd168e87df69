package agreement

import "time"

// Agreement mirrors the agreements table columns touched by the services.
// Answers carries the wizard answers plus lifecycle bookkeeping markers; it
// is stored as a single jsonb column.
type Agreement struct {
	ID           string
	OwnerID      string
	Counterparty *string
	Kind         string
	Status       Status
	Cursor       int
	Answers      map[string]string
	RenderedText string
	InviteCode   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Answer keys reserved for lifecycle bookkeeping rather than wizard fields.
const (
	// PartyStatusKey tracks the counterparty's own progress on the shared
	// agreement ("approved", "signed").
	PartyStatusKey = "party_status"
	// InvitePendingKey marks a sent agreement whose counterparty has not
	// joined yet; delivery is pending until the invite code is redeemed.
	InvitePendingKey = "invite_pending"
	// PartyCommentKey stores the counterparty's latest change request.
	PartyCommentKey = "party_comment"
)

// PartySigned reports whether the counterparty has signed.
func (a Agreement) PartySigned() bool {
	return a.Answers[PartyStatusKey] == "signed"
}

// TimelineEvent captures an immutable business event for an agreement.
type TimelineEvent struct {
	ID          int64
	AgreementID string
	Type        string
	ActorID     *string
	CreatedAt   time.Time
	Payload     []byte
}

const (
	// OutboxTopicStatusChanged is published on every lifecycle transition.
	OutboxTopicStatusChanged = "agreement.status_changed"
	// OutboxTopicCreated is published once per drafted agreement.
	OutboxTopicCreated = "agreement.created"
)
