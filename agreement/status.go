package agreement

import "errors"

// Status is the lifecycle state of an agreement as seen by its owner.
type Status string

const (
	StatusDraft                 Status = "draft"
	StatusConfirmed             Status = "confirmed"
	StatusSentToParty           Status = "sent_to_party"
	StatusPartyApproved         Status = "party_approved"
	StatusPartyChangesRequested Status = "party_changes_requested"
	StatusSigned                Status = "signed"
	StatusSentToScholar         Status = "sent_to_scholar"
	StatusScholarSendFailed     Status = "scholar_send_failed"
	StatusSentToCourt           Status = "sent_to_court"
)

// Action names a lifecycle operation requested by a user.
type Action string

const (
	ActionConfirm             Action = "confirm"
	ActionEdit                Action = "edit"
	ActionSendToParty         Action = "send_to_party"
	ActionPartyApprove        Action = "party_approve"
	ActionPartyRequestChanges Action = "party_request_changes"
	ActionSign                Action = "sign"
	ActionSendToScholar       Action = "send_to_scholar"
	ActionSendToCourt         Action = "send_to_court"
)

var (
	// ErrStateGuard is returned when the requested action is not legal from
	// the agreement's current status.
	ErrStateGuard = errors.New("agreement: action not allowed in current status")
	// ErrNotFullyExecuted guards court referral until both sides have signed.
	ErrNotFullyExecuted = errors.New("agreement: counterparty has not signed yet")
	// ErrCounterpartySigned blocks deletion once the counterparty signed.
	ErrCounterpartySigned = errors.New("agreement: counterparty already signed")
	// ErrNotRendered blocks confirmation of a draft without rendered text.
	ErrNotRendered = errors.New("agreement: draft has no rendered text")
	// ErrNotOwner and ErrNotCounterparty enforce who may act.
	ErrNotOwner        = errors.New("agreement: actor is not the owner")
	ErrNotCounterparty = errors.New("agreement: actor is not the counterparty")
)

// transitions maps (action, current status) to the next status. Absence
// means the action is illegal from that state; additional guards (rendered
// text, counterparty signature) live in the service.
var transitions = map[Action]map[Status]Status{
	// Confirm is legal from any editable state; re-confirming an already
	// confirmed agreement is a no-op that leaves unrelated fields intact.
	ActionConfirm: {
		StatusDraft:                 StatusConfirmed,
		StatusConfirmed:             StatusConfirmed,
		StatusPartyChangesRequested: StatusConfirmed,
		StatusScholarSendFailed:     StatusConfirmed,
	},
	ActionEdit: {
		StatusDraft:                 StatusDraft,
		StatusConfirmed:             StatusDraft,
		StatusPartyChangesRequested: StatusDraft,
		StatusScholarSendFailed:     StatusDraft,
	},
	ActionSendToParty: {
		StatusDraft:     StatusSentToParty,
		StatusConfirmed: StatusSentToParty,
	},
	ActionPartyApprove: {
		StatusSentToParty: StatusPartyApproved,
	},
	ActionPartyRequestChanges: {
		StatusSentToParty: StatusPartyChangesRequested,
	},
	// The counterparty may sign straight away or after approving first.
	ActionSign: {
		StatusSentToParty:   StatusSigned,
		StatusPartyApproved: StatusSigned,
	},
	ActionSendToScholar: {
		StatusSigned:            StatusSentToScholar,
		StatusScholarSendFailed: StatusSentToScholar,
	},
	ActionSendToCourt: {
		StatusSigned: StatusSentToCourt,
	},
}

// Next resolves the target status for an action, or ErrStateGuard.
func Next(current Status, action Action) (Status, error) {
	next, ok := transitions[action][current]
	if !ok {
		return "", ErrStateGuard
	}
	return next, nil
}

// Editable reports whether the owner may reopen the agreement for editing.
func Editable(s Status) bool {
	_, ok := transitions[ActionEdit][s]
	return ok
}

// Deletable reports whether the owner may delete from this status at all;
// the counterparty-signature check is separate.
func Deletable(s Status) bool {
	return s != StatusSentToCourt
}
