package agreement

import (
	"errors"
	"testing"
)

func TestNext(t *testing.T) {
	cases := []struct {
		current Status
		action  Action
		want    Status
		wantErr bool
	}{
		{StatusDraft, ActionConfirm, StatusConfirmed, false},
		{StatusConfirmed, ActionConfirm, StatusConfirmed, false},
		{StatusPartyChangesRequested, ActionConfirm, StatusConfirmed, false},
		{StatusScholarSendFailed, ActionConfirm, StatusConfirmed, false},
		{StatusSigned, ActionConfirm, "", true},
		{StatusConfirmed, ActionSendToParty, StatusSentToParty, false},
		{StatusDraft, ActionSendToParty, StatusSentToParty, false},
		{StatusSentToParty, ActionPartyApprove, StatusPartyApproved, false},
		{StatusSentToParty, ActionPartyRequestChanges, StatusPartyChangesRequested, false},
		{StatusPartyApproved, ActionSign, StatusSigned, false},
		{StatusSentToParty, ActionSign, StatusSigned, false},
		{StatusConfirmed, ActionSign, "", true},
		{StatusSigned, ActionSendToScholar, StatusSentToScholar, false},
		{StatusScholarSendFailed, ActionSendToScholar, StatusSentToScholar, false},
		{StatusSigned, ActionSendToCourt, StatusSentToCourt, false},
		{StatusSentToScholar, ActionSendToCourt, "", true},
		{StatusSentToCourt, ActionSendToCourt, "", true},
		{StatusConfirmed, ActionEdit, StatusDraft, false},
		{StatusPartyChangesRequested, ActionEdit, StatusDraft, false},
		{StatusScholarSendFailed, ActionEdit, StatusDraft, false},
		{StatusSigned, ActionEdit, "", true},
		{StatusSentToParty, ActionEdit, "", true},
	}

	for _, tc := range cases {
		got, err := Next(tc.current, tc.action)
		if tc.wantErr {
			if !errors.Is(err, ErrStateGuard) {
				t.Fatalf("Next(%s, %s) err = %v, want ErrStateGuard", tc.current, tc.action, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Next(%s, %s): %v", tc.current, tc.action, err)
		}
		if got != tc.want {
			t.Fatalf("Next(%s, %s) = %s, want %s", tc.current, tc.action, got, tc.want)
		}
	}
}

func TestEditable(t *testing.T) {
	editable := []Status{StatusDraft, StatusConfirmed, StatusPartyChangesRequested, StatusScholarSendFailed}
	for _, s := range editable {
		if !Editable(s) {
			t.Fatalf("Editable(%s) = false", s)
		}
	}
	for _, s := range []Status{StatusSentToParty, StatusPartyApproved, StatusSigned, StatusSentToScholar, StatusSentToCourt} {
		if Editable(s) {
			t.Fatalf("Editable(%s) = true", s)
		}
	}
}

func TestPartySigned(t *testing.T) {
	a := Agreement{Answers: map[string]string{}}
	if a.PartySigned() {
		t.Fatal("empty answers reported a signature")
	}
	a.Answers[PartyStatusKey] = "approved"
	if a.PartySigned() {
		t.Fatal("approved counterparty reported a signature")
	}
	a.Answers[PartyStatusKey] = "signed"
	if !a.PartySigned() {
		t.Fatal("signed counterparty not reported")
	}
}
