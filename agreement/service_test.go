package agreement

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ownerID = "11111111-1111-1111-1111-111111111111"
	partyID = "22222222-2222-2222-2222-222222222222"
)

func testAgreement(status Status) Agreement {
	return Agreement{
		ID:           "agreement-1",
		OwnerID:      ownerID,
		Kind:         "qard",
		Status:       status,
		Answers:      map[string]string{},
		RenderedText: "ДОГОВОР",
	}
}

func withParty(a Agreement) Agreement {
	p := partyID
	a.Counterparty = &p
	return a
}

func newTestService(pool TxBeginner, repo LifecycleRepository, deps ServiceDeps) *Service {
	deps.Repository = repo
	return NewService(pool, deps)
}

func TestConfirm(t *testing.T) {
	pool := &fakePool{}
	repo := &fakeLifecycleRepo{agreement: testAgreement(StatusDraft)}
	export := &fakeExporter{}
	svc := newTestService(pool, repo, ServiceDeps{Exporter: export})

	if err := svc.Confirm(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if got := repo.lastStatus(); got != StatusConfirmed {
		t.Fatalf("status = %s, want confirmed", got)
	}
	if !pool.tx.committed {
		t.Error("expected commit")
	}
	if len(repo.events) != 1 || len(repo.outbox) != 1 {
		t.Errorf("events=%d outbox=%d, want 1/1", len(repo.events), len(repo.outbox))
	}
	if !export.called {
		t.Error("expected document export")
	}
}

func TestConfirmExportFailureIsNotFatal(t *testing.T) {
	pool := &fakePool{}
	repo := &fakeLifecycleRepo{agreement: testAgreement(StatusDraft)}
	svc := newTestService(pool, repo, ServiceDeps{Exporter: &fakeExporter{err: errors.New("bucket down")}})

	if err := svc.Confirm(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !pool.tx.committed {
		t.Error("export failure must not roll back confirmation")
	}
}

func TestConfirmGuards(t *testing.T) {
	repo := &fakeLifecycleRepo{agreement: testAgreement(StatusDraft)}
	repo.agreement.RenderedText = ""
	svc := newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.Confirm(context.Background(), ownerID, "agreement-1"); !errors.Is(err, ErrNotRendered) {
		t.Fatalf("unrendered confirm err = %v, want ErrNotRendered", err)
	}

	repo = &fakeLifecycleRepo{agreement: testAgreement(StatusDraft)}
	svc = newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.Confirm(context.Background(), partyID, "agreement-1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("foreign confirm err = %v, want ErrNotOwner", err)
	}

	repo = &fakeLifecycleRepo{agreement: testAgreement(StatusSigned)}
	svc = newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.Confirm(context.Background(), ownerID, "agreement-1"); !errors.Is(err, ErrStateGuard) {
		t.Fatalf("signed confirm err = %v, want ErrStateGuard", err)
	}
}

func TestReconfirmKeepsCounterpartyLink(t *testing.T) {
	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusConfirmed))}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{})

	if err := svc.Confirm(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("re-confirm: %v", err)
	}
	if got := repo.lastStatus(); got != StatusConfirmed {
		t.Fatalf("status = %s, want confirmed", got)
	}
	if len(repo.cleared) != 0 {
		t.Fatalf("re-confirm cleared answers: %v", repo.cleared)
	}
}

func TestReopenClearsPartyStatus(t *testing.T) {
	a := testAgreement(StatusPartyChangesRequested)
	a.Answers[PartyStatusKey] = "approved"
	repo := &fakeLifecycleRepo{agreement: a}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{})

	if err := svc.Reopen(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	if got := repo.lastStatus(); got != StatusDraft {
		t.Fatalf("status = %s, want draft", got)
	}
	if !repo.cleared[PartyStatusKey] {
		t.Error("party status survived reopen")
	}
}

func TestSendToPartyDelivers(t *testing.T) {
	pool := &fakePool{}
	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusConfirmed))}
	deliver := &fakeDeliverer{}
	svc := newTestService(pool, repo, ServiceDeps{Deliverer: deliver})

	res, err := svc.SendToParty(context.Background(), ownerID, "agreement-1")
	if err != nil {
		t.Fatalf("SendToParty: %v", err)
	}
	if !res.Delivered || res.InviteCode != "" {
		t.Fatalf("result = %+v, want direct delivery", res)
	}
	if got := repo.lastStatus(); got != StatusSentToParty {
		t.Fatalf("status = %s, want sent_to_party", got)
	}
	if deliver.partyID != partyID {
		t.Fatalf("delivered to %q", deliver.partyID)
	}
}

func TestSendToPartyIssuesInvite(t *testing.T) {
	pool := &fakePool{}
	repo := &fakeLifecycleRepo{agreement: testAgreement(StatusConfirmed), duplicateCodes: 2}
	codes := &fakeCodes{}
	svc := newTestService(pool, repo, ServiceDeps{Codes: codes})

	res, err := svc.SendToParty(context.Background(), ownerID, "agreement-1")
	if err != nil {
		t.Fatalf("SendToParty: %v", err)
	}
	if res.Delivered {
		t.Fatal("no counterparty yet delivery reported")
	}
	if res.InviteCode == "" {
		t.Fatal("no invite code issued")
	}
	if len(repo.inviteCodes) != 3 {
		t.Fatalf("code attempts = %d, want 3 (two collisions)", len(repo.inviteCodes))
	}
	if got := repo.lastStatus(); got != StatusSentToParty {
		t.Fatalf("status = %s, want sent_to_party despite pending delivery", got)
	}
	if repo.answers[InvitePendingKey] != "1" {
		t.Error("invite pending marker not set")
	}
	if !pool.tx.committed {
		t.Error("expected commit")
	}
}

func TestSendToPartyFromDraft(t *testing.T) {
	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusDraft))}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{Deliverer: &fakeDeliverer{}})

	if _, err := svc.SendToParty(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("SendToParty from draft: %v", err)
	}
	if got := repo.lastStatus(); got != StatusSentToParty {
		t.Fatalf("status = %s, want sent_to_party", got)
	}
}

func TestSendToPartyInviteExhaustion(t *testing.T) {
	repo := &fakeLifecycleRepo{agreement: testAgreement(StatusConfirmed), duplicateCodes: inviteAttempts}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{Codes: &fakeCodes{}})

	if _, err := svc.SendToParty(context.Background(), ownerID, "agreement-1"); !errors.Is(err, ErrInviteExhausted) {
		t.Fatalf("expected ErrInviteExhausted, got %v", err)
	}
}

func TestPartyActions(t *testing.T) {
	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusSentToParty))}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{})

	if err := svc.PartyApprove(context.Background(), ownerID, "agreement-1"); !errors.Is(err, ErrNotCounterparty) {
		t.Fatalf("owner approving own agreement err = %v, want ErrNotCounterparty", err)
	}
	if err := svc.PartyApprove(context.Background(), partyID, "agreement-1"); err != nil {
		t.Fatalf("PartyApprove: %v", err)
	}
	if got := repo.lastStatus(); got != StatusPartyApproved {
		t.Fatalf("status = %s, want party_approved", got)
	}
	if repo.answers[PartyStatusKey] != "approved" {
		t.Error("party sub-status not recorded")
	}

	repo = &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusSentToParty))}
	svc = newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.PartyRequestChanges(context.Background(), partyID, "agreement-1", "пункт 3 нужно переписать"); err != nil {
		t.Fatalf("PartyRequestChanges: %v", err)
	}
	if got := repo.lastStatus(); got != StatusPartyChangesRequested {
		t.Fatalf("status = %s, want party_changes_requested", got)
	}
	if repo.answers[PartyCommentKey] != "пункт 3 нужно переписать" {
		t.Errorf("comment stored as %q", repo.answers[PartyCommentKey])
	}
}

func TestPartyRequestChangesNeedsComment(t *testing.T) {
	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusSentToParty))}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{})

	for _, comment := range []string{"", "   "} {
		if err := svc.PartyRequestChanges(context.Background(), partyID, "agreement-1", comment); !errors.Is(err, ErrCommentRequired) {
			t.Fatalf("comment %q err = %v, want ErrCommentRequired", comment, err)
		}
	}
	if len(repo.statuses) != 0 {
		t.Fatalf("status moved to %s without a comment", repo.lastStatus())
	}
}

func TestSign(t *testing.T) {
	for _, from := range []Status{StatusSentToParty, StatusPartyApproved} {
		repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(from))}
		svc := newTestService(&fakePool{}, repo, ServiceDeps{})

		if err := svc.Sign(context.Background(), partyID, "agreement-1"); err != nil {
			t.Fatalf("Sign from %s: %v", from, err)
		}
		if got := repo.lastStatus(); got != StatusSigned {
			t.Fatalf("status = %s, want signed", got)
		}
		if repo.answers[PartyStatusKey] != "signed" {
			t.Error("party sub-status not recorded")
		}
	}

	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusSentToParty))}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.Sign(context.Background(), ownerID, "agreement-1"); !errors.Is(err, ErrNotCounterparty) {
		t.Fatalf("owner signing err = %v, want ErrNotCounterparty", err)
	}

	repo = &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusConfirmed))}
	svc = newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.Sign(context.Background(), partyID, "agreement-1"); !errors.Is(err, ErrStateGuard) {
		t.Fatalf("early sign err = %v, want ErrStateGuard", err)
	}
}

func TestSendToScholar(t *testing.T) {
	pool := &fakePool{}
	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusSigned))}
	tickets := &fakeTickets{}
	svc := newTestService(pool, repo, ServiceDeps{Panel: &fakePanel{}, Tickets: tickets})

	if err := svc.SendToScholar(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("SendToScholar: %v", err)
	}
	if got := repo.lastStatus(); got != StatusSentToScholar {
		t.Fatalf("status = %s, want sent_to_scholar", got)
	}
	if !tickets.opened {
		t.Error("review ticket not opened")
	}
	if !pool.tx.committed {
		t.Error("expected commit")
	}
}

func TestSendToScholarDispatchFailure(t *testing.T) {
	pool := &fakePool{}
	repo := &fakeLifecycleRepo{agreement: withParty(testAgreement(StatusSigned))}
	tickets := &fakeTickets{}
	svc := newTestService(pool, repo, ServiceDeps{Panel: &fakePanel{err: errors.New("panel offline")}, Tickets: tickets})

	err := svc.SendToScholar(context.Background(), ownerID, "agreement-1")
	if !errors.Is(err, ErrScholarDispatch) {
		t.Fatalf("err = %v, want ErrScholarDispatch", err)
	}
	if got := repo.lastStatus(); got != StatusScholarSendFailed {
		t.Fatalf("status = %s, want scholar_send_failed", got)
	}
	if tickets.opened {
		t.Error("ticket opened despite failed dispatch")
	}
	if !pool.tx.committed {
		t.Error("failure status must still be committed")
	}
}

func TestSendToCourt(t *testing.T) {
	a := withParty(testAgreement(StatusSigned))
	repo := &fakeLifecycleRepo{agreement: a}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{Cases: &fakeCases{}})

	if err := svc.SendToCourt(context.Background(), ownerID, "agreement-1"); !errors.Is(err, ErrNotFullyExecuted) {
		t.Fatalf("one-sided court referral err = %v, want ErrNotFullyExecuted", err)
	}

	a.Answers[PartyStatusKey] = "signed"
	repo = &fakeLifecycleRepo{agreement: a}
	cases := &fakeCases{}
	svc = newTestService(&fakePool{}, repo, ServiceDeps{Cases: cases})
	if err := svc.SendToCourt(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("SendToCourt: %v", err)
	}
	if got := repo.lastStatus(); got != StatusSentToCourt {
		t.Fatalf("status = %s, want sent_to_court", got)
	}
	if !cases.opened {
		t.Error("court case not opened")
	}
}

func TestRemove(t *testing.T) {
	a := withParty(testAgreement(StatusSigned))
	a.Answers[PartyStatusKey] = "signed"
	repo := &fakeLifecycleRepo{agreement: a}
	svc := newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.Remove(context.Background(), ownerID, "agreement-1"); !errors.Is(err, ErrCounterpartySigned) {
		t.Fatalf("signed delete err = %v, want ErrCounterpartySigned", err)
	}
	if repo.deleted {
		t.Fatal("signed agreement deleted")
	}

	repo = &fakeLifecycleRepo{agreement: testAgreement(StatusDraft)}
	svc = newTestService(&fakePool{}, repo, ServiceDeps{})
	if err := svc.Remove(context.Background(), ownerID, "agreement-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !repo.deleted {
		t.Fatal("draft not deleted")
	}
}

type fakeLifecycleRepo struct {
	agreement      Agreement
	statuses       []Status
	answers        map[string]string
	cleared        map[string]bool
	inviteCodes    []string
	duplicateCodes int
	events         []string
	outbox         []string
	deleted        bool
}

func (f *fakeLifecycleRepo) lastStatus() Status {
	if len(f.statuses) == 0 {
		return ""
	}
	return f.statuses[len(f.statuses)-1]
}

func (f *fakeLifecycleRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Agreement, error) {
	if f.agreement.ID != id {
		return Agreement{}, ErrAgreementNotFound
	}
	return f.agreement, nil
}

func (f *fakeLifecycleRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error {
	f.statuses = append(f.statuses, next)
	return nil
}

func (f *fakeLifecycleRepo) SetAnswer(ctx context.Context, tx pgx.Tx, id, key, value string) error {
	if f.answers == nil {
		f.answers = map[string]string{}
	}
	f.answers[key] = value
	return nil
}

func (f *fakeLifecycleRepo) ClearAnswer(ctx context.Context, tx pgx.Tx, id, key string) error {
	if f.cleared == nil {
		f.cleared = map[string]bool{}
	}
	f.cleared[key] = true
	return nil
}

func (f *fakeLifecycleRepo) SetInviteCode(ctx context.Context, tx pgx.Tx, id, code string) error {
	f.inviteCodes = append(f.inviteCodes, code)
	if f.duplicateCodes > 0 {
		f.duplicateCodes--
		return ErrDuplicateInviteCode
	}
	return nil
}

func (f *fakeLifecycleRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	f.deleted = true
	return nil
}

func (f *fakeLifecycleRepo) AppendEvent(ctx context.Context, tx pgx.Tx, agreementID, eventType, actorID string, payload map[string]any) error {
	f.events = append(f.events, eventType)
	return nil
}

func (f *fakeLifecycleRepo) EnqueueOutbox(ctx context.Context, tx pgx.Tx, topic string, payload map[string]any) error {
	f.outbox = append(f.outbox, topic)
	return nil
}

type fakeDeliverer struct {
	partyID string
	err     error
}

func (f *fakeDeliverer) DeliverToParty(ctx context.Context, partyID string, a Agreement) error {
	f.partyID = partyID
	return f.err
}

type fakeExporter struct {
	called bool
	err    error
}

func (f *fakeExporter) Export(ctx context.Context, a Agreement) error {
	f.called = true
	return f.err
}

type fakePanel struct{ err error }

func (f *fakePanel) Dispatch(ctx context.Context, a Agreement) error { return f.err }

type fakeTickets struct{ opened bool }

func (f *fakeTickets) OpenReview(ctx context.Context, tx pgx.Tx, a Agreement) error {
	f.opened = true
	return nil
}

type fakeCases struct{ opened bool }

func (f *fakeCases) OpenCase(ctx context.Context, tx pgx.Tx, a Agreement) error {
	f.opened = true
	return nil
}

type fakeCodes struct{ n int }

func (f *fakeCodes) NewCode() (string, error) {
	f.n++
	return fmt.Sprintf("CODE%02d", f.n), nil
}

type fakePool struct {
	tx *fakeTx
}

func (f *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	f.tx = &fakeTx{}
	return f.tx, nil
}

type fakeTx struct {
	rolled    bool
	committed bool
}

func (f *fakeTx) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("fakeTx does not support nested transactions")
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolled = true
	return nil
}

func (f *fakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	panic("not implemented")
}

func (f *fakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("not implemented")
}

func (f *fakeTx) LargeObjects() pgx.LargeObjects {
	panic("not implemented")
}

func (f *fakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	panic("not implemented")
}

func (f *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("not implemented")
}

func (f *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("not implemented")
}

func (f *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("not implemented")
}

func (f *fakeTx) Conn() *pgx.Conn {
	return nil
}
