package ticket

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMap(t *testing.T) {
	cases := []struct {
		kind   string
		source string
		want   Status
		ok     bool
	}{
		{EntityCase, "open", StatusNew, true},
		{EntityCase, "in_progress", StatusInProgress, true},
		{EntityCase, "closed", StatusDone, true},
		{EntityCase, "cancelled", StatusCanceled, true},
		{EntityCase, "archived", "", false},
		{EntityAgreement, "sent_to_scholar", StatusNew, true},
		{EntityAgreement, "party_changes_requested", StatusInProgress, true},
		{EntityAgreement, "signed", StatusDone, true},
		{EntityAgreement, "sent_to_court", StatusDone, true},
		{EntityAgreement, "draft", "", false},
		{"unknown", "open", "", false},
	}
	for _, tc := range cases {
		got, ok := Map(tc.kind, tc.source)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Map(%s, %s) = %s, %v; want %s, %v", tc.kind, tc.source, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSyncMovesTicket(t *testing.T) {
	repo := &fakeBridgeRepo{ticket: Ticket{ID: "ticket-1", EntityKind: EntityCase, EntityID: "case-1", Status: StatusNew}}
	bridge := NewBridge(&fakePool{}, repo)

	if err := bridge.Sync(context.Background(), EntityCase, "case-1", "in_progress"); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if repo.status != StatusInProgress {
		t.Fatalf("ticket status = %s, want in_progress", repo.status)
	}
	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	repo := &fakeBridgeRepo{ticket: Ticket{ID: "ticket-1", EntityKind: EntityCase, EntityID: "case-1", Status: StatusDone}}
	bridge := NewBridge(&fakePool{}, repo)

	if err := bridge.Sync(context.Background(), EntityCase, "case-1", "closed"); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if repo.updated {
		t.Fatal("matching status still updated the ticket")
	}
	if len(repo.events) != 0 {
		t.Fatalf("idempotent replay appended %d events", len(repo.events))
	}
}

func TestSyncIgnoresUnmappedAndMissing(t *testing.T) {
	repo := &fakeBridgeRepo{ticket: Ticket{ID: "ticket-1", EntityKind: EntityCase, EntityID: "case-1", Status: StatusNew}}
	bridge := NewBridge(&fakePool{}, repo)

	if err := bridge.Sync(context.Background(), EntityCase, "case-1", "archived"); err != nil {
		t.Fatalf("unmapped status: %v", err)
	}
	if repo.looked {
		t.Fatal("unmapped status still hit the repository")
	}

	if err := bridge.Sync(context.Background(), EntityCase, "case-2", "closed"); err != nil {
		t.Fatalf("missing ticket: %v", err)
	}
	if repo.updated {
		t.Fatal("missing ticket still updated something")
	}
}

type fakeBridgeRepo struct {
	ticket  Ticket
	looked  bool
	updated bool
	status  Status
	events  []string
}

func (f *fakeBridgeRepo) FindByEntityForUpdate(ctx context.Context, tx pgx.Tx, entityKind, entityID string) (Ticket, error) {
	f.looked = true
	if f.ticket.EntityKind != entityKind || f.ticket.EntityID != entityID {
		return Ticket{}, ErrTicketNotFound
	}
	return f.ticket, nil
}

func (f *fakeBridgeRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error {
	f.updated = true
	f.status = next
	return nil
}

func (f *fakeBridgeRepo) AppendEvent(ctx context.Context, tx pgx.Tx, ticketID, eventType, actorID string, payload map[string]any) error {
	f.events = append(f.events, eventType)
	return nil
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
