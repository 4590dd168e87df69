// Package actors drives the agreement services the way concurrent API users
// would, for the stress harness. Actors call the real domain services, not
// raw SQL, so locking and transaction behavior is exercised end to end.
package actors

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"mithaq/agreement"
	"mithaq/dispute"
	"mithaq/invite"
	"mithaq/locale"
	"mithaq/ticket"
)

// Harness wires the domain services the way the API process does.
type Harness struct {
	Pool      *pgxpool.Pool
	Drafts    *agreement.DraftService
	Lifecycle *agreement.Service
	Invites   *invite.Service
	Cases     *dispute.Service
	Bridge    *ticket.Bridge
	Queue     *ticket.QueueService
}

func NewHarness(pool *pgxpool.Pool) *Harness {
	labels := locale.Default()

	agreementRepo := agreement.NewRepository()
	ticketRepo := ticket.NewRepository()
	opener := ticket.NewOpener(ticketRepo, labels)
	bridge := ticket.NewBridge(pool, ticketRepo)
	caseService := dispute.NewService(pool, dispute.NewRepository(pool), bridge, opener, labels)

	lifecycle := agreement.NewService(pool, agreement.ServiceDeps{
		Repository: agreementRepo,
		Tickets:    opener,
		Cases:      caseService,
		Codes:      invite.NewGenerator(),
	})

	return &Harness{
		Pool:      pool,
		Drafts:    agreement.NewDraftService(pool, agreementRepo, agreement.NewPGTemplateStore(pool, labels), labels),
		Lifecycle: lifecycle,
		Invites:   invite.NewService(pool, agreementRepo),
		Cases:     caseService,
		Bridge:    bridge,
		Queue:     ticket.NewQueueService(pool),
	}
}

// SeedUser inserts a user row directly; the stress run does not need real
// password hashes or tokens.
func (h *Harness) SeedUser(ctx context.Context, role string) (string, error) {
	var id string
	err := h.Pool.QueryRow(ctx,
		`INSERT INTO users (email, full_name, password_hash, role) VALUES ($1, $2, 'x', $3) RETURNING id`,
		fmt.Sprintf("stress-%s@example.com", uuid.NewString()), "Stress User", role,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("seed user: %w", err)
	}
	return id, nil
}

// hibaAnswers walks the shortest drafting flow in field order.
var hibaAnswers = []string{"Ахмад ибн Салим", "Юсуф ибн Карим", "Собрание книг", "no"}

// draftComplete creates a hiba draft and answers every field.
func (h *Harness) draftComplete(ctx context.Context, owner string) (string, error) {
	a, _, err := h.Drafts.Start(ctx, owner, "hiba")
	if err != nil {
		return "", err
	}
	for _, answer := range hibaAnswers {
		result, err := h.Drafts.Submit(ctx, owner, a.ID, answer)
		if err != nil {
			return "", err
		}
		if result.Rejection != nil {
			return "", fmt.Errorf("unexpected rejection on %s: %s", result.Rejection.Field, result.Rejection.Reason)
		}
	}
	return a.ID, nil
}

// benign reports contention outcomes that are expected under concurrency.
func benign(err error) bool {
	return errors.Is(err, agreement.ErrStateGuard) ||
		errors.Is(err, agreement.ErrAgreementNotFound) ||
		errors.Is(err, agreement.ErrCounterpartySigned) ||
		errors.Is(err, agreement.ErrNotFullyExecuted) ||
		errors.Is(err, invite.ErrInviteUsed) ||
		errors.Is(err, invite.ErrInviteNotFound) ||
		errors.Is(err, invite.ErrOwnInvite) ||
		errors.Is(err, dispute.ErrBadStatus) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// LifecycleRunner drives whole agreements end to end: draft, confirm, invite,
// redeem, approve, sign, scholar review. A fraction of the
// agreements gets deleted mid-flight to exercise the delete guards.
func LifecycleRunner(ctx context.Context, h *Harness, owner, party string, stop <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		if err := runOnce(ctx, h, owner, party); err != nil && !benign(err) {
			return fmt.Errorf("lifecycle run: %w", err)
		}
		time.Sleep(time.Duration(10+rand.Intn(30)) * time.Millisecond)
	}
}

func runOnce(ctx context.Context, h *Harness, owner, party string) error {
	id, err := h.draftComplete(ctx, owner)
	if err != nil {
		return err
	}
	if err := h.Lifecycle.Confirm(ctx, owner, id); err != nil {
		return err
	}

	if rand.Intn(10) == 0 {
		// occasionally abandon: delete before any counterparty is involved
		return h.Lifecycle.Remove(ctx, owner, id)
	}

	send, err := h.Lifecycle.SendToParty(ctx, owner, id)
	if err != nil {
		return err
	}
	if send.InviteCode == "" {
		return fmt.Errorf("expected invite code for unbound agreement %s", id)
	}
	if _, err := h.Invites.Redeem(ctx, party, send.InviteCode); err != nil {
		return err
	}

	if err := h.Lifecycle.PartyApprove(ctx, party, id); err != nil {
		return err
	}
	if err := h.Lifecycle.Sign(ctx, party, id); err != nil {
		return err
	}

	// a signed agreement must refuse deletion
	if err := h.Lifecycle.Remove(ctx, owner, id); !errors.Is(err, agreement.ErrCounterpartySigned) {
		return fmt.Errorf("expected delete guard on signed agreement %s, got %v", id, err)
	}

	if err := h.Lifecycle.SendToScholar(ctx, owner, id); err != nil {
		return err
	}
	// the review ticket shadows the agreement: a later signed notification is
	// a terminal "done"
	return h.Bridge.Sync(ctx, ticket.EntityAgreement, id, "signed")
}

// InviteContender races two users over the same invite code; exactly one may
// bind as counterparty.
func InviteContender(ctx context.Context, h *Harness, owner, partyA, partyB string, stop <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		id, err := h.draftComplete(ctx, owner)
		if err != nil {
			if benign(err) {
				continue
			}
			return err
		}
		if err := h.Lifecycle.Confirm(ctx, owner, id); err != nil {
			if benign(err) {
				continue
			}
			return err
		}
		send, err := h.Lifecycle.SendToParty(ctx, owner, id)
		if err != nil {
			if benign(err) {
				continue
			}
			return err
		}

		var (
			wg   sync.WaitGroup
			errA error
			errB error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errA = h.Invites.Redeem(ctx, partyA, send.InviteCode)
		}()
		go func() {
			defer wg.Done()
			_, errB = h.Invites.Redeem(ctx, partyB, send.InviteCode)
		}()
		wg.Wait()

		if errA == nil && errB == nil {
			return fmt.Errorf("both contenders redeemed invite %s", send.InviteCode)
		}
		for _, err := range []error{errA, errB} {
			if err != nil && !benign(err) {
				return fmt.Errorf("invite contention: %w", err)
			}
		}
		time.Sleep(time.Duration(20+rand.Intn(40)) * time.Millisecond)
	}
}

// CourtRunner takes executed agreements to court and walks the case through
// its statuses; the bridge mirrors each move onto the case ticket.
func CourtRunner(ctx context.Context, h *Harness, owner, party, staff string, stop <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		if err := runCourtOnce(ctx, h, owner, party, staff); err != nil && !benign(err) {
			return fmt.Errorf("court run: %w", err)
		}
		time.Sleep(time.Duration(30+rand.Intn(60)) * time.Millisecond)
	}
}

func runCourtOnce(ctx context.Context, h *Harness, owner, party, staff string) error {
	id, err := h.draftComplete(ctx, owner)
	if err != nil {
		return err
	}
	if err := h.Lifecycle.Confirm(ctx, owner, id); err != nil {
		return err
	}
	send, err := h.Lifecycle.SendToParty(ctx, owner, id)
	if err != nil {
		return err
	}
	if _, err := h.Invites.Redeem(ctx, party, send.InviteCode); err != nil {
		return err
	}
	if err := h.Lifecycle.PartyApprove(ctx, party, id); err != nil {
		return err
	}
	if err := h.Lifecycle.Sign(ctx, party, id); err != nil {
		return err
	}
	if err := h.Lifecycle.SendToCourt(ctx, owner, id); err != nil {
		return err
	}

	var caseID string
	if err := h.Pool.QueryRow(ctx, `SELECT id FROM disputes WHERE agreement_id=$1`, id).Scan(&caseID); err != nil {
		return fmt.Errorf("find case: %w", err)
	}
	if _, err := h.Cases.SetStatus(ctx, staff, caseID, dispute.StatusInProgress); err != nil {
		return err
	}
	if _, err := h.Cases.SetStatus(ctx, staff, caseID, dispute.StatusClosed); err != nil {
		return err
	}
	return nil
}

// QueueReader keeps read pressure on the staff ticket queue.
func QueueReader(ctx context.Context, h *Harness, stop <-chan struct{}) error {
	statuses := []string{"", string(ticket.StatusNew), string(ticket.StatusDone)}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		records, _, err := h.Queue.List(ctx, ticket.ListFilters{
			Status:   ticket.Status(statuses[rand.Intn(len(statuses))]),
			PageSize: 20,
		})
		if err != nil && !benign(err) {
			return fmt.Errorf("queue list: %w", err)
		}
		if len(records) > 0 {
			if _, err := h.Queue.Events(ctx, records[rand.Intn(len(records))].ID); err != nil && !benign(err) {
				return fmt.Errorf("queue events: %w", err)
			}
		}
		time.Sleep(time.Duration(40+rand.Intn(60)) * time.Millisecond)
	}
}

// OutboxWorker consumes staged outbox messages with SKIP LOCKED.
func OutboxWorker(ctx context.Context, pool *pgxpool.Pool, stop <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return err
		}
		rows, err := tx.Query(ctx, `SELECT id FROM outbox WHERE processed_at IS NULL ORDER BY id FOR UPDATE SKIP LOCKED LIMIT 10`)
		if err != nil {
			_ = tx.Rollback(ctx)
			time.Sleep(50 * time.Millisecond)
			continue
		}
		ids := make([]int64, 0, 10)
		for rows.Next() {
			var id int64
			_ = rows.Scan(&id)
			ids = append(ids, id)
		}
		rows.Close()
		for _, id := range ids {
			_, _ = tx.Exec(ctx, `UPDATE outbox SET processed_at=NOW() WHERE id=$1`, id)
		}
		_ = tx.Commit(ctx)
		time.Sleep(100 * time.Millisecond)
	}
}
