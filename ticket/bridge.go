package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// statusMaps projects the tracked entity's own status onto the ticket queue.
// Statuses missing from a map intentionally leave the ticket untouched.
var statusMaps = map[string]map[string]Status{
	EntityCase: {
		"open":        StatusNew,
		"in_progress": StatusInProgress,
		"closed":      StatusDone,
		"cancelled":   StatusCanceled,
	},
	EntityAgreement: {
		"sent_to_scholar":         StatusNew,
		"party_changes_requested": StatusInProgress,
		"signed":                  StatusDone,
		"sent_to_court":           StatusDone,
	},
}

// Map resolves the ticket status an entity status translates to. ok is false
// for statuses that do not drive the ticket.
func Map(entityKind, sourceStatus string) (Status, bool) {
	next, ok := statusMaps[entityKind][sourceStatus]
	return next, ok
}

// TxBeginner abstracts pgxpool.Pool for testability.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BridgeRepository is the data access the bridge needs.
type BridgeRepository interface {
	FindByEntityForUpdate(ctx context.Context, tx pgx.Tx, entityKind, entityID string) (Ticket, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error
	AppendEvent(ctx context.Context, tx pgx.Tx, ticketID, eventType, actorID string, payload map[string]any) error
}

// Bridge keeps tickets in step with the entities they track. Syncing is
// idempotent: replaying the same source status is a no-op, and entities
// without a ticket are ignored.
type Bridge struct {
	pool TxBeginner
	repo BridgeRepository
}

func NewBridge(pool TxBeginner, repo BridgeRepository) *Bridge {
	if repo == nil {
		repo = NewRepository()
	}
	return &Bridge{pool: pool, repo: repo}
}

// Sync runs SyncInTx in its own transaction.
func (b *Bridge) Sync(ctx context.Context, entityKind, entityID, sourceStatus string) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ticket: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := b.SyncInTx(ctx, tx, entityKind, entityID, sourceStatus); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ticket: commit sync: %w", err)
	}
	return nil
}

// SyncInTx applies the status map inside the caller's transaction so the
// ticket moves atomically with the entity that drives it.
func (b *Bridge) SyncInTx(ctx context.Context, tx pgx.Tx, entityKind, entityID, sourceStatus string) error {
	mapped, ok := Map(entityKind, sourceStatus)
	if !ok {
		return nil
	}

	t, err := b.repo.FindByEntityForUpdate(ctx, tx, entityKind, entityID)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return nil
		}
		return err
	}
	if t.Status == mapped {
		return nil
	}

	if err := b.repo.UpdateStatus(ctx, tx, t.ID, mapped); err != nil {
		return err
	}
	return b.repo.AppendEvent(ctx, tx, t.ID, "TICKET_STATUS_SYNCED", "", map[string]any{
		"entity_kind":   entityKind,
		"entity_id":     entityID,
		"source_status": sourceStatus,
		"previous":      string(t.Status),
		"next":          string(mapped),
	})
}
