package dispute

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mithaq/agreement"
	"mithaq/render"
	"mithaq/ticket"
)

// transitions lists the legal moves for a case.
var transitions = map[Status]map[Status]bool{
	StatusOpen:       {StatusInProgress: true, StatusCancelled: true},
	StatusInProgress: {StatusClosed: true, StatusCancelled: true},
}

// CaseRepository is the transactional data access the service needs.
type CaseRepository interface {
	InsertTx(ctx context.Context, tx pgx.Tx, c Case) (Case, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Case, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error
}

// Syncer mirrors case status changes into the ticket queue.
type Syncer interface {
	SyncInTx(ctx context.Context, tx pgx.Tx, entityKind, entityID, sourceStatus string) error
}

// TicketOpener opens the bookkeeping ticket that shadows a new case.
type TicketOpener interface {
	OpenCase(ctx context.Context, tx pgx.Tx, caseID, title, actorID string) error
}

type Service struct {
	pool    agreement.TxBeginner
	repo    CaseRepository
	bridge  Syncer
	tickets TicketOpener
	labeler render.Labeler
}

func NewService(pool agreement.TxBeginner, repo CaseRepository, bridge Syncer, tickets TicketOpener, labeler render.Labeler) *Service {
	return &Service{pool: pool, repo: repo, bridge: bridge, tickets: tickets, labeler: labeler}
}

// OpenCase materialises a court case for an agreement referred to court. It
// runs inside the agreement transition's transaction and plugs into the
// lifecycle service as its case hook.
func (s *Service) OpenCase(ctx context.Context, tx pgx.Tx, a agreement.Agreement) error {
	subject := "Судебное дело: " + s.kindTitle(a.Kind)
	c, err := s.repo.InsertTx(ctx, tx, Case{
		AgreementID: a.ID,
		OpenedBy:    a.OwnerID,
		Subject:     subject,
		Status:      StatusOpen,
	})
	if err != nil {
		return err
	}
	if s.tickets != nil {
		if err := s.tickets.OpenCase(ctx, tx, c.ID, subject, a.OwnerID); err != nil {
			return err
		}
	}
	return nil
}

// SetStatus moves a case and synchronously mirrors the move onto its ticket
// so the queue and the case can never disagree.
func (s *Service) SetStatus(ctx context.Context, actorID, caseID string, next Status) (Case, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Case{}, fmt.Errorf("dispute: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	c, err := s.repo.GetForUpdate(ctx, tx, caseID)
	if err != nil {
		return Case{}, err
	}
	if !transitions[c.Status][next] {
		return Case{}, ErrBadStatus
	}

	if err := s.repo.UpdateStatus(ctx, tx, caseID, next); err != nil {
		return Case{}, err
	}
	if s.bridge != nil {
		if err := s.bridge.SyncInTx(ctx, tx, ticket.EntityCase, caseID, string(next)); err != nil {
			return Case{}, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return Case{}, fmt.Errorf("dispute: commit status: %w", err)
	}

	c.Status = next
	return c, nil
}

func (s *Service) kindTitle(kindID string) string {
	if s.labeler == nil {
		return kindID
	}
	return s.labeler.Label("agreements.flow.type." + kindID)
}
