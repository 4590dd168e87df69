package ticket

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mithaq/agreement"
	"mithaq/render"
)

// OpenerRepository is the data access needed to open tickets.
type OpenerRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, t Ticket) (Ticket, error)
	AppendEvent(ctx context.Context, tx pgx.Tx, ticketID, eventType, actorID string, payload map[string]any) error
}

// Opener creates tickets inside lifecycle transactions. It plugs into the
// agreement service as its ticket hook.
type Opener struct {
	repo    OpenerRepository
	labeler render.Labeler
}

func NewOpener(repo OpenerRepository, labeler render.Labeler) *Opener {
	if repo == nil {
		repo = NewRepository()
	}
	return &Opener{repo: repo, labeler: labeler}
}

// OpenReview queues a scholar review for a signed agreement.
func (o *Opener) OpenReview(ctx context.Context, tx pgx.Tx, a agreement.Agreement) error {
	t, err := o.repo.Insert(ctx, tx, Ticket{
		EntityKind: EntityAgreement,
		EntityID:   a.ID,
		Title:      fmt.Sprintf("Проверка договора: %s", o.kindTitle(a.Kind)),
		Status:     StatusNew,
	})
	if err != nil {
		return err
	}
	return o.repo.AppendEvent(ctx, tx, t.ID, "TICKET_OPENED", a.OwnerID, map[string]any{
		"entity_kind": EntityAgreement,
		"entity_id":   a.ID,
	})
}

// OpenCase queues the bookkeeping ticket that shadows a court case.
func (o *Opener) OpenCase(ctx context.Context, tx pgx.Tx, caseID, title, actorID string) error {
	t, err := o.repo.Insert(ctx, tx, Ticket{
		EntityKind: EntityCase,
		EntityID:   caseID,
		Title:      title,
		Status:     StatusNew,
	})
	if err != nil {
		return err
	}
	return o.repo.AppendEvent(ctx, tx, t.ID, "TICKET_OPENED", actorID, map[string]any{
		"entity_kind": EntityCase,
		"entity_id":   caseID,
	})
}

func (o *Opener) kindTitle(kindID string) string {
	if o.labeler == nil {
		return kindID
	}
	return o.labeler.Label("agreements.flow.type." + kindID)
}
