package ticket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTicketNotFound is returned when no ticket tracks the entity.
var ErrTicketNotFound = errors.New("ticket: not found")

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

const ticketColumns = `id, entity_kind, entity_id, title, status, assignee_id::text, created_at, updated_at, done_at`

func scanTicket(row pgx.Row) (Ticket, error) {
	var t Ticket
	if err := row.Scan(
		&t.ID,
		&t.EntityKind,
		&t.EntityID,
		&t.Title,
		&t.Status,
		&t.AssigneeID,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.DoneAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Ticket{}, ErrTicketNotFound
		}
		return Ticket{}, fmt.Errorf("ticket: scan: %w", err)
	}
	return t, nil
}

// Insert opens a ticket inside the caller's transaction. One ticket tracks
// each entity: re-opening after a retry (a failed scholar dispatch, say)
// resets the existing row instead of colliding on the entity key.
func (r *Repository) Insert(ctx context.Context, tx pgx.Tx, t Ticket) (Ticket, error) {
	const q = `
INSERT INTO review_tickets (entity_kind, entity_id, title, status)
VALUES ($1, $2, $3, $4)
ON CONFLICT (entity_kind, entity_id) DO UPDATE
SET title=EXCLUDED.title, status=EXCLUDED.status, done_at=NULL, updated_at=now()
RETURNING ` + ticketColumns
	rec, err := scanTicket(tx.QueryRow(ctx, q, t.EntityKind, t.EntityID, t.Title, t.Status))
	if err != nil {
		return Ticket{}, fmt.Errorf("ticket: insert: %w", err)
	}
	return rec, nil
}

// FindByEntityForUpdate locks the ticket tracking the given entity.
func (r *Repository) FindByEntityForUpdate(ctx context.Context, tx pgx.Tx, entityKind, entityID string) (Ticket, error) {
	const q = `SELECT ` + ticketColumns + ` FROM review_tickets WHERE entity_kind=$1 AND entity_id=$2 FOR UPDATE`
	return scanTicket(tx.QueryRow(ctx, q, entityKind, entityID))
}

// UpdateStatus moves the ticket, stamping done_at on terminal statuses and
// clearing it when a ticket reopens.
func (r *Repository) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error {
	const q = `
UPDATE review_tickets
SET status=$1,
    done_at = CASE WHEN $1 IN ('done','canceled') THEN COALESCE(done_at, now()) ELSE NULL END,
    updated_at=now()
WHERE id=$2
`
	tag, err := tx.Exec(ctx, q, next, id)
	if err != nil {
		return fmt.Errorf("ticket: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// Assign binds a staff member to the ticket.
func (r *Repository) Assign(ctx context.Context, tx pgx.Tx, id, assigneeID string) error {
	tag, err := tx.Exec(ctx, `UPDATE review_tickets SET assignee_id=$1::uuid, updated_at=now() WHERE id=$2`, assigneeID, id)
	if err != nil {
		return fmt.Errorf("ticket: assign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// AppendEvent records an immutable audit entry for the ticket.
func (r *Repository) AppendEvent(ctx context.Context, tx pgx.Tx, ticketID, eventType, actorID string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ticket: marshal event payload: %w", err)
	}
	var actor any
	if actorID != "" {
		actor = actorID
	}
	const q = `
INSERT INTO ticket_events (ticket_id, type, payload, actor_id)
VALUES ($1, $2, $3::jsonb, $4::uuid)
`
	if _, err := tx.Exec(ctx, q, ticketID, eventType, body, actor); err != nil {
		return fmt.Errorf("ticket: insert event: %w", err)
	}
	return nil
}

// ListFilters narrows the staff queue view.
type ListFilters struct {
	Status     Status
	EntityKind string
	Page       int
	PageSize   int
}

// QueueService serves ticket read paths for the staff surface.
type QueueService struct {
	pool *pgxpool.Pool
}

func NewQueueService(pool *pgxpool.Pool) *QueueService {
	return &QueueService{pool: pool}
}

func (s *QueueService) List(ctx context.Context, filters ListFilters) ([]Ticket, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.PageSize <= 0 || filters.PageSize > 100 {
		filters.PageSize = 20
	}

	where := `1=1`
	args := []any{}
	if filters.Status != "" {
		args = append(args, filters.Status)
		where += fmt.Sprintf(" AND status=$%d", len(args))
	}
	if filters.EntityKind != "" {
		args = append(args, filters.EntityKind)
		where += fmt.Sprintf(" AND entity_kind=$%d", len(args))
	}

	query := fmt.Sprintf(`
SELECT %s
FROM review_tickets
WHERE %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d
`, ticketColumns, where, len(args)+1, len(args)+2)

	rows, err := s.pool.Query(ctx, query, append(args, filters.PageSize, (filters.Page-1)*filters.PageSize)...)
	if err != nil {
		return nil, 0, fmt.Errorf("ticket: list: %w", err)
	}
	defer rows.Close()

	tickets := []Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ticket: list rows: %w", err)
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM review_tickets WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ticket: count: %w", err)
	}
	return tickets, total, nil
}

// Events returns the ticket's audit trail, oldest first.
func (s *QueueService) Events(ctx context.Context, ticketID string) ([]Event, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, ticket_id, type, actor_id::text, created_at, payload
FROM ticket_events
WHERE ticket_id=$1
ORDER BY id
`, ticketID)
	if err != nil {
		return nil, fmt.Errorf("ticket: events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.TicketID, &ev.Type, &ev.ActorID, &ev.CreatedAt, &ev.Payload); err != nil {
			return nil, fmt.Errorf("ticket: scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ticket: event rows: %w", err)
	}
	return events, nil
}
