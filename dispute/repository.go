package dispute

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("dispute: not found")
	ErrForbidden = errors.New("dispute: forbidden")
	ErrBadStatus = errors.New("dispute: invalid status transition")
)

const caseColumns = `id, agreement_id, opened_by, subject, status, created_at, updated_at, closed_at`

func scanCase(row pgx.Row) (Case, error) {
	var c Case
	if err := row.Scan(&c.ID, &c.AgreementID, &c.OpenedBy, &c.Subject, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.ClosedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Case{}, ErrNotFound
		}
		return Case{}, fmt.Errorf("dispute: scan: %w", err)
	}
	return c, nil
}

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertTx opens a case inside the caller's transaction, alongside the
// agreement transition that caused it.
func (r *Repository) InsertTx(ctx context.Context, tx pgx.Tx, c Case) (Case, error) {
	const q = `
INSERT INTO disputes (agreement_id, opened_by, subject, status)
VALUES ($1, $2, $3, $4)
RETURNING ` + caseColumns
	rec, err := scanCase(tx.QueryRow(ctx, q, c.AgreementID, c.OpenedBy, c.Subject, c.Status))
	if err != nil {
		return Case{}, fmt.Errorf("dispute: insert: %w", err)
	}
	return rec, nil
}

// GetForUpdate locks the case row for a status change.
func (r *Repository) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Case, error) {
	return scanCase(tx.QueryRow(ctx, `SELECT `+caseColumns+` FROM disputes WHERE id=$1 FOR UPDATE`, id))
}

// UpdateStatus moves the case, stamping closed_at on terminal statuses.
func (r *Repository) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error {
	const q = `
UPDATE disputes
SET status=$1,
    closed_at = CASE WHEN $1 IN ('closed','cancelled') THEN COALESCE(closed_at, now()) ELSE closed_at END,
    updated_at=now()
WHERE id=$2
`
	tag, err := tx.Exec(ctx, q, next, id)
	if err != nil {
		return fmt.Errorf("dispute: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns a case visible to a party of the underlying agreement.
func (r *Repository) Get(ctx context.Context, userID, id string) (Case, error) {
	const q = `
SELECT d.id, d.agreement_id, d.opened_by, d.subject, d.status, d.created_at, d.updated_at, d.closed_at
FROM disputes d
JOIN agreements a ON a.id = d.agreement_id
WHERE d.id=$1 AND (a.owner_id=$2 OR a.counterparty_id=$2::uuid)
`
	return scanCase(r.pool.QueryRow(ctx, q, id, userID))
}

// List returns the user's cases, newest first, optionally narrowed to one
// agreement.
func (r *Repository) List(ctx context.Context, userID, agreementID string) ([]Case, error) {
	query := `
SELECT d.id, d.agreement_id, d.opened_by, d.subject, d.status, d.created_at, d.updated_at, d.closed_at
FROM disputes d
JOIN agreements a ON a.id = d.agreement_id
WHERE (a.owner_id=$1 OR a.counterparty_id=$1::uuid)
`
	args := []any{userID}
	if agreementID != "" {
		query += " AND d.agreement_id = $2"
		args = append(args, agreementID)
	}
	query += " ORDER BY d.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dispute: list: %w", err)
	}
	defer rows.Close()

	out := make([]Case, 0, 8)
	for rows.Next() {
		rec, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dispute: iterate: %w", err)
	}
	return out, nil
}
