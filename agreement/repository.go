package agreement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrAgreementNotFound is returned when no row exists for the identifier.
	ErrAgreementNotFound = errors.New("agreement: not found")
	// ErrDuplicateInviteCode signals the invite code hit the unique index.
	ErrDuplicateInviteCode = errors.New("agreement: duplicate invite code")
)

// Repository contains the data access that runs inside a caller-owned
// transaction so multi-step lifecycle writes stay atomic.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

const agreementColumns = `id, owner_id, counterparty_id::text, kind, status, cursor, answers, rendered_text, invite_code, created_at, updated_at`

func scanAgreement(row pgx.Row) (Agreement, error) {
	var a Agreement
	if err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Counterparty,
		&a.Kind,
		&a.Status,
		&a.Cursor,
		&a.Answers,
		&a.RenderedText,
		&a.InviteCode,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Agreement{}, ErrAgreementNotFound
		}
		return Agreement{}, fmt.Errorf("agreement: scan: %w", err)
	}
	if a.Answers == nil {
		a.Answers = map[string]string{}
	}
	return a, nil
}

// GetForUpdate locks the agreement row for the remainder of the transaction.
// Lifecycle decisions are made against this snapshot.
func (r *Repository) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Agreement, error) {
	row := tx.QueryRow(ctx, `SELECT `+agreementColumns+` FROM agreements WHERE id=$1 FOR UPDATE`, id)
	a, err := scanAgreement(row)
	if err != nil {
		if errors.Is(err, ErrAgreementNotFound) {
			return Agreement{}, err
		}
		return Agreement{}, fmt.Errorf("agreement: lock row: %w", err)
	}
	return a, nil
}

// Insert creates a fresh draft row and returns it with generated columns.
func (r *Repository) Insert(ctx context.Context, tx pgx.Tx, a Agreement) (Agreement, error) {
	const insertSQL = `
INSERT INTO agreements (owner_id, kind, status, cursor, answers, rendered_text)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + agreementColumns
	row := tx.QueryRow(ctx, insertSQL, a.OwnerID, a.Kind, a.Status, a.Cursor, a.Answers, a.RenderedText)
	rec, err := scanAgreement(row)
	if err != nil {
		return Agreement{}, fmt.Errorf("agreement: insert draft: %w", err)
	}
	return rec, nil
}

// UpdateDraft persists wizard progress and the rendered document.
func (r *Repository) UpdateDraft(ctx context.Context, tx pgx.Tx, id string, cursor int, answers map[string]string, renderedText string) error {
	tag, err := tx.Exec(ctx, `
UPDATE agreements
SET cursor=$1, answers=$2, rendered_text=$3, updated_at=now()
WHERE id=$4
`, cursor, answers, renderedText, id)
	if err != nil {
		return fmt.Errorf("agreement: update draft: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAgreementNotFound
	}
	return nil
}

// UpdateStatus moves the locked row to its next lifecycle status.
func (r *Repository) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error {
	tag, err := tx.Exec(ctx, `
UPDATE agreements
SET status=$1, status_updated_at=now(), updated_at=now()
WHERE id=$2
`, next, id)
	if err != nil {
		return fmt.Errorf("agreement: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAgreementNotFound
	}
	return nil
}

// SetAnswer writes a single bookkeeping key into the answers document.
func (r *Repository) SetAnswer(ctx context.Context, tx pgx.Tx, id, key, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("agreement: encode answer: %w", err)
	}
	if _, err := tx.Exec(ctx, `
UPDATE agreements
SET answers = jsonb_set(answers, ARRAY[$1], $2::jsonb), updated_at=now()
WHERE id=$3
`, key, encoded, id); err != nil {
		return fmt.Errorf("agreement: set answer %s: %w", key, err)
	}
	return nil
}

// ClearAnswer removes a bookkeeping key from the answers document.
func (r *Repository) ClearAnswer(ctx context.Context, tx pgx.Tx, id, key string) error {
	if _, err := tx.Exec(ctx, `
UPDATE agreements
SET answers = answers - $1, updated_at=now()
WHERE id=$2
`, key, id); err != nil {
		return fmt.Errorf("agreement: clear answer %s: %w", key, err)
	}
	return nil
}

// SetCounterparty binds the second party to the agreement.
func (r *Repository) SetCounterparty(ctx context.Context, tx pgx.Tx, id, userID string) error {
	if _, err := tx.Exec(ctx, `
UPDATE agreements
SET counterparty_id=$1::uuid, updated_at=now()
WHERE id=$2
`, userID, id); err != nil {
		return fmt.Errorf("agreement: set counterparty: %w", err)
	}
	return nil
}

// SetInviteCode reserves an invite code for the agreement. The unique index
// on invite_code surfaces collisions as ErrDuplicateInviteCode so the caller
// can retry with a fresh code.
func (r *Repository) SetInviteCode(ctx context.Context, tx pgx.Tx, id, code string) error {
	if code == "" {
		return fmt.Errorf("agreement: empty invite code")
	}
	_, err := tx.Exec(ctx, `UPDATE agreements SET invite_code=$1, updated_at=now() WHERE id=$2`, code, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateInviteCode
		}
		return fmt.Errorf("agreement: set invite code: %w", err)
	}
	return nil
}

// FindByInviteCode resolves and locks the agreement bound to an invite code.
func (r *Repository) FindByInviteCode(ctx context.Context, tx pgx.Tx, code string) (Agreement, error) {
	row := tx.QueryRow(ctx, `SELECT `+agreementColumns+` FROM agreements WHERE invite_code=$1 FOR UPDATE`, code)
	return scanAgreement(row)
}

// Delete removes the agreement together with its timeline.
func (r *Repository) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM agreement_events WHERE agreement_id=$1`, id); err != nil {
		return fmt.Errorf("agreement: delete events: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM agreements WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("agreement: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAgreementNotFound
	}
	return nil
}

// AppendEvent records an immutable lifecycle event.
func (r *Repository) AppendEvent(ctx context.Context, tx pgx.Tx, agreementID, eventType, actorID string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("agreement: marshal event payload: %w", err)
	}
	var actor any
	if actorID != "" {
		actor = actorID
	}
	const q = `
INSERT INTO agreement_events (agreement_id, type, payload, actor_id)
VALUES ($1, $2, $3::jsonb, $4::uuid)
`
	if _, err := tx.Exec(ctx, q, agreementID, eventType, body, actor); err != nil {
		return fmt.Errorf("agreement: insert event: %w", err)
	}
	return nil
}

// EnqueueOutbox stages a message for downstream delivery in the same
// transaction as the state change it describes.
func (r *Repository) EnqueueOutbox(ctx context.Context, tx pgx.Tx, topic string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("agreement: marshal outbox payload: %w", err)
	}
	const q = `INSERT INTO outbox (topic, payload) VALUES ($1, $2::jsonb)`
	if _, err := tx.Exec(ctx, q, topic, body); err != nil {
		return fmt.Errorf("agreement: enqueue outbox: %w", err)
	}
	return nil
}
