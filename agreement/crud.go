package agreement

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ListFilters struct {
	UserID   string
	Status   Status
	Kind     string
	Page     int
	PageSize int
}

// CRUDService serves read paths straight from the pool; lifecycle writes go
// through Service.
type CRUDService struct {
	pool *pgxpool.Pool
}

func NewCRUDService(pool *pgxpool.Pool) *CRUDService {
	return &CRUDService{pool: pool}
}

// Get returns an agreement visible to the user, either as owner or as
// counterparty.
func (s *CRUDService) Get(ctx context.Context, userID, id string) (Agreement, error) {
	row := s.pool.QueryRow(ctx, `
SELECT `+agreementColumns+`
FROM agreements
WHERE id=$1 AND (owner_id=$2 OR counterparty_id=$2::uuid)
`, id, userID)
	return scanAgreement(row)
}

// List pages through the user's agreements, newest first, optionally
// filtered by status and kind.
func (s *CRUDService) List(ctx context.Context, filters ListFilters) ([]Agreement, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.PageSize <= 0 || filters.PageSize > 100 {
		filters.PageSize = 20
	}

	where := `(owner_id=$1 OR counterparty_id=$1::uuid)`
	args := []any{filters.UserID}
	if filters.Status != "" {
		args = append(args, filters.Status)
		where += fmt.Sprintf(" AND status=$%d", len(args))
	}
	if filters.Kind != "" {
		args = append(args, filters.Kind)
		where += fmt.Sprintf(" AND kind=$%d", len(args))
	}

	query := fmt.Sprintf(`
SELECT %s
FROM agreements
WHERE %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d
`, agreementColumns, where, len(args)+1, len(args)+2)

	rows, err := s.pool.Query(ctx, query, append(args, filters.PageSize, (filters.Page-1)*filters.PageSize)...)
	if err != nil {
		return nil, 0, fmt.Errorf("agreement: list: %w", err)
	}
	defer rows.Close()

	records := []Agreement{}
	for rows.Next() {
		rec, err := scanAgreement(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("agreement: list rows: %w", err)
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agreements WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("agreement: count: %w", err)
	}

	return records, total, nil
}

// Events returns the agreement's timeline, oldest first.
func (s *CRUDService) Events(ctx context.Context, id string) ([]TimelineEvent, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, agreement_id, type, actor_id::text, created_at, payload
FROM agreement_events
WHERE agreement_id=$1
ORDER BY id
`, id)
	if err != nil {
		return nil, fmt.Errorf("agreement: events: %w", err)
	}
	defer rows.Close()

	events := []TimelineEvent{}
	for rows.Next() {
		var ev TimelineEvent
		if err := rows.Scan(&ev.ID, &ev.AgreementID, &ev.Type, &ev.ActorID, &ev.CreatedAt, &ev.Payload); err != nil {
			return nil, fmt.Errorf("agreement: scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("agreement: event rows: %w", err)
	}
	return events, nil
}
