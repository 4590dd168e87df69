package agreement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mithaq/catalog"
	"mithaq/render"
)

// PGTemplateStore serves document templates from the templates table.
// Kinds without a curated template fall back to a generated field-list
// document so drafting never blocks on missing content.
type PGTemplateStore struct {
	pool    *pgxpool.Pool
	labeler render.Labeler
}

func NewPGTemplateStore(pool *pgxpool.Pool, labeler render.Labeler) *PGTemplateStore {
	return &PGTemplateStore{pool: pool, labeler: labeler}
}

func (s *PGTemplateStore) Template(ctx context.Context, kindID string) (string, error) {
	var body string
	err := s.pool.QueryRow(ctx, `SELECT body FROM templates WHERE kind=$1`, kindID).Scan(&body)
	switch {
	case err == nil:
		return body, nil
	case errors.Is(err, pgx.ErrNoRows):
		kind, kerr := catalog.KindOf(kindID)
		if kerr != nil {
			return "", kerr
		}
		return render.DefaultTemplate(kind, s.labeler), nil
	default:
		return "", fmt.Errorf("agreement: load template: %w", err)
	}
}
