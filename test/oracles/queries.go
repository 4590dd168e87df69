// Package oracles holds the invariants checked repeatedly during stress
// runs. Each oracle is a query that must return zero rows.
package oracles

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Oracle struct {
	Name string
	SQL  string
}

func All() []Oracle {
	return []Oracle{
		{
			Name: "O1_invite_code_unique",
			SQL: `SELECT invite_code, COUNT(*) FROM agreements
                  WHERE invite_code IS NOT NULL
                  GROUP BY invite_code HAVING COUNT(*) > 1`,
		},
		{
			Name: "O2_rendered_past_draft",
			SQL: `SELECT id, status FROM agreements
                  WHERE status <> 'draft' AND rendered_text = ''`,
		},
		{
			Name: "O3_party_status_needs_counterparty",
			SQL: `SELECT id FROM agreements
                  WHERE answers ? 'party_status' AND counterparty_id IS NULL`,
		},
		{
			Name: "O4_sign_sets_substatus",
			SQL: `SELECT id, status FROM agreements
                  WHERE answers->>'party_status' = 'signed'
                    AND status IN ('draft','confirmed','sent_to_party','party_approved','party_changes_requested')`,
		},
		{
			Name: "O5_status_known",
			SQL: `SELECT id, status FROM agreements
                  WHERE status NOT IN ('draft','confirmed','sent_to_party','party_approved',
                                       'party_changes_requested','signed','sent_to_scholar',
                                       'scholar_send_failed','sent_to_court')`,
		},
		{
			Name: "O6_ticket_done_at",
			SQL: `SELECT id, status, done_at FROM review_tickets
                  WHERE (status IN ('done','canceled') AND done_at IS NULL)
                     OR (status IN ('new','in_progress') AND done_at IS NOT NULL)`,
		},
		{
			Name: "O7_ticket_per_entity",
			SQL: `SELECT entity_kind, entity_id, COUNT(*) FROM review_tickets
                  GROUP BY entity_kind, entity_id HAVING COUNT(*) > 1`,
		},
		{
			Name: "O8_case_closed_at",
			SQL: `SELECT id, status, closed_at FROM disputes
                  WHERE (status IN ('closed','cancelled') AND closed_at IS NULL)
                     OR (status IN ('open','in_progress') AND closed_at IS NOT NULL)`,
		},
		{
			Name: "O9_court_requires_party_signature",
			SQL: `SELECT id FROM agreements
                  WHERE status = 'sent_to_court'
                    AND COALESCE(answers->>'party_status','') <> 'signed'`,
		},
		{
			Name: "O10_events_linked",
			SQL: `SELECT e.id FROM agreement_events e
                  LEFT JOIN agreements a ON a.id = e.agreement_id
                  WHERE a.id IS NULL`,
		},
	}
}

// Run executes all oracles and returns the first failure (name and sample row text) or empty name if all pass.
func Run(ctx context.Context, pool *pgxpool.Pool) (string, string, error) {
	for _, o := range All() {
		rows, err := pool.Query(ctx, o.SQL)
		if err != nil {
			return o.Name, "", fmt.Errorf("oracle %s: %w", o.Name, err)
		}
		has := rows.Next()
		if has {
			vals, err := rows.Values()
			rows.Close()
			if err != nil {
				return o.Name, "", err
			}
			return o.Name, fmt.Sprintf("%v", vals), nil
		}
		rows.Close()
	}
	return "", "", nil
}
