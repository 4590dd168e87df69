package invite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"mithaq/agreement"
)

var (
	// ErrInviteNotFound is returned for unknown or expired codes.
	ErrInviteNotFound = errors.New("invite: code not found")
	// ErrOwnInvite refuses an owner joining their own agreement.
	ErrOwnInvite = errors.New("invite: cannot redeem own invite")
	// ErrInviteUsed refuses a code whose agreement already has a
	// counterparty.
	ErrInviteUsed = errors.New("invite: code already redeemed")
)

// Repository is the agreement data access redemption needs inside one
// transaction.
type Repository interface {
	FindByInviteCode(ctx context.Context, tx pgx.Tx, code string) (agreement.Agreement, error)
	SetCounterparty(ctx context.Context, tx pgx.Tx, id, userID string) error
	ClearAnswer(ctx context.Context, tx pgx.Tx, id, key string) error
	AppendEvent(ctx context.Context, tx pgx.Tx, agreementID, eventType, actorID string, payload map[string]any) error
}

type Service struct {
	pool agreement.TxBeginner
	repo Repository
}

func NewService(pool agreement.TxBeginner, repo Repository) *Service {
	if repo == nil {
		repo = agreement.NewRepository()
	}
	return &Service{pool: pool, repo: repo}
}

// Resolve previews the agreement behind a code without binding anyone.
func (s *Service) Resolve(ctx context.Context, code string) (agreement.Agreement, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return agreement.Agreement{}, fmt.Errorf("invite: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	a, err := s.lookup(ctx, tx, code)
	if err != nil {
		return agreement.Agreement{}, err
	}
	return a, nil
}

// Redeem binds the caller as counterparty and hands them the agreement for
// review. The agreement is already sent_to_party; redemption only completes
// the pending delivery. The lookup and binding share one transaction so two
// concurrent redeemers cannot both win the code.
func (s *Service) Redeem(ctx context.Context, actorID, code string) (agreement.Agreement, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return agreement.Agreement{}, fmt.Errorf("invite: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	a, err := s.lookup(ctx, tx, code)
	if err != nil {
		return agreement.Agreement{}, err
	}
	if a.OwnerID == actorID {
		return agreement.Agreement{}, ErrOwnInvite
	}
	if a.Counterparty != nil {
		return agreement.Agreement{}, ErrInviteUsed
	}

	if err := s.repo.SetCounterparty(ctx, tx, a.ID, actorID); err != nil {
		return agreement.Agreement{}, err
	}
	if err := s.repo.ClearAnswer(ctx, tx, a.ID, agreement.InvitePendingKey); err != nil {
		return agreement.Agreement{}, err
	}
	if err := s.repo.AppendEvent(ctx, tx, a.ID, "AGREEMENT_INVITE_REDEEMED", actorID, map[string]any{
		"invite_code": a.InviteCode,
	}); err != nil {
		return agreement.Agreement{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return agreement.Agreement{}, fmt.Errorf("invite: commit redeem: %w", err)
	}

	party := actorID
	a.Counterparty = &party
	delete(a.Answers, agreement.InvitePendingKey)
	return a, nil
}

func (s *Service) lookup(ctx context.Context, tx pgx.Tx, code string) (agreement.Agreement, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != codeLength {
		return agreement.Agreement{}, ErrInviteNotFound
	}
	a, err := s.repo.FindByInviteCode(ctx, tx, normalized)
	if err != nil {
		if errors.Is(err, agreement.ErrAgreementNotFound) {
			return agreement.Agreement{}, ErrInviteNotFound
		}
		return agreement.Agreement{}, err
	}
	return a, nil
}
