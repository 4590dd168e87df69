package agreement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrScholarDispatch is returned when the scholar panel could not be
	// reached; the agreement is parked in scholar_send_failed for a retry.
	ErrScholarDispatch = errors.New("agreement: scholar panel dispatch failed")
	// ErrInviteExhausted is returned when every invite code attempt collided.
	ErrInviteExhausted = errors.New("agreement: exhausted invite code attempts")
	// ErrCommentRequired is returned when the counterparty requests changes
	// without saying what to change.
	ErrCommentRequired = errors.New("agreement: change request needs a comment")
)

// TxBeginner abstracts pgxpool.Pool for testability.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// LifecycleRepository defines the data access required by the service.
type LifecycleRepository interface {
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Agreement, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error
	SetAnswer(ctx context.Context, tx pgx.Tx, id, key, value string) error
	ClearAnswer(ctx context.Context, tx pgx.Tx, id, key string) error
	SetInviteCode(ctx context.Context, tx pgx.Tx, id, code string) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	AppendEvent(ctx context.Context, tx pgx.Tx, agreementID, eventType, actorID string, payload map[string]any) error
	EnqueueOutbox(ctx context.Context, tx pgx.Tx, topic string, payload map[string]any) error
}

// Deliverer notifies the counterparty that an agreement awaits their review.
type Deliverer interface {
	DeliverToParty(ctx context.Context, partyID string, a Agreement) error
}

// Exporter persists the rendered document to external storage. Export
// failures never block confirmation.
type Exporter interface {
	Export(ctx context.Context, a Agreement) error
}

// PanelDispatcher submits a signed agreement to the scholar review panel.
type PanelDispatcher interface {
	Dispatch(ctx context.Context, a Agreement) error
}

// TicketOpener opens a review ticket in the same transaction as the
// transition that requires one.
type TicketOpener interface {
	OpenReview(ctx context.Context, tx pgx.Tx, a Agreement) error
}

// CaseOpener opens a court case when an agreement is referred to court.
type CaseOpener interface {
	OpenCase(ctx context.Context, tx pgx.Tx, a Agreement) error
}

// CodeIssuer produces candidate invite codes.
type CodeIssuer interface {
	NewCode() (string, error)
}

// inviteAttempts bounds retries when a generated code collides.
const inviteAttempts = 5

type Service struct {
	pool    TxBeginner
	repo    LifecycleRepository
	deliver Deliverer
	export  Exporter
	panel   PanelDispatcher
	tickets TicketOpener
	cases   CaseOpener
	codes   CodeIssuer
	logger  *log.Logger
}

type ServiceDeps struct {
	Deliverer  Deliverer
	Exporter   Exporter
	Panel      PanelDispatcher
	Tickets    TicketOpener
	Cases      CaseOpener
	Codes      CodeIssuer
	Logger     *log.Logger
	Repository LifecycleRepository
}

func NewService(pool TxBeginner, deps ServiceDeps) *Service {
	repo := deps.Repository
	if repo == nil {
		repo = NewRepository()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		pool:    pool,
		repo:    repo,
		deliver: deps.Deliverer,
		export:  deps.Exporter,
		panel:   deps.Panel,
		tickets: deps.Tickets,
		cases:   deps.Cases,
		codes:   deps.Codes,
		logger:  logger,
	}
}

// Confirm freezes a completed draft. The rendered document must exist; the
// export of the document is best effort and runs after commit.
func (s *Service) Confirm(ctx context.Context, actorID, id string) error {
	var confirmed Agreement
	err := s.transition(ctx, actorID, id, ActionConfirm, func(a Agreement) error {
		if a.OwnerID != actorID {
			return ErrNotOwner
		}
		if a.RenderedText == "" {
			return ErrNotRendered
		}
		confirmed = a
		return nil
	}, nil)
	if err != nil {
		return err
	}

	if s.export != nil {
		if exportErr := s.export.Export(ctx, confirmed); exportErr != nil {
			s.logger.Printf("agreement %s: document export failed: %v", id, exportErr)
		}
	}
	return nil
}

// Reopen returns an editable agreement to draft. Collected answers survive;
// the counterparty's approval does not, since the document may change.
func (s *Service) Reopen(ctx context.Context, actorID, id string) error {
	return s.transition(ctx, actorID, id, ActionEdit, func(a Agreement) error {
		if a.OwnerID != actorID {
			return ErrNotOwner
		}
		return nil
	}, func(ctx context.Context, tx pgx.Tx, a Agreement) error {
		return s.repo.ClearAnswer(ctx, tx, id, PartyStatusKey)
	})
}

// SendResult reports how an agreement reached (or will reach) its
// counterparty.
type SendResult struct {
	Delivered  bool
	InviteCode string
}

// SendToParty hands the agreement to the counterparty. With a bound
// counterparty it is delivered directly; with no counterparty yet, an invite
// code is issued for out-of-band delivery. The status becomes sent_to_party
// either way, with a pending marker in the answers until the code is
// redeemed.
func (s *Service) SendToParty(ctx context.Context, actorID, id string) (SendResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return SendResult{}, fmt.Errorf("agreement: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	a, err := s.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return SendResult{}, err
	}
	if a.OwnerID != actorID {
		return SendResult{}, ErrNotOwner
	}
	next, err := Next(a.Status, ActionSendToParty)
	if err != nil {
		return SendResult{}, err
	}

	if a.Counterparty == nil {
		code, err := s.issueInvite(ctx, tx, a)
		if err != nil {
			return SendResult{}, err
		}
		if err := s.applyTransition(ctx, tx, a, next, actorID, map[string]any{
			"pending_delivery": true,
		}); err != nil {
			return SendResult{}, err
		}
		if err := tx.Commit(ctx); err != nil {
			return SendResult{}, fmt.Errorf("agreement: commit invite: %w", err)
		}
		return SendResult{InviteCode: code}, nil
	}

	if err := s.applyTransition(ctx, tx, a, next, actorID, nil); err != nil {
		return SendResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return SendResult{}, fmt.Errorf("agreement: commit send: %w", err)
	}

	if s.deliver != nil {
		if err := s.deliver.DeliverToParty(ctx, *a.Counterparty, a); err != nil {
			s.logger.Printf("agreement %s: party notification failed: %v", id, err)
		}
	}
	return SendResult{Delivered: true}, nil
}

func (s *Service) issueInvite(ctx context.Context, tx pgx.Tx, a Agreement) (string, error) {
	if s.codes == nil {
		return "", fmt.Errorf("agreement: no invite code issuer configured")
	}
	var code string
	for attempt := 0; attempt < inviteAttempts; attempt++ {
		candidate, err := s.codes.NewCode()
		if err != nil {
			return "", fmt.Errorf("agreement: generate invite code: %w", err)
		}
		err = s.repo.SetInviteCode(ctx, tx, a.ID, candidate)
		if err == nil {
			code = candidate
			break
		}
		if !errors.Is(err, ErrDuplicateInviteCode) {
			return "", err
		}
	}
	if code == "" {
		return "", ErrInviteExhausted
	}

	if err := s.repo.SetAnswer(ctx, tx, a.ID, InvitePendingKey, "1"); err != nil {
		return "", err
	}
	if err := s.repo.AppendEvent(ctx, tx, a.ID, "AGREEMENT_INVITE_ISSUED", a.OwnerID, map[string]any{
		"invite_code": code,
	}); err != nil {
		return "", err
	}
	return code, nil
}

// PartyApprove records the counterparty's approval of the received draft.
func (s *Service) PartyApprove(ctx context.Context, actorID, id string) error {
	return s.transition(ctx, actorID, id, ActionPartyApprove, counterpartyGuard(actorID), func(ctx context.Context, tx pgx.Tx, a Agreement) error {
		return s.repo.SetAnswer(ctx, tx, id, PartyStatusKey, "approved")
	})
}

// PartyRequestChanges sends the draft back to the owner with objections. The
// comment is mandatory: it is stored with the agreement's answers and lands
// on the timeline so the owner sees what to change.
func (s *Service) PartyRequestChanges(ctx context.Context, actorID, id, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrCommentRequired
	}
	return s.transition(ctx, actorID, id, ActionPartyRequestChanges, counterpartyGuard(actorID), func(ctx context.Context, tx pgx.Tx, a Agreement) error {
		if err := s.repo.SetAnswer(ctx, tx, id, PartyCommentKey, comment); err != nil {
			return err
		}
		return s.repo.AppendEvent(ctx, tx, id, "AGREEMENT_CHANGES_REQUESTED", actorID, map[string]any{
			"comment": comment,
		})
	})
}

// Sign records the counterparty's signature. The status and the party_status
// sub-status move to signed in one step; the counterparty may sign directly
// from sent_to_party or after approving first.
func (s *Service) Sign(ctx context.Context, actorID, id string) error {
	return s.transition(ctx, actorID, id, ActionSign, counterpartyGuard(actorID), func(ctx context.Context, tx pgx.Tx, a Agreement) error {
		return s.repo.SetAnswer(ctx, tx, id, PartyStatusKey, "signed")
	})
}

// SendToScholar submits the signed agreement to the review panel. A failed
// dispatch parks the agreement in scholar_send_failed so the owner can retry
// or reopen; a successful dispatch opens a review ticket in the same
// transaction as the status change.
func (s *Service) SendToScholar(ctx context.Context, actorID, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("agreement: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	a, err := s.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}
	if a.OwnerID != actorID {
		return ErrNotOwner
	}
	next, err := Next(a.Status, ActionSendToScholar)
	if err != nil {
		return err
	}

	var dispatchErr error
	if s.panel != nil {
		dispatchErr = s.panel.Dispatch(ctx, a)
	}
	if dispatchErr != nil {
		if err := s.applyTransition(ctx, tx, a, StatusScholarSendFailed, actorID, map[string]any{
			"dispatch_error": dispatchErr.Error(),
		}); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("agreement: commit failed dispatch: %w", err)
		}
		return fmt.Errorf("%w: %v", ErrScholarDispatch, dispatchErr)
	}

	if err := s.applyTransition(ctx, tx, a, next, actorID, nil); err != nil {
		return err
	}
	if s.tickets != nil {
		if err := s.tickets.OpenReview(ctx, tx, a); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("agreement: commit scholar send: %w", err)
	}
	return nil
}

// SendToCourt refers a dispute over a fully executed agreement to court.
// Both signatures are required.
func (s *Service) SendToCourt(ctx context.Context, actorID, id string) error {
	return s.transition(ctx, actorID, id, ActionSendToCourt, func(a Agreement) error {
		if a.OwnerID != actorID {
			return ErrNotOwner
		}
		if !a.PartySigned() {
			return ErrNotFullyExecuted
		}
		return nil
	}, func(ctx context.Context, tx pgx.Tx, a Agreement) error {
		if s.cases == nil {
			return nil
		}
		return s.cases.OpenCase(ctx, tx, a)
	})
}

// Remove deletes the agreement. A signed agreement binds both parties and
// can no longer be removed unilaterally.
func (s *Service) Remove(ctx context.Context, actorID, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("agreement: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	a, err := s.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}
	if a.OwnerID != actorID {
		return ErrNotOwner
	}
	if !Deletable(a.Status) {
		return ErrStateGuard
	}
	if a.PartySigned() {
		return ErrCounterpartySigned
	}

	if err := s.repo.Delete(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("agreement: commit delete: %w", err)
	}
	return nil
}

// transition runs the lock-guard-update-event-outbox sequence shared by the
// simple lifecycle actions.
func (s *Service) transition(ctx context.Context, actorID, id string, action Action, guard func(Agreement) error, extra func(context.Context, pgx.Tx, Agreement) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("agreement: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	a, err := s.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}
	if guard != nil {
		if err := guard(a); err != nil {
			return err
		}
	}
	next, err := Next(a.Status, action)
	if err != nil {
		return err
	}

	if err := s.applyTransition(ctx, tx, a, next, actorID, nil); err != nil {
		return err
	}
	if extra != nil {
		if err := extra(ctx, tx, a); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("agreement: commit transition: %w", err)
	}
	return nil
}

func (s *Service) applyTransition(ctx context.Context, tx pgx.Tx, a Agreement, next Status, actorID string, payload map[string]any) error {
	if err := s.repo.UpdateStatus(ctx, tx, a.ID, next); err != nil {
		return err
	}

	eventPayload := map[string]any{
		"previous_status": string(a.Status),
		"next_status":     string(next),
	}
	for k, v := range payload {
		eventPayload[k] = v
	}
	if err := s.repo.AppendEvent(ctx, tx, a.ID, "AGREEMENT_STATUS_CHANGED", actorID, eventPayload); err != nil {
		return err
	}

	return s.repo.EnqueueOutbox(ctx, tx, OutboxTopicStatusChanged, map[string]any{
		"agreement_id": a.ID,
		"previous":     string(a.Status),
		"next":         string(next),
	})
}

func counterpartyGuard(actorID string) func(Agreement) error {
	return func(a Agreement) error {
		if a.Counterparty == nil || *a.Counterparty != actorID {
			return ErrNotCounterparty
		}
		return nil
	}
}
