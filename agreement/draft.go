package agreement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mithaq/catalog"
	"mithaq/render"
	"mithaq/validate"
	"mithaq/wizard"
)

// ErrNotEditable is returned when a draft operation targets an agreement
// whose status no longer accepts answers.
var ErrNotEditable = errors.New("agreement: not editable in current status")

// TemplateStore resolves the document template for an agreement kind.
type TemplateStore interface {
	Template(ctx context.Context, kindID string) (string, error)
}

// DraftRepository is the data access used while answers are being collected.
type DraftRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, a Agreement) (Agreement, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (Agreement, error)
	UpdateDraft(ctx context.Context, tx pgx.Tx, id string, cursor int, answers map[string]string, renderedText string) error
	AppendEvent(ctx context.Context, tx pgx.Tx, agreementID, eventType, actorID string, payload map[string]any) error
	EnqueueOutbox(ctx context.Context, tx pgx.Tx, topic string, payload map[string]any) error
}

// DraftService walks agreements through the field wizard and renders the
// document once every reachable field is answered.
type DraftService struct {
	pool      TxBeginner
	repo      DraftRepository
	templates TemplateStore
	labeler   render.Labeler
}

func NewDraftService(pool TxBeginner, repo DraftRepository, templates TemplateStore, labeler render.Labeler) *DraftService {
	if repo == nil {
		repo = NewRepository()
	}
	return &DraftService{pool: pool, repo: repo, templates: templates, labeler: labeler}
}

// Start creates a draft for the given kind and returns it together with the
// first field to prompt for.
func (s *DraftService) Start(ctx context.Context, ownerID, kindID string) (Agreement, *catalog.FieldDefinition, error) {
	session, err := wizard.New(kindID)
	if err != nil {
		return Agreement{}, nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Agreement{}, nil, fmt.Errorf("agreement: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	rec, err := s.repo.Insert(ctx, tx, Agreement{
		OwnerID: ownerID,
		Kind:    kindID,
		Status:  StatusDraft,
		Answers: map[string]string{},
	})
	if err != nil {
		return Agreement{}, nil, err
	}
	if err := s.repo.AppendEvent(ctx, tx, rec.ID, "AGREEMENT_CREATED", ownerID, map[string]any{
		"kind": kindID,
	}); err != nil {
		return Agreement{}, nil, err
	}
	if err := s.repo.EnqueueOutbox(ctx, tx, OutboxTopicCreated, map[string]any{
		"agreement_id": rec.ID,
		"kind":         kindID,
	}); err != nil {
		return Agreement{}, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Agreement{}, nil, fmt.Errorf("agreement: commit draft: %w", err)
	}

	field, _ := session.Current()
	return rec, &field, nil
}

// StepResult reports the outcome of one wizard step.
type StepResult struct {
	// Rejection is set when the answer was refused; the cursor did not move.
	Rejection *validate.Rejection
	// NextField is the next prompt, nil once the draft is complete.
	NextField *catalog.FieldDefinition
	// Complete is true once every reachable field has an answer; the
	// document has been rendered.
	Complete bool
}

// Submit validates and stores one answer for the agreement's current field.
func (s *DraftService) Submit(ctx context.Context, actorID, id, raw string) (StepResult, error) {
	return s.step(ctx, actorID, id, func(session *wizard.Session) (*validate.Rejection, error) {
		return session.Submit(raw)
	})
}

// Skip records an empty answer for the current optional field.
func (s *DraftService) Skip(ctx context.Context, actorID, id string) (StepResult, error) {
	return s.step(ctx, actorID, id, func(session *wizard.Session) (*validate.Rejection, error) {
		return nil, session.Skip()
	})
}

func (s *DraftService) step(ctx context.Context, actorID, id string, apply func(*wizard.Session) (*validate.Rejection, error)) (StepResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return StepResult{}, fmt.Errorf("agreement: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	a, err := s.repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return StepResult{}, err
	}
	if a.OwnerID != actorID {
		return StepResult{}, ErrNotOwner
	}
	if a.Status != StatusDraft {
		return StepResult{}, ErrNotEditable
	}

	session, err := wizard.Resume(a.Kind, a.Cursor, wizardAnswers(a.Answers))
	if err != nil {
		return StepResult{}, err
	}

	rej, err := apply(session)
	if err != nil {
		return StepResult{}, err
	}
	if rej != nil {
		return StepResult{Rejection: rej}, nil
	}

	// Bookkeeping markers live outside the wizard but share the document.
	answers := session.Answers
	for k, v := range a.Answers {
		if k == PartyStatusKey || k == InvitePendingKey || k == PartyCommentKey {
			answers[k] = v
		}
	}

	renderedText := a.RenderedText
	if session.Complete() {
		renderedText, err = s.renderDocument(ctx, session.Kind(), answers)
		if err != nil {
			return StepResult{}, err
		}
	}

	if err := s.repo.UpdateDraft(ctx, tx, id, session.Cursor, answers, renderedText); err != nil {
		return StepResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return StepResult{}, fmt.Errorf("agreement: commit step: %w", err)
	}

	result := StepResult{Complete: session.Complete()}
	if field, ok := session.Current(); ok {
		result.NextField = &field
	}
	return result, nil
}

func (s *DraftService) renderDocument(ctx context.Context, kind catalog.Kind, answers map[string]string) (string, error) {
	template, err := s.templates.Template(ctx, kind.ID)
	if err != nil {
		return "", fmt.Errorf("agreement: load template %s: %w", kind.ID, err)
	}
	values := render.Values(kind, answers, s.labeler)
	text := render.Render(template, values)
	if text == "" {
		return "", fmt.Errorf("agreement: template %s rendered empty", kind.ID)
	}
	return text, nil
}

// wizardAnswers strips bookkeeping keys so the wizard only sees field
// answers.
func wizardAnswers(answers map[string]string) map[string]string {
	out := make(map[string]string, len(answers))
	for k, v := range answers {
		if k == PartyStatusKey || k == InvitePendingKey || k == PartyCommentKey {
			continue
		}
		out[k] = v
	}
	return out
}
