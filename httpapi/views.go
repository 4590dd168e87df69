package httpapi

import (
	"encoding/json"
	"time"

	"mithaq/agreement"
	"mithaq/catalog"
	"mithaq/dispute"
	"mithaq/render"
	"mithaq/ticket"
)

type agreementView struct {
	ID           string            `json:"id"`
	OwnerID      string            `json:"owner_id"`
	Counterparty *string           `json:"counterparty_id,omitempty"`
	Kind         string            `json:"kind"`
	Status       string            `json:"status"`
	PartyStatus  string            `json:"party_status,omitempty"`
	Cursor       int               `json:"cursor"`
	Answers      map[string]string `json:"answers"`
	RenderedText string            `json:"rendered_text,omitempty"`
	InviteCode   *string           `json:"invite_code,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func viewAgreement(a agreement.Agreement) agreementView {
	return agreementView{
		ID:           a.ID,
		OwnerID:      a.OwnerID,
		Counterparty: a.Counterparty,
		Kind:         a.Kind,
		Status:       string(a.Status),
		PartyStatus:  a.Answers[agreement.PartyStatusKey],
		Cursor:       a.Cursor,
		Answers:      a.Answers,
		RenderedText: a.RenderedText,
		InviteCode:   a.InviteCode,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type eventView struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	ActorID   *string         `json:"actor_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func viewAgreementEvents(events []agreement.TimelineEvent) []eventView {
	out := make([]eventView, 0, len(events))
	for _, ev := range events {
		out = append(out, eventView{
			ID:        ev.ID,
			Type:      ev.Type,
			ActorID:   ev.ActorID,
			Payload:   json.RawMessage(ev.Payload),
			CreatedAt: ev.CreatedAt,
		})
	}
	return out
}

func viewTicketEvents(events []ticket.Event) []eventView {
	out := make([]eventView, 0, len(events))
	for _, ev := range events {
		out = append(out, eventView{
			ID:        ev.ID,
			Type:      ev.Type,
			ActorID:   ev.ActorID,
			Payload:   json.RawMessage(ev.Payload),
			CreatedAt: ev.CreatedAt,
		})
	}
	return out
}

type fieldView struct {
	Key      string       `json:"key"`
	Prompt   string       `json:"prompt"`
	Optional bool         `json:"optional"`
	Choices  []choiceView `json:"choices,omitempty"`
}

type choiceView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func viewField(def catalog.FieldDefinition, labels render.Labeler) fieldView {
	v := fieldView{
		Key:      def.Key,
		Prompt:   labels.Label(def.PromptKey),
		Optional: def.Optional,
	}
	for _, ch := range def.Choices {
		v.Choices = append(v.Choices, choiceView{Value: ch.Value, Label: labels.Label(ch.LabelKey)})
	}
	return v
}

type kindView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

func viewKind(k catalog.Kind, labels render.Labeler) kindView {
	return kindView{
		ID:       k.ID,
		Title:    labels.Label(k.TitleKey),
		Category: k.Category,
	}
}

type ticketView struct {
	ID         string     `json:"id"`
	EntityKind string     `json:"entity_kind"`
	EntityID   string     `json:"entity_id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	AssigneeID *string    `json:"assignee_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DoneAt     *time.Time `json:"done_at,omitempty"`
}

func viewTicket(t ticket.Ticket) ticketView {
	return ticketView{
		ID:         t.ID,
		EntityKind: t.EntityKind,
		EntityID:   t.EntityID,
		Title:      t.Title,
		Status:     string(t.Status),
		AssigneeID: t.AssigneeID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		DoneAt:     t.DoneAt,
	}
}

type caseView struct {
	ID          string     `json:"id"`
	AgreementID string     `json:"agreement_id"`
	OpenedBy    string     `json:"opened_by"`
	Subject     string     `json:"subject"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

func viewCase(c dispute.Case) caseView {
	return caseView{
		ID:          c.ID,
		AgreementID: c.AgreementID,
		OpenedBy:    c.OpenedBy,
		Subject:     c.Subject,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		ClosedAt:    c.ClosedAt,
	}
}
