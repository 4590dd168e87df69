// Package wizard walks a user through the field graph of an agreement kind,
// one prompt at a time, validating each answer before it is stored.
package wizard

import (
	"errors"

	"mithaq/catalog"
	"mithaq/validate"
)

var (
	ErrComplete     = errors.New("wizard: session already complete")
	ErrNotSkippable = errors.New("wizard: current field is required")
)

// Session is the in-progress state of one drafting flow. Cursor points at the
// next field to prompt for; fields whose dependency is not met are passed
// over without a prompt.
type Session struct {
	KindID  string            `json:"kind_id"`
	Cursor  int               `json:"cursor"`
	Answers map[string]string `json:"answers"`

	kind catalog.Kind
}

// New starts a session for the given agreement kind.
func New(kindID string) (*Session, error) {
	kind, err := catalog.KindOf(kindID)
	if err != nil {
		return nil, err
	}
	return &Session{
		KindID:  kindID,
		Answers: map[string]string{},
		kind:    kind,
	}, nil
}

// Resume rebuilds a session from persisted state.
func Resume(kindID string, cursor int, answers map[string]string) (*Session, error) {
	s, err := New(kindID)
	if err != nil {
		return nil, err
	}
	s.Cursor = cursor
	if answers != nil {
		s.Answers = answers
	}
	s.advance()
	return s, nil
}

// Kind returns the catalog entry the session is drafting.
func (s *Session) Kind() catalog.Kind { return s.kind }

// Complete reports whether every reachable field has been answered.
func (s *Session) Complete() bool {
	return s.Cursor >= len(s.kind.Fields)
}

// Current returns the field the session is waiting on. ok is false once the
// session is complete.
func (s *Session) Current() (catalog.FieldDefinition, bool) {
	if s.Complete() {
		return catalog.FieldDefinition{}, false
	}
	return s.kind.Fields[s.Cursor], true
}

// Submit validates the answer for the current field. On acceptance the
// normalized value is stored and the cursor moves to the next reachable
// field; on rejection the cursor stays put so the caller can re-prompt.
func (s *Session) Submit(raw string) (*validate.Rejection, error) {
	field, ok := s.Current()
	if !ok {
		return nil, ErrComplete
	}
	value, rej := validate.Field(s.kind, field, raw, s.Answers)
	if rej != nil {
		return rej, nil
	}
	s.Answers[field.Key] = value
	s.Cursor++
	s.advance()
	return nil, nil
}

// Skip records an empty answer for the current field. Only optional fields
// may be skipped.
func (s *Session) Skip() error {
	field, ok := s.Current()
	if !ok {
		return ErrComplete
	}
	if !field.Optional {
		return ErrNotSkippable
	}
	s.Answers[field.Key] = ""
	s.Cursor++
	s.advance()
	return nil
}

// advance moves the cursor past fields whose dependency is not satisfied.
// Skipped-over fields get no answer entry at all.
func (s *Session) advance() {
	for s.Cursor < len(s.kind.Fields) {
		dep := s.kind.Fields[s.Cursor].DependsOn
		if dep == nil || s.dependencyMet(dep) {
			return
		}
		s.Cursor++
	}
}

func (s *Session) dependencyMet(dep *catalog.Dependency) bool {
	answer, ok := s.Answers[dep.Key]
	if !ok || answer == "" {
		return false
	}
	if len(dep.Values) == 0 {
		return true
	}
	for _, v := range dep.Values {
		if answer == v {
			return true
		}
	}
	return false
}
