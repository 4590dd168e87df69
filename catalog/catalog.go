// Package catalog holds the static registry of agreement kinds. Each kind
// declares an ordered field list the drafting wizard walks through; the
// registry is configuration data and is never mutated at runtime.
package catalog

import "errors"

// ErrKindNotFound is returned when no agreement kind exists for the identifier.
var ErrKindNotFound = errors.New("catalog: agreement kind not found")

// Choice is one selectable answer for a closed field.
type Choice struct {
	Value    string
	LabelKey string
}

// Dependency gates a field on a previously collected answer. When Values is
// empty the field is asked whenever the referenced answer is non-empty;
// otherwise the answer must match one of Values.
type Dependency struct {
	Key    string
	Values []string
}

// FieldDefinition describes a single wizard question.
type FieldDefinition struct {
	Key          string
	PromptKey    string
	Optional     bool
	Choices      []Choice
	DependsOn    *Dependency
	PercentPair  bool
	PercentValue bool
	AllowPercent bool
}

// FreeText reports whether the field accepts arbitrary text rather than a
// fixed choice set.
func (f FieldDefinition) FreeText() bool {
	return len(f.Choices) == 0
}

// HasChoice reports whether value is a member of the field's choice set.
func (f FieldDefinition) HasChoice(value string) bool {
	for _, c := range f.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ChoiceLabelKey returns the label key for a choice value, or the value
// itself when the field is free text or the value is unknown.
func (f FieldDefinition) ChoiceLabelKey(value string) string {
	for _, c := range f.Choices {
		if c.Value == value {
			return c.LabelKey
		}
	}
	return value
}

// Kind is one agreement template: identity, the topic used to fetch its
// document template, and the ordered field graph.
type Kind struct {
	ID       string
	TitleKey string
	Topic    string
	Category string
	Fields   []FieldDefinition
}

// Field returns the definition for key within the kind.
func (k Kind) Field(key string) (FieldDefinition, bool) {
	for _, f := range k.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

var kindByID = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		m[k.ID] = k
	}
	return m
}()

// KindOf looks up an agreement kind by identifier.
func KindOf(id string) (Kind, error) {
	k, ok := kindByID[id]
	if !ok {
		return Kind{}, ErrKindNotFound
	}
	return k, nil
}

// All returns every registered kind in catalog order.
func All() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Categories returns the distinct category slugs in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range kinds {
		if !seen[k.Category] {
			seen[k.Category] = true
			out = append(out, k.Category)
		}
	}
	return out
}
