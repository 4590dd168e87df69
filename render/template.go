package render

import (
	"strings"

	"mithaq/catalog"
)

// DefaultTemplate builds a plain field-list document for kinds that have no
// curated template stored. Each field becomes a labelled line, so skipped
// optional fields disappear under the normal elision rules.
func DefaultTemplate(kind catalog.Kind, labeler Labeler) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(label(labeler, kind.TitleKey)))
	b.WriteString("\n")
	for _, field := range kind.Fields {
		b.WriteString("\n")
		b.WriteString(label(labeler, field.PromptKey))
		b.WriteString(": {{")
		b.WriteString(field.Key)
		b.WriteString("}}")
	}
	return b.String()
}

func label(labeler Labeler, key string) string {
	if labeler == nil {
		return key
	}
	return labeler.Label(key)
}
