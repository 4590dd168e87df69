// Package render fills agreement templates. Templates are plain text with
// {{key}} placeholders; rendering is line oriented so that optional fields a
// user skipped take their whole line with them instead of leaving dangling
// labels.
package render

import (
	"regexp"
	"strings"

	"mithaq/catalog"
)

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// labelOnlyRe matches a line reduced to its label after substitution, e.g.
// "Залог:" or "- Срок: ".
var labelOnlyRe = regexp.MustCompile(`:\s*$`)

// Labeler resolves display text for message keys, typically from the locale
// bundle.
type Labeler interface {
	Label(key string) string
}

// Values builds the substitution map for a drafted agreement: free-text
// answers pass through, choice answers render as their display labels. Empty
// answers stay empty so Render can elide their lines.
func Values(kind catalog.Kind, answers map[string]string, labeler Labeler) map[string]string {
	values := make(map[string]string, len(answers))
	for key, answer := range answers {
		field, ok := kind.Field(key)
		if ok && answer != "" && len(field.Choices) > 0 {
			if labelKey := field.ChoiceLabelKey(answer); labelKey != "" && labeler != nil {
				values[key] = labeler.Label(labelKey)
				continue
			}
		}
		values[key] = answer
	}
	return values
}

// Render substitutes values into the template one line at a time. A line is
// dropped when it references a key with no value, when a placeholder survives
// substitution, or when substitution leaves it as a bare label. Blank lines
// between kept lines survive; the result is trimmed at both ends.
func Render(template string, values map[string]string) string {
	lines := strings.Split(template, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		refs := placeholderRe.FindAllStringSubmatch(line, -1)

		drop := false
		for _, ref := range refs {
			if v, ok := values[ref[1]]; !ok || v == "" {
				drop = true
				break
			}
		}
		if drop {
			continue
		}

		substituted := placeholderRe.ReplaceAllStringFunc(line, func(m string) string {
			key := placeholderRe.FindStringSubmatch(m)[1]
			return values[key]
		})
		if strings.Contains(substituted, "{{") {
			continue
		}
		if len(refs) > 0 && labelOnlyRe.MatchString(substituted) {
			continue
		}
		kept = append(kept, substituted)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
