// Package locale resolves message keys to display text. Labels ship as an
// embedded YAML bundle; unknown keys degrade to a humanized form of the last
// key segment so the renderer always has something to print.
package locale

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed labels.yaml
var defaultLabels []byte

type Bundle struct {
	labels map[string]string
}

// Default loads the embedded label bundle. The bundle is compiled in, so a
// parse failure is a build defect.
func Default() *Bundle {
	b, err := Load(defaultLabels)
	if err != nil {
		panic(err)
	}
	return b
}

// Load parses a YAML document of key -> label pairs.
func Load(raw []byte) (*Bundle, error) {
	labels := map[string]string{}
	if err := yaml.Unmarshal(raw, &labels); err != nil {
		return nil, fmt.Errorf("locale: parse labels: %w", err)
	}
	return &Bundle{labels: labels}, nil
}

// Merge overlays additional labels, e.g. operator-supplied overrides.
func (b *Bundle) Merge(raw []byte) error {
	extra := map[string]string{}
	if err := yaml.Unmarshal(raw, &extra); err != nil {
		return fmt.Errorf("locale: parse overrides: %w", err)
	}
	for k, v := range extra {
		b.labels[k] = v
	}
	return nil
}

// Label implements render.Labeler.
func (b *Bundle) Label(key string) string {
	if v, ok := b.labels[key]; ok {
		return v
	}
	return humanize(key)
}

func humanize(key string) string {
	segment := key
	if i := strings.LastIndex(key, "."); i >= 0 {
		segment = key[i+1:]
	}
	segment = strings.ReplaceAll(segment, "_", " ")
	if segment == "" {
		return key
	}
	return strings.ToUpper(segment[:1]) + segment[1:]
}
