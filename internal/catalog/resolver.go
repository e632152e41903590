package catalog

import (
	"strings"
	"unicode"

	"github.com/julialegal/brujula/internal/signal"
)

// NormalizeKey canonicalizes a template key or rule label for matching:
// diacritics stripped, every non-alphanumeric run replaced by a single
// space, whitespace collapsed, uppercased. Rule branches are hand-authored
// against an evolving catalog, so "REAGRUPACIÓN FAMILIAR " and
// "reagrupacion familiar" must compare equal.
func NormalizeKey(key string) string {
	folded := signal.Fold(key)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.ToUpper(signal.CollapseSpaces(b.String()))
}

// Resolve maps an ordered list of hand-authored labels onto real catalog
// keys: exact normalized match first, containment fallback second,
// unresolvable labels silently dropped, duplicates removed by normalized
// equality keeping the first occurrence. The emitted keys carry the
// catalog's original casing and spacing.
func (c *Catalog) Resolve(labels []string) []string {
	resolved := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))

	emit := func(idx int) {
		norm := NormalizeKey(c.templates[idx].Key)
		if _, dup := seen[norm]; dup {
			return
		}
		seen[norm] = struct{}{}
		resolved = append(resolved, c.templates[idx].Key)
	}

	for _, label := range labels {
		norm := NormalizeKey(label)
		if norm == "" {
			continue
		}
		if idx, ok := c.byNorm[norm]; ok {
			emit(idx)
			continue
		}
		// Containment fallback: a clerical mismatch (pluralization, extra
		// qualifier) must not erase a whole branch's recommendations. First
		// match in catalog iteration order wins.
		for idx := range c.templates {
			keyNorm := NormalizeKey(c.templates[idx].Key)
			if strings.Contains(keyNorm, norm) || strings.Contains(norm, keyNorm) {
				emit(idx)
				break
			}
		}
	}
	return resolved
}
