// Package catalog holds the read-only template catalog and the label
// resolver that maps hand-authored rule labels onto authoritative keys.
package catalog

import (
	"fmt"
	"strings"

	"github.com/julialegal/brujula/internal/common"
	"github.com/julialegal/brujula/internal/model"
)

// Catalog is the in-memory template catalog. It is constructed once at
// startup, injected into consumers and never mutated afterwards, so it is
// safe for concurrent reads without locking.
type Catalog struct {
	templates []model.Template
	byNorm    map[string]int // normalized key -> index into templates
	keys      []string
}

// New builds a catalog from parsed template records. Records with duplicate
// normalized keys keep the first occurrence; records without a key are
// rejected upstream by the loader. An empty catalog is a startup error, not
// something classification should ever see.
func New(templates []model.Template) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, common.ErrCatalogEmpty
	}

	c := &Catalog{
		templates: make([]model.Template, 0, len(templates)),
		byNorm:    make(map[string]int, len(templates)),
		keys:      make([]string, 0, len(templates)),
	}
	for _, t := range templates {
		norm := NormalizeKey(t.Key)
		if norm == "" {
			return nil, fmt.Errorf("template with empty key (description %q)", t.Description)
		}
		if _, dup := c.byNorm[norm]; dup {
			continue
		}
		c.byNorm[norm] = len(c.templates)
		c.templates = append(c.templates, t)
		c.keys = append(c.keys, t.Key)
	}
	return c, nil
}

// Keys returns the ordered unique template keys. The returned slice is a
// copy; callers may reorder it freely.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Lookup finds a template by key, case and diacritic insensitively.
func (c *Catalog) Lookup(key string) (model.Template, bool) {
	idx, ok := c.byNorm[NormalizeKey(key)]
	if !ok {
		return model.Template{}, false
	}
	return c.templates[idx], true
}

// Description returns the human description for a key, or "" if unknown.
func (c *Catalog) Description(key string) string {
	t, ok := c.Lookup(key)
	if !ok {
		return ""
	}
	return t.Description
}

// Summary renders the "- KEY: description" listing fed to the generative
// collaborator's prompt.
func (c *Catalog) Summary() string {
	var b strings.Builder
	for _, t := range c.templates {
		fmt.Fprintf(&b, "- %s: %s\n", t.Key, t.Description)
	}
	return b.String()
}
