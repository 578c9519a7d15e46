// Package binding binds consumer fields to catalog resources.
package binding

import (
	"github.com/jokarl/resbind/internal/catalog"
	"github.com/jokarl/resbind/internal/resolver"
)

// UI is a consumer with an image field and a text field
type UI struct {
	Image string
	Text  string
}

// Bind resolves both fields eagerly, image first.
// The first resolution error is returned as is.
func Bind(c *catalog.Catalog) (*UI, error) {
	image, err := resolver.Resolve(c, "image")
	if err != nil {
		return nil, err
	}
	text, err := resolver.Resolve(c, "text")
	if err != nil {
		return nil, err
	}
	return &UI{Image: image, Text: text}, nil
}

// Lines returns the bound values in field order
func (u *UI) Lines() []string {
	return []string{u.Image, u.Text}
}

// Bound is an ordered set of field bindings keyed by field name
type Bound struct {
	names  []string
	values map[string]string
}

// BindFields resolves names in order, stopping at the first failure
func BindFields(c *catalog.Catalog, names []string) (*Bound, error) {
	b := &Bound{
		names:  make([]string, 0, len(names)),
		values: make(map[string]string, len(names)),
	}
	for _, name := range names {
		value, err := resolver.Resolve(c, name)
		if err != nil {
			return nil, err
		}
		if _, dup := b.values[name]; !dup {
			b.names = append(b.names, name)
		}
		b.values[name] = value
	}
	return b, nil
}

// Get returns the value bound to name
func (b *Bound) Get(name string) (string, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Lines returns the bound values in binding order
func (b *Bound) Lines() []string {
	lines := make([]string, 0, len(b.names))
	for _, name := range b.names {
		lines = append(lines, b.values[name])
	}
	return lines
}
