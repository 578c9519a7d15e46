// Package catalog holds the resource identifiers that consumer fields bind to.
package catalog

import (
	"errors"

	"github.com/jokarl/resbind/internal/types"
)

// Default resource identifiers
const (
	DefaultImageID = "101"
	DefaultTextID  = "102"
)

// ErrEmptyID is returned when a catalog would be built with an empty identifier
var ErrEmptyID = errors.New("catalog: resource id must not be empty")

// Catalog is an immutable set of resource identifiers, one per field.
// The zero value is not usable; construct with New or NewWithIDs.
type Catalog struct {
	imageID string
	textID  string
}

// Entry pairs a field with its resource identifier
type Entry struct {
	Field types.Field
	ID    string
}

// New returns a catalog with the default identifiers
func New() *Catalog {
	return &Catalog{
		imageID: DefaultImageID,
		textID:  DefaultTextID,
	}
}

// NewWithIDs returns a catalog with the given identifiers.
// Both identifiers must be non-empty.
func NewWithIDs(imageID, textID string) (*Catalog, error) {
	if imageID == "" || textID == "" {
		return nil, ErrEmptyID
	}
	return &Catalog{
		imageID: imageID,
		textID:  textID,
	}, nil
}

// ImageID returns the image resource identifier
func (c *Catalog) ImageID() string {
	return c.imageID
}

// TextID returns the text resource identifier
func (c *Catalog) TextID() string {
	return c.textID
}

// IDFor returns the identifier bound to field, or empty for an unknown field
func (c *Catalog) IDFor(field types.Field) string {
	switch field {
	case types.FieldImage:
		return c.imageID
	case types.FieldText:
		return c.textID
	default:
		return ""
	}
}

// Entries returns every field with its identifier, in field declaration order
func (c *Catalog) Entries() []Entry {
	fields := types.Fields()
	entries := make([]Entry, 0, len(fields))
	for _, f := range fields {
		entries = append(entries, Entry{Field: f, ID: c.IDFor(f)})
	}
	return entries
}
