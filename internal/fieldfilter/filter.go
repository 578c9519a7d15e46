// Package fieldfilter selects field names using doublestar glob patterns.
package fieldfilter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns for field selection
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// Validate checks that every pattern is well formed
func (f *Filter) Validate() error {
	for _, p := range append(append([]string{}, f.include...), f.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid field pattern: %q", p)
		}
	}
	return nil
}

// Select returns the names that match an include pattern and no exclude
// pattern, preserving input order.
func (f *Filter) Select(names []string) ([]string, error) {
	var result []string
	for _, name := range names {
		ok, err := f.Match(name)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, name)
		}
	}
	return result, nil
}

// Match reports whether a single name passes the filter
func (f *Filter) Match(name string) (bool, error) {
	included, err := f.matchesAny(f.include, name)
	if err != nil || !included {
		return false, err
	}
	excluded, err := f.matchesAny(f.exclude, name)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

func (f *Filter) matchesAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
