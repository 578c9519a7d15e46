// Package resolver turns requested field names into resource bindings.
package resolver

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/resbind/internal/catalog"
	"github.com/jokarl/resbind/internal/types"
)

// Resolve formats the binding for requestedName as "<name> <id>".
// Names other than "image" and "text" (exact match) fail with a *ResolutionError.
func Resolve(c *catalog.Catalog, requestedName string) (string, error) {
	_, value, err := resolve(c, requestedName)
	return value, err
}

func resolve(c *catalog.Catalog, requestedName string) (types.Field, string, error) {
	field, err := types.ParseField(requestedName)
	if err != nil {
		return field, "", unrecognized(requestedName)
	}
	return field, ResolveField(c, field), nil
}

// ResolveField formats the binding for an already validated field
func ResolveField(c *catalog.Catalog, field types.Field) string {
	return field.String() + " " + c.IDFor(field)
}

// Resolver resolves batches of names against a catalog
type Resolver struct {
	catalog *catalog.Catalog
	logger  hclog.Logger
}

// New creates a Resolver. A nil logger discards output.
func New(c *catalog.Catalog, logger hclog.Logger) *Resolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Resolver{
		catalog: c,
		logger:  logger.Named("resolver"),
	}
}

// Resolve resolves a single name
func (r *Resolver) Resolve(name string) (string, error) {
	_, value, err := r.resolve(name)
	return value, err
}

func (r *Resolver) resolve(name string) (types.Field, string, error) {
	field, value, err := resolve(r.catalog, name)
	if err != nil {
		r.logger.Debug("resolution failed", "name", name, "error", err)
		return field, "", err
	}
	r.logger.Debug("resolved", "name", name, "value", value)
	return field, value, nil
}

// ResolveAll resolves every name in order. Failures are recorded in the
// report and do not stop the remaining names from resolving.
func (r *Resolver) ResolveAll(names []string) *types.Report {
	report := &types.Report{Resolutions: make([]*types.Resolution, 0, len(names))}
	for _, name := range names {
		res := &types.Resolution{Name: name}
		field, value, err := r.resolve(name)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Field = &field
			res.Value = value
		}
		report.Add(res)
	}
	r.logger.Debug("batch resolved", "total", report.Summary.Total, "failed", report.Summary.Failed)
	return report
}
