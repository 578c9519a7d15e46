// Package config handles loading and validating resbind configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/jokarl/resbind/internal/catalog"
	"github.com/jokarl/resbind/internal/fieldfilter"
)

// FileName is the configuration file searched for in the working directory
const FileName = ".resbind.hcl"

// Config represents the resbind configuration
type Config struct {
	Version int            `hcl:"version,attr"`
	Catalog *CatalogConfig `hcl:"catalog,block"`
	Fields  *FieldsConfig  `hcl:"fields,block"`
	Output  *OutputConfig  `hcl:"output,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// CatalogConfig overrides the resource identifiers. A nil id means the
// attribute was not set; an empty string is rejected by Validate.
type CatalogConfig struct {
	Image *string `hcl:"image,optional"`
	Text  *string `hcl:"text,optional"`
}

// ImageID returns the configured image id, or empty if unset
func (c *CatalogConfig) ImageID() string {
	if c == nil || c.Image == nil {
		return ""
	}
	return *c.Image
}

// TextID returns the configured text id, or empty if unset
func (c *CatalogConfig) TextID() string {
	if c == nil || c.Text == nil {
		return ""
	}
	return *c.Text
}

// FieldsConfig selects which fields are bound
type FieldsConfig struct {
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// BuildCatalog returns the catalog described by the configuration
func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	if c.Catalog == nil {
		return catalog.New(), nil
	}
	return catalog.NewWithIDs(c.Catalog.ImageID(), c.Catalog.TextID())
}

// FieldFilter returns the configured field filter
func (c *Config) FieldFilter() *fieldfilter.Filter {
	if c.Fields == nil {
		d := Default().Fields
		return fieldfilter.New(d.Include, d.Exclude)
	}
	return fieldfilter.New(c.Fields.Include, c.Fields.Exclude)
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .resbind.hcl in cwd.
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile looks for .resbind.hcl in the current directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	cwdPath := filepath.Join(cwd, FileName)
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalContext(), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// evalContext exposes the default identifiers to config expressions as
// defaults.image and defaults.text
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"image": cty.StringVal(catalog.DefaultImageID),
				"text":  cty.StringVal(catalog.DefaultTextID),
			}),
		},
	}
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Catalog == nil {
		cfg.Catalog = defaults.Catalog
	} else {
		if cfg.Catalog.Image == nil {
			cfg.Catalog.Image = defaults.Catalog.Image
		}
		if cfg.Catalog.Text == nil {
			cfg.Catalog.Text = defaults.Catalog.Text
		}
	}

	if cfg.Fields == nil {
		cfg.Fields = defaults.Fields
	} else if len(cfg.Fields.Include) == 0 {
		cfg.Fields.Include = defaults.Fields.Include
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}
}
