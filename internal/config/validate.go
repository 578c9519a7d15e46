package config

import "fmt"

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Catalog != nil {
		if cfg.Catalog.Image != nil && *cfg.Catalog.Image == "" {
			return fmt.Errorf("catalog image id must not be empty")
		}
		if cfg.Catalog.Text != nil && *cfg.Catalog.Text == "" {
			return fmt.Errorf("catalog text id must not be empty")
		}
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", cfg.Output.Format)
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Fields != nil {
		if err := cfg.FieldFilter().Validate(); err != nil {
			return err
		}
	}

	return nil
}
