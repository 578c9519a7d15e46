package config

import "github.com/jokarl/resbind/internal/catalog"

// Default returns the default configuration
func Default() *Config {
	imageID := catalog.DefaultImageID
	textID := catalog.DefaultTextID
	return &Config{
		Version: 1,
		Catalog: &CatalogConfig{
			Image: &imageID,
			Text:  &textID,
		},
		Fields: &FieldsConfig{
			Include: []string{"*"},
			Exclude: []string{},
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// DefaultConfigHCL returns a documented starter configuration
func DefaultConfigHCL() string {
	return `# resbind configuration
version = 1

# Resource identifiers bound to each field.
# defaults.image and defaults.text hold the built-in values.
catalog {
  image = defaults.image
  text  = defaults.text
}

# Fields to bind, as glob patterns over field names.
fields {
  include = ["*"]
  exclude = []
}

output {
  # text or json
  format = "text"
  # auto, always or never
  color = "auto"
}
`
}
