package config

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level" json:"level"`
	Structured       bool              `yaml:"structured" json:"structured"`
	StructuredFormat string            `yaml:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields,omitempty" json:"extra_fields,omitempty"`
}

// APIConfig contains settings for the HTTP inspection service.
//
// APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	APIKey string `yaml:"api_key,omitempty" json:"-"`

	// MaxBodyBytes caps request bodies on the header endpoints.
	MaxBodyBytes int64 `yaml:"max_body_bytes" json:"max_body_bytes"`
}

// Config is the root configuration structure.
type Config struct {
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	API     APIConfig     `yaml:"api" json:"api"`
}
