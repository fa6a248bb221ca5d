package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config overrides the reader's defaults: the namespace bare symbols
// are qualified against in syntax-quote, and which dispatch macros are
// enabled (disabling #= and #< entirely is useful for untrusted input,
// even though both already reject at read time).
type Config struct {
	Namespace       string   `yaml:"namespace"`
	DisableDispatch []string `yaml:"disableDispatch"`
}

// defaultConfig is what cljread uses when --config is not given.
func defaultConfig() *Config {
	return &Config{Namespace: "user"}
}

// loadConfig reads and parses a YAML config file, per SPEC_FULL's
// ambient-config section. An empty path returns the default config.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
