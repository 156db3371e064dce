package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Validation ValidationConfig `yaml:"validation,omitempty"`
	MQTT       MQTTConfig       `yaml:"mqtt,omitempty"`
	ReportDir  string           `yaml:"report_dir,omitempty"` // Directory for validation reports (fallback: ".")
}

// ValidationConfig holds default thresholds for the validation engine
type ValidationConfig struct {
	MinValue       float64 `yaml:"min_value,omitempty"`       // Minimum acceptable numeric value (default: 0.0)
	MaxValue       float64 `yaml:"max_value,omitempty"`       // Maximum acceptable numeric value (default: 1e9)
	DateFormat     string  `yaml:"date_format,omitempty"`     // Go time layout, e.g. "2006-01-02" (auto-detected if empty)
	DropDuplicates bool    `yaml:"drop_duplicates,omitempty"` // Exclude duplicate rows from rows_processed
}

// MQTTConfig holds MQTT broker configuration for publishing run summaries
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // e.g., "localhost:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // e.g., "urbancomply" (default)
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetMinValue returns the minimum value threshold (default 0.0)
func (c *Config) GetMinValue() float64 {
	return c.Validation.MinValue
}

// GetMaxValue returns the maximum value threshold with a default of 1e9
func (c *Config) GetMaxValue() float64 {
	if c.Validation.MaxValue <= 0 {
		return 1e9
	}
	return c.Validation.MaxValue
}

// GetDateFormat returns the configured date layout, or "" for auto-detection
func (c *Config) GetDateFormat() string {
	return c.Validation.DateFormat
}

// GetReportDir returns the report output directory, falling back to the
// current directory
func (c *Config) GetReportDir() string {
	if c.ReportDir == "" {
		return "."
	}
	return c.ReportDir
}

// GetTopicPrefix returns the MQTT topic prefix with a default of "urbancomply"
func (c *Config) GetTopicPrefix() string {
	if c.MQTT.TopicPrefix == "" {
		return "urbancomply"
	}
	return c.MQTT.TopicPrefix
}
