// Package config provides configuration management for Series operations
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for Series operations
type Config struct {
	// Storage Configuration
	InitialCapacity int `json:"initial_capacity" yaml:"initial_capacity"` // Pre-sized entries for new series

	// Ordering Configuration
	StableSort bool `json:"stable_sort" yaml:"stable_sort"` // Keep insertion order among equal labels when sorting

	// Rendering Configuration
	QualifiedTypeNames bool `json:"qualified_type_names" yaml:"qualified_type_names"` // Print full import paths for named types

	// Debugging Configuration
	VerboseLogging    bool   `json:"verbose_logging" yaml:"verbose_logging"`       // Enable debug logging of mutations
	LogFormat         string `json:"log_format" yaml:"log_format"`                 // "text" or "json"
	MetricsCollection bool   `json:"metrics_collection" yaml:"metrics_collection"` // Enable metrics collection
}

// ConfigValidator validates and provides recommendations for configuration
type ConfigValidator struct {
	maxCapacity int
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultInitialCapacity = 16
	DefaultLogFormat       = LogFormatText

	LogFormatText = "text"
	LogFormatJSON = "json"

	// capacityWarningThreshold flags capacities that pre-allocate large maps
	capacityWarningThreshold = 1 << 20
)

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,

		StableSort: true,

		QualifiedTypeNames: false,

		// Debugging defaults (disabled)
		VerboseLogging:    false,
		LogFormat:         DefaultLogFormat,
		MetricsCollection: false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("InitialCapacity must be non-negative, got %d", c.InitialCapacity)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("LogFormat must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}

	return nil
}

// WithDefaults returns a new configuration with default values filled in for zero values
func (c Config) WithDefaults() Config {
	defaults := NewConfig()

	if c.InitialCapacity == 0 {
		c.InitialCapacity = defaults.InitialCapacity
	}
	if c.LogFormat == "" {
		c.LogFormat = defaults.LogFormat
	}

	// Note: Boolean fields are intentionally not set to defaults here
	// This allows distinguishing between explicitly set false and unset values
	// Loaders start from NewConfig() so unset booleans keep their defaults

	return c
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// LoadFromJSON loads configuration from JSON data
func LoadFromJSON(data []byte) (Config, error) {
	config := NewConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a file (supports JSON and YAML)
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	config := NewConfig()
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config.WithDefaults(), nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() Config {
	config := NewConfig()

	if val := os.Getenv("DATASERIES_INITIAL_CAPACITY"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.InitialCapacity = parsed
		}
	}

	if val := os.Getenv("DATASERIES_STABLE_SORT"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.StableSort = parsed
		}
	}

	if val := os.Getenv("DATASERIES_QUALIFIED_TYPE_NAMES"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.QualifiedTypeNames = parsed
		}
	}

	if val := os.Getenv("DATASERIES_VERBOSE_LOGGING"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.VerboseLogging = parsed
		}
	}

	if val := os.Getenv("DATASERIES_LOG_FORMAT"); val != "" {
		config.LogFormat = strings.ToLower(val)
	}

	if val := os.Getenv("DATASERIES_METRICS_COLLECTION"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.MetricsCollection = parsed
		}
	}

	return config
}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		maxCapacity: capacityWarningThreshold,
	}
}

// Validate validates a configuration and provides recommendations
func (cv *ConfigValidator) Validate(config Config) (Config, []string, error) {
	var warnings []string
	validated := config

	// Basic validation
	if err := config.Validate(); err != nil {
		return Config{}, warnings, err
	}

	if config.InitialCapacity > cv.maxCapacity {
		warnings = append(warnings,
			fmt.Sprintf("Initial capacity (%d) exceeds %d, every new series pre-allocates its maps",
				config.InitialCapacity, cv.maxCapacity))
	}

	if config.MetricsCollection && config.VerboseLogging {
		warnings = append(warnings,
			"Metrics collection and verbose logging both enabled, per-operation overhead is significant")
	}

	// Auto-adjust unset values
	if config.InitialCapacity == 0 {
		validated.InitialCapacity = DefaultInitialCapacity
		warnings = append(warnings,
			fmt.Sprintf("Auto-setting initial capacity to %d", validated.InitialCapacity))
	}

	return validated, warnings, nil
}
