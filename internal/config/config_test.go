package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paveg/dataseries/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	config := config.NewConfig()

	assert.Equal(t, 16, config.InitialCapacity)
	assert.True(t, config.StableSort)
	assert.False(t, config.QualifiedTypeNames)
	assert.False(t, config.VerboseLogging)
	assert.Equal(t, "text", config.LogFormat)
	assert.False(t, config.MetricsCollection)
}

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name          string
		config        config.Config
		expectedError string
	}{
		{
			name:          "valid config",
			config:        config.Config{InitialCapacity: 8, LogFormat: "json"},
			expectedError: "",
		},
		{
			name:          "negative capacity",
			config:        config.Config{InitialCapacity: -1, LogFormat: "text"},
			expectedError: "InitialCapacity must be non-negative, got -1",
		},
		{
			name:          "unknown log format",
			config:        config.Config{LogFormat: "xml"},
			expectedError: `LogFormat must be "text" or "json", got "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			}
		})
	}
}

func TestConfig_LoadFromJSON(t *testing.T) {
	jsonData := `{"initial_capacity": 64, "verbose_logging": true}`

	config, err := config.LoadFromJSON([]byte(jsonData))
	require.NoError(t, err)

	assert.Equal(t, 64, config.InitialCapacity)
	assert.True(t, config.VerboseLogging)
	// Fields absent from the document keep their defaults.
	assert.True(t, config.StableSort)
	assert.Equal(t, "text", config.LogFormat)
}

func TestConfig_InvalidJSON(t *testing.T) {
	_, err := config.LoadFromJSON([]byte(`{"initial_capacity": "many"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON configuration")
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series.json")

	data, err := json.Marshal(config.Config{InitialCapacity: 128, StableSort: false, LogFormat: "json"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 128, loaded.InitialCapacity)
	assert.False(t, loaded.StableSort)
	assert.Equal(t, "json", loaded.LogFormat)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.yaml")
	yamlData := `
initial_capacity: 32
stable_sort: false
qualified_type_names: true
metrics_collection: true
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))

	loaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 32, loaded.InitialCapacity)
	assert.False(t, loaded.StableSort)
	assert.True(t, loaded.QualifiedTypeNames)
	assert.True(t, loaded.MetricsCollection)
	assert.Equal(t, "text", loaded.LogFormat)
}

func TestConfig_UnsupportedFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))

	_, err := config.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format: .toml")
}

func TestConfig_LoadFromNonExistentFile(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("DATASERIES_INITIAL_CAPACITY", "256")
	t.Setenv("DATASERIES_STABLE_SORT", "false")
	t.Setenv("DATASERIES_LOG_FORMAT", "JSON")
	t.Setenv("DATASERIES_METRICS_COLLECTION", "true")

	config := config.LoadFromEnv()
	assert.Equal(t, 256, config.InitialCapacity)
	assert.False(t, config.StableSort)
	assert.Equal(t, "json", config.LogFormat)
	assert.True(t, config.MetricsCollection)
}

func TestConfig_EnvironmentVariableParsing(t *testing.T) {
	t.Setenv("DATASERIES_INITIAL_CAPACITY", "invalid_number")
	t.Setenv("DATASERIES_VERBOSE_LOGGING", "invalid_bool")

	config := config.LoadFromEnv()
	assert.Equal(t, 16, config.InitialCapacity)
	assert.False(t, config.VerboseLogging)
}

func TestConfig_WithDefaults(t *testing.T) {
	partial := config.Config{StableSort: true}
	filled := partial.WithDefaults()

	assert.Equal(t, 16, filled.InitialCapacity)
	assert.Equal(t, "text", filled.LogFormat)
	assert.True(t, filled.StableSort)
}

func TestGlobalConfig_SetAndGet(t *testing.T) {
	original := config.GetGlobalConfig()
	t.Cleanup(func() { config.SetGlobalConfig(original) })

	custom := config.NewConfig()
	custom.InitialCapacity = 4
	config.SetGlobalConfig(custom)

	assert.Equal(t, 4, config.GetGlobalConfig().InitialCapacity)
}

func TestConfig_ValidationRecommendations(t *testing.T) {
	validator := config.NewConfigValidator()

	cfg := config.NewConfig()
	cfg.InitialCapacity = 0
	cfg.MetricsCollection = true
	cfg.VerboseLogging = true

	validated, warnings, err := validator.Validate(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultInitialCapacity, validated.InitialCapacity)
	assert.Len(t, warnings, 2)

	cfg = config.NewConfig()
	cfg.InitialCapacity = 1 << 21
	_, warnings, err = validator.Validate(cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "exceeds")

	cfg.LogFormat = "xml"
	_, _, err = validator.Validate(cfg)
	assert.Error(t, err)
}
