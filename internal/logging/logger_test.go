package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/paveg/dataseries/internal/config"
	"github.com/paveg/dataseries/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfigLevels(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	quiet := logging.FromConfig(cfg, &buf)
	quiet.Debug("push", "key", 1)
	assert.Empty(t, buf.String())

	quiet.Warn("contract violation", "op", "Update")
	assert.Contains(t, buf.String(), "contract violation")

	buf.Reset()
	cfg.VerboseLogging = true
	verbose := logging.FromConfig(cfg, &buf)
	verbose.Debug("push", "key", 1)
	assert.Contains(t, buf.String(), "key=1")
}

func TestFromConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.LogFormat = config.LogFormatJSON

	logger := logging.FromConfig(cfg, &buf).WithSeries("prices")
	logger.Error("boom", "op", "Update")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "boom", record["msg"])
	assert.Equal(t, "prices", record["series"])
	assert.Equal(t, "Update", record["op"])
}

func TestNoopLogger(t *testing.T) {
	logger := logging.NoopLogger()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
