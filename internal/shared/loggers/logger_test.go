package loggers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	assert.Empty(t, buf.String(), "info should be filtered at warn level")

	logger.Warn().Str(FieldComponent, "test").Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "test", line[FieldComponent])
	assert.Equal(t, "kept", line["message"])
	assert.Contains(t, line, "time")
	assert.Contains(t, line, "caller")
}

func TestNewWithWriter_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewWithWriter("loud", &buf)
	assert.Error(t, err)
}
