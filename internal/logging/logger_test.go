package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn", true)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Warn().Str("cmd", "npm install").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "npm install")
}

func TestNew_EmptyLevelDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "", true)
	require.NoError(t, err)

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
