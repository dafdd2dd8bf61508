package obs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "info")

	l.Debug().Msg("hidden")
	require.Zero(t, buf.Len())

	l.Info().Int("items", 5).Msg("run_started")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "run_started", line["message"])
	require.Equal(t, "info", line["level"])
	require.EqualValues(t, 5, line["items"])
	require.Contains(t, line, "time")

	id, ok := line["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestNewLogger_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "chatty")

	l.Info().Msg("hidden")
	require.Zero(t, buf.Len())
	l.Warn().Msg("shown")
	require.NotZero(t, buf.Len())
}
