package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestJSONLogger_MergesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "medtracker", Writer: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"request_id": "r-1"}).Info("dose recorded", map[string]any{
		"medication_id": "med-1",
		"":              "ignored",
	})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "dose recorded", entry["message"])
	assert.Equal(t, "medtracker", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "med-1", entry["medication_id"])
	assert.NotContains(t, entry, "")
}
