package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Format: FormatJSON, Writer: &buf})
	L().Info("converted", "src", "a.png", "width", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "converted", rec["msg"])
	assert.Equal(t, "a.png", rec["src"])
	assert.EqualValues(t, 3, rec["width"])
	assert.NotContains(t, rec, "source")
}

func TestSetupLevels(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Writer: &buf})
	L().Debug("hidden")
	assert.Empty(t, buf.String())

	Setup(Config{Debug: true, Writer: &buf})
	L().Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
