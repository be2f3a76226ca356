package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var buf bytes.Buffer
	Init(Options{Enabled: false, Out: &buf})
	Error("dropped")
	assert.Zero(t, buf.Len())
}

func TestInit_Text(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var buf bytes.Buffer
	Init(Options{Enabled: true, Out: &buf})
	Debug("below level")
	Info("hello", "n", 3)
	assert.NotContains(t, buf.String(), "below level")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "n=3")
}

func TestInit_JSON(t *testing.T) {
	t.Cleanup(func() { Init(Options{}) })

	var buf bytes.Buffer
	Init(Options{Enabled: true, Out: &buf, Level: slog.LevelDebug, JSON: true})
	Debug("probe", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "probe", rec["msg"])
	assert.Equal(t, "v", rec["k"])
	assert.Equal(t, "DEBUG", rec["level"])
}
