package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Release(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv(LevelEnv, "")

	var buf bytes.Buffer
	l := New(&buf)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	Component(l, "collector").Info("started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "started", entry["msg"])
	assert.Equal(t, "collector", entry["component"])
}

func TestNew_Debug(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv(LevelEnv, "")

	var buf bytes.Buffer
	l := New(&buf)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_LevelOverride(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv(LevelEnv, "warn")

	var buf bytes.Buffer
	l := New(&buf)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_UnknownLevel(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv(LevelEnv, "loud")

	var buf bytes.Buffer
	l := New(&buf)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}
