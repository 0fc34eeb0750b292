package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	Component(log, "wallet").WithField("owner_id", "abc").Info("investment added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "wallet", entry["component"])
	assert.Equal(t, "abc", entry["owner_id"])
	assert.Equal(t, "investment added", entry["msg"])
}

func TestNew_Defaults(t *testing.T) {
	log := New(Config{Level: "verbose"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestComponent_NilLogger(t *testing.T) {
	entry := Component(nil, "x")
	assert.NotPanics(t, func() { entry.Info("dropped") })
}
