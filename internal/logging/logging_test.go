package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", "json")
	require.NoError(t, err)

	log.Debug("hidden")
	log.WithField("product_id", 3).Info("cached")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cached", line["msg"])
	assert.Equal(t, float64(3), line["product_id"])
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)
	_, err = New(&bytes.Buffer{}, "warn", "xml")
	assert.Error(t, err)

	log, err := New(&bytes.Buffer{}, "WARN", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}
