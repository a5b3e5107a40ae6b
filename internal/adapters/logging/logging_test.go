package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  logrus.Level
	}{
		{level: "", want: logrus.InfoLevel},
		{level: "debug", want: logrus.DebugLevel},
		{level: "WARN", want: logrus.WarnLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger, err := New(Options{Level: tt.level, Output: &bytes.Buffer{}})

			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestAutoFormatIsJSONOffTerminal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger, err := New(Options{Format: FormatAuto, Output: &out})
	require.NoError(t, err)

	logger.WithField("stage", "Flags").Info("stage changed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "Flags", line["stage"])
	assert.Equal(t, "stage changed", line["msg"])
}

func TestTextFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger, err := New(Options{Format: FormatText, Output: &out})
	require.NoError(t, err)

	logger.Info("hello")

	assert.Contains(t, out.String(), `msg=hello`)
}
