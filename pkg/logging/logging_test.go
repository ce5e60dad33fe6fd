package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wordstorm/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, stateDir)

			var console bytes.Buffer
			SetupLoggerWithOutput(tt.verbosity, &console)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(stateDir, paths.LogFileName)
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogger(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())

	var console bytes.Buffer
	SetupLoggerWithOutput(1, &console)
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	logger := GetLogger("collector")
	logger.Info().Msg("phase started")

	assert.Contains(t, console.String(), "phase started")
	assert.Contains(t, console.String(), "collector")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	done := LogOperationStart(logger, "generate")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "generate")
}

func TestSetupLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "wordstorm.log")

	f, err := setupLogFile(logPath)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = os.Stat(logPath)
	assert.NoError(t, err)
}
