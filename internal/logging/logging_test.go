package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromString(tt.input), tt.input)
	}
}

func TestSetupStderrOnly(t *testing.T) {
	logger, cleanup, err := Setup(DefaultConfig())
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, logger)
}

func TestSetupFileLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docquery.log")

	cfg := DefaultConfig()
	cfg.FilePath = path
	cfg.Format = "json"
	cfg.WriteToStderr = false

	logger, cleanup, err := Setup(cfg)
	require.NoError(t, err)

	logger.Info("analyze_complete", "documents", 3)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "analyze_complete", entry["msg"])
	assert.EqualValues(t, 3, entry["documents"])
}

func TestSetupRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docquery.log")

	cfg := DefaultConfig()
	cfg.FilePath = path
	cfg.Level = "error"
	cfg.WriteToStderr = false

	logger, cleanup, err := Setup(cfg)
	require.NoError(t, err)

	logger.Info("suppressed")
	logger.Error("kept")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "kept")
}

func TestRotatingWriterRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docquery.log")

	// 1MB cap; write past it to force a rotation.
	w, err := NewRotatingWriter(path, 1, 3)
	require.NoError(t, err)
	defer w.Close()

	chunk := bytes.Repeat([]byte("docquery log line\n"), 4096)
	for i := 0; i < 20; i++ {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}
	require.NoError(t, w.Sync())

	_, err = os.Stat(path + ".1")
	assert.NoError(t, err, "expected a rotated file")
}

func TestRotatingWriterKeepsMaxFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docquery.log")

	w, err := NewRotatingWriter(path, 1, 2)
	require.NoError(t, err)
	defer w.Close()

	chunk := bytes.Repeat([]byte("x"), 256*1024)
	for i := 0; i < 30; i++ {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}

	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(matches), 2, "rotated files beyond the cap should be deleted")
}

func TestDefaultLogPath(t *testing.T) {
	path := DefaultLogPath()
	assert.True(t, strings.HasSuffix(path, filepath.Join("logs", "docquery.log")), path)
}
