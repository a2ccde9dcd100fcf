package logging

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesToRunFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	logger, err := NewLogger("test-component")
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof("hello %s", "world")
	logger.Errorf("boom")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logger.LogPath())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[test-component] [INFO] hello world")
	assert.Contains(t, content, "[test-component] [ERROR] boom")
}

func TestLoggersShareRunID(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	a, _ := NewLogger("a")
	defer a.Close()
	b, _ := NewLogger("b")
	defer b.Close()

	assert.Equal(t, a.RunID(), b.RunID())
	assert.True(t, strings.HasSuffix(a.LogPath(), "-architect.log") || a.LogPath() == "")
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	logger, _ := NewLogger("close")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
}
