package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dayboard/internal/config"
)

func TestBuild_DebugModeWritesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, build(config.LoggingConfig{
		DebugMode: true,
		Level:     "debug",
		Dir:       dir,
	}))

	Get(CategoryAuth).Info("sign-in attempted", zap.String("kind", "anonymous"))
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "dayboard.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "sign-in attempted"))
	assert.True(t, strings.Contains(string(data), `"auth"`))
}

func TestBuild_ProductionModeCreatesNoDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, build(config.LoggingConfig{
		DebugMode: false,
		Dir:       dir,
	}))

	Get(CategoryShell).Info("should be discarded")

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestBuild_InvalidLevel(t *testing.T) {
	err := build(config.LoggingConfig{DebugMode: true, Level: "loud", Dir: t.TempDir()})
	assert.Error(t, err)
}

func TestGet_SameLoggerPerCategory(t *testing.T) {
	require.NoError(t, build(config.LoggingConfig{DebugMode: true, Dir: t.TempDir()}))

	a := Get(CategoryBoot)
	b := Get(CategoryBoot)
	assert.Same(t, a, b)
}
