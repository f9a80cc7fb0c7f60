package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "structools.log")

		logger, err := New(Config{Level: "info", OutputPaths: []string{path}})
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Named("service").Info("section created", zap.String("kind", "h_section"))
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		out := string(data)
		assert.Contains(t, out, `"message":"section created"`)
		assert.Contains(t, out, `"logger":"service"`)
		assert.Contains(t, out, `"kind":"h_section"`)
		assert.NotContains(t, out, "hidden")
	})

	t.Run("development", func(t *testing.T) {
		logger, err := New(Config{Level: "debug", Development: true, OutputPaths: []string{filepath.Join(t.TempDir(), "dev.log")}})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(Config{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestNopAndDefault(t *testing.T) {
	assert.NotNil(t, NewDefault())

	nop := Nop().With(zap.String("k", "v"))
	assert.False(t, nop.Core().Enabled(zap.ErrorLevel))
}
