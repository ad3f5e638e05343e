//go:build unit
// +build unit

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLoggerSettingsFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvLogType, "")

		settings, err := ReadLoggerSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, LogLevelInfo, settings.LogLevel)
		assert.Equal(t, LogTypeConsole, settings.LogType)
	})

	t.Run("debug console", func(t *testing.T) {
		t.Setenv(EnvLogLevel, LogLevelDebug)
		t.Setenv(EnvLogType, LogTypeConsole)

		settings, err := ReadLoggerSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, LogLevelDebug, settings.LogLevel)
	})

	t.Run("file logger gets rotation defaults", func(t *testing.T) {
		t.Setenv(EnvLogType, LogTypeFile)
		t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "messenger.log"))
		t.Setenv(EnvLogMaxSize, "")

		settings, err := ReadLoggerSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultLogMaxSize, settings.MaxSize)
		assert.Equal(t, DefaultLogMaxBackups, settings.MaxBackups)
		assert.Equal(t, DefaultLogMaxAge, settings.MaxAge)
	})

	t.Run("file logger without path", func(t *testing.T) {
		t.Setenv(EnvLogType, LogTypeFile)
		t.Setenv(EnvLogFile, "")

		_, err := ReadLoggerSettingsFromEnv()
		assert.Error(t, err)
	})

	t.Run("malformed max size", func(t *testing.T) {
		t.Setenv(EnvLogType, LogTypeFile)
		t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "messenger.log"))
		t.Setenv(EnvLogMaxSize, "ten")

		_, err := ReadLoggerSettingsFromEnv()
		assert.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv(EnvLogType, "")
		t.Setenv(EnvLogLevel, "verbose")

		_, err := ReadLoggerSettingsFromEnv()
		assert.Error(t, err)
	})
}

func TestReadMessengerSettingsFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvKeyBits, "")
		t.Setenv(EnvEncoding, "")

		settings, err := ReadMessengerSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 2048, settings.KeyBits)
		assert.Equal(t, EncodingNarrow, settings.Encoding)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv(EnvKeyBits, "1024")
		t.Setenv(EnvEncoding, EncodingWide)

		settings, err := ReadMessengerSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 1024, settings.KeyBits)
		assert.Equal(t, EncodingWide, settings.Encoding)
	})

	t.Run("malformed key bits", func(t *testing.T) {
		t.Setenv(EnvKeyBits, "big")

		_, err := ReadMessengerSettingsFromEnv()
		assert.Error(t, err)
	})

	t.Run("unsupported key bits", func(t *testing.T) {
		t.Setenv(EnvKeyBits, "100")

		_, err := ReadMessengerSettingsFromEnv()
		assert.Error(t, err)
	})
}
