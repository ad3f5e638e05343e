package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names read by ReadLoggerSettingsFromEnv and ReadMessengerSettingsFromEnv
const (
	EnvLogLevel   = "RSA_MESSENGER_LOG_LEVEL"
	EnvLogType    = "RSA_MESSENGER_LOG_TYPE"
	EnvLogFile    = "RSA_MESSENGER_LOG_FILE"
	EnvLogMaxSize = "RSA_MESSENGER_LOG_MAX_SIZE"
	EnvKeyBits    = "RSA_MESSENGER_KEY_BITS"
	EnvEncoding   = "RSA_MESSENGER_ENCODING"
)

// ReadLoggerSettingsFromEnv builds LoggerSettings from the environment.
// Unset variables fall back to console logging at info level.
func ReadLoggerSettingsFromEnv() (*LoggerSettings, error) {
	settings := DefaultLoggerSettings()

	if level := os.Getenv(EnvLogLevel); level != "" {
		settings.LogLevel = level
	}
	if logType := os.Getenv(EnvLogType); logType != "" {
		settings.LogType = logType
	}

	if settings.LogType == LogTypeFile {
		settings.FilePath = os.Getenv(EnvLogFile)
		settings.MaxSize = DefaultLogMaxSize
		settings.MaxBackups = DefaultLogMaxBackups
		settings.MaxAge = DefaultLogMaxAge

		if raw := os.Getenv(EnvLogMaxSize); raw != "" {
			maxSize, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", EnvLogMaxSize, err)
			}
			settings.MaxSize = maxSize
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// ReadMessengerSettingsFromEnv builds MessengerSettings from the environment on top of the defaults
func ReadMessengerSettingsFromEnv() (*MessengerSettings, error) {
	settings := DefaultMessengerSettings()

	if raw := os.Getenv(EnvKeyBits); raw != "" {
		keyBits, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvKeyBits, err)
		}
		settings.KeyBits = keyBits
	}
	if encoding := os.Getenv(EnvEncoding); encoding != "" {
		settings.Encoding = encoding
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
