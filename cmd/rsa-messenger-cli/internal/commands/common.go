package commands

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/config"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings, err := config.ReadLoggerSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read logger settings: %w", err)
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// InitCommands registers every rsa-messenger command with the root command
func InitCommands(rootCmd *cobra.Command) error {
	handler, err := NewMessengerCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create messenger command handler: %w", err)
	}

	handler.registerKeyCommands(rootCmd)
	handler.registerMessageCommands(rootCmd)
	return nil
}

// bigIntFlag parses a decimal integer flag
func bigIntFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("invalid %s flag: %q is not a decimal integer", name, raw)
	}
	return value, nil
}

func encodingFlag(cmd *cobra.Command) (cryptoalg.Encoding, error) {
	name, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return cryptoalg.Encoding{}, fmt.Errorf("invalid encoding flag: %w", err)
	}
	return cryptoalg.EncodingByName(name)
}
