package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-messenger/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-messenger/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/config"
	"github.com/MGTheTrain/rsa-messenger/internal/pkg/logger"
)

// MessengerCommandHandler encapsulates logic for handling key and message operations via CLI.
type MessengerCommandHandler struct {
	generator cryptoalg.KeyGenerator
	codec     cryptoalg.TextCodec
	settings  *config.MessengerSettings
	logger    logger.Logger
}

// NewMessengerCommandHandler initializes a MessengerCommandHandler from the environment
func NewMessengerCommandHandler() (*MessengerCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings, err := config.ReadMessengerSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read messenger settings: %w", err)
	}

	primes, err := cryptography.NewPrimeSource(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime source: %w", err)
	}

	generator, err := cryptography.NewKeyGenerator(primes, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	return &MessengerCommandHandler{
		generator: generator,
		codec:     cryptography.NewTextCodec(),
		settings:  settings,
		logger:    loggerInstance,
	}, nil
}
