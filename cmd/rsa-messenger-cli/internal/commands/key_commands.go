package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-messenger/internal/app"

	"github.com/spf13/cobra"
)

// GenerateKeysCmd generates a key triple and prints it as decimal integers
func (commandHandler *MessengerCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	receiver, err := app.NewReceiver(commandHandler.generator, keySize, commandHandler.codec, commandHandler.logger)
	if err != nil {
		return err
	}

	keyPair := receiver.KeyPair()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id: %s\n", receiver.ID())
	fmt.Fprintf(out, "n: %s\n", keyPair.Modulus())
	fmt.Fprintf(out, "e: %s\n", keyPair.PublicExponent())
	fmt.Fprintf(out, "d: %s\n", keyPair.PrivateExponent())

	commandHandler.logger.Info("Generated key pair ", receiver.ID())
	return nil
}

func (commandHandler *MessengerCommandHandler) registerKeyCommands(rootCmd *cobra.Command) {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key triple (n, e, d)",
		RunE:  commandHandler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", commandHandler.settings.KeyBits, "Approximate modulus size in bits")
	rootCmd.AddCommand(generateKeysCmd)
}
