// Package main is the entry point for the rsa-messenger-cli application.
// It initializes the root command, registers the key and message sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/rsa-messenger/cmd/rsa-messenger-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := newRootCmd()

	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rsa-messenger-cli",
		Short: "Textbook RSA messaging CLI tool",
		Long: `rsa-messenger-cli generates RSA key triples and encrypts or decrypts short text
messages with them. Messages are packed into a single integer using fixed-width
code point blocks (narrow: 7 bits, wide: 18 bits) before exponentiation.

No padding is applied. Do not use this tool to protect real data.

The following environment variables are read:
- RSA_MESSENGER_LOG_LEVEL (debug, info, warning, error, critical)
- RSA_MESSENGER_LOG_TYPE (console, file)
- RSA_MESSENGER_LOG_FILE (required when RSA_MESSENGER_LOG_TYPE=file)
- RSA_MESSENGER_KEY_BITS (default modulus size, 512 to 4096)
- RSA_MESSENGER_ENCODING (default encoding, narrow or wide)`,
		SilenceUsage: true,
	}
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
