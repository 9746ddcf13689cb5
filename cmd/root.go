package cmd

import (
	logger "github.com/sealbox/sealbox/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sealbox",
		Short: "Encrypt text and files into portable passphrase-protected envelopes",
		Long: `Sealbox turns plaintext into a portable, self-describing encrypted
envelope using a passphrase, and back again. No server is involved.

Envelopes are one line of text, safe to paste into a chat or an email.
Everything needed to decrypt except the secret travels inside the
envelope: algorithm identifiers, salt, nonce, and the PBKDF2 iteration
count. A derived key can also be exported to a separate key file so the
envelope can be opened without re-entering the passphrase.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sealbox with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(keyCmd)
	RootCmd.AddCommand(passphraseCmd)
	RootCmd.AddCommand(strengthCmd)
	RootCmd.AddCommand(historyCmd)
}
