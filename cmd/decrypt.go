package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/crypto"
	"github.com/sealbox/sealbox/internal/envelope"
	serrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/terminal"
)

var (
	decryptOut     string
	decryptKeyFile string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [file]",
	Short: "Decrypt an envelope back into plaintext",
	Long: `Reads envelope text from a file or stdin, in either the canonical
base64-wrapped form or raw JSON, and decrypts it with a passphrase or an
exported key file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		input, _, err := readInput(args)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read input: %v", err)
		}

		env, err := envelope.DecodeText(string(input))
		if err != nil {
			return reportDecodeError(err)
		}
		Logger.Debugf("Envelope valid: %s/%s, %d iterations", env.Algorithm, env.KDF, env.Iterations)

		var plaintext []byte
		if decryptKeyFile != "" {
			plaintext, err = decryptWithKeyFile(env, decryptKeyFile)
		} else {
			var passphrase string
			passphrase, err = terminal.ReadPassphrase("Enter passphrase: ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read passphrase: %v", err)
			}
			spinner, cleanup := startSpinner("Decrypting...")
			plaintext, err = crypto.Decrypt(env, passphrase)
			if err == nil {
				spinner.FinalMSG = color.GreenString("✓") + " Decrypted successfully"
			}
			cleanup()
		}
		if err != nil {
			if errors.Is(err, serrors.ErrAuthenticationFailed) {
				if decryptKeyFile != "" {
					return Logger.ErrorfAndReturn("Decryption failed: this key does not match this envelope")
				}
				return Logger.ErrorfAndReturn("Decryption failed: wrong passphrase or corrupted envelope")
			}
			return Logger.ErrorfAndReturn("Decryption failed: %v", err)
		}

		if err := writeOutput(decryptOut, plaintext); err != nil {
			return Logger.ErrorfAndReturn("Failed to write plaintext: %v", err)
		}
		Logger.Infof("Decrypt command completed successfully")
		return nil
	},
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptOut, "out", "o", "", "write plaintext to a file instead of stdout")
	decryptCmd.Flags().StringVarP(&decryptKeyFile, "key-file", "k", "", "decrypt with an exported key file instead of a passphrase")
}

// decryptWithKeyFile imports an exported key and opens the envelope with
// it, skipping derivation.
func decryptWithKeyFile(env *envelope.Envelope, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := crypto.ImportKey(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return crypto.DecryptWithKey(env, key)
}

// reportDecodeError turns codec errors into actionable CLI messages.
func reportDecodeError(err error) error {
	switch {
	case errors.Is(err, serrors.ErrUnsupportedAlgorithm):
		return Logger.ErrorfAndReturn("Unsupported envelope: %v", err)
	case errors.Is(err, serrors.ErrMalformedEnvelope):
		return Logger.ErrorfAndReturn("Not a valid envelope: %v", err)
	default:
		return Logger.ErrorfAndReturn("Failed to decode envelope: %v", err)
	}
}
