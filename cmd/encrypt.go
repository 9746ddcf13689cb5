package cmd

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/configs"
	"github.com/sealbox/sealbox/internal/crypto"
	"github.com/sealbox/sealbox/internal/envelope"
	"github.com/sealbox/sealbox/internal/terminal"
)

var (
	encryptIterations int
	encryptOut        string
	encryptName       string
	encryptNoHistory  bool
	encryptExportKey  string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [file]",
	Short: "Encrypt a file or stdin into a passphrase-protected envelope",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		plaintext, inputName, err := readInput(args)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read input: %v", err)
		}
		Logger.Debugf("Read %d bytes of plaintext", len(plaintext))

		passphrase, err := terminal.ReadPassphraseWithConfirm("Enter passphrase: ", "Confirm passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read passphrase: %v", err)
		}

		config, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}
		iterations := resolveIterations(config)
		Logger.Debugf("Using %d PBKDF2 iterations", iterations)

		spinner, cleanup := startSpinner("Encrypting...")
		defer cleanup()

		env, err := crypto.Encrypt(plaintext, passphrase, crypto.Options{Iterations: iterations})
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Encryption failed: " + err.Error()
			return err
		}

		text, err := envelope.EncodeText(env)
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Failed to encode envelope: " + err.Error()
			return err
		}

		if encryptExportKey != "" {
			if err := exportKeyFile(env, passphrase, encryptExportKey); err != nil {
				spinner.FinalMSG = color.RedString("✗") + " Failed to export key: " + err.Error()
				return err
			}
			Logger.Infof("Exported key to %s", encryptExportKey)
		}

		if err := writeOutput(encryptOut, []byte(text+"\n")); err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Failed to write envelope: " + err.Error()
			return err
		}

		finalMessage := color.GreenString("✓") + " Envelope created"

		// History is bookkeeping: a failed append must not unwind the
		// envelope that was just produced and written.
		if !encryptNoHistory {
			name := encryptName
			if name == "" && inputName != "" {
				name = filepath.Base(inputName)
			}
			if name == "" {
				name = "untitled"
			}
			if err := appendHistory(name, env, len(plaintext)); err != nil {
				Logger.WarnfAlways("Envelope created, but history was not updated: %v", err)
			}
		}

		if encryptOut != "" {
			finalMessage += ": " + color.YellowString(encryptOut)
		}
		spinner.FinalMSG = finalMessage
		Logger.Infof("Encrypt command completed successfully")
		return nil
	},
}

func init() {
	encryptCmd.Flags().IntVarP(&encryptIterations, "iterations", "i", 0, "PBKDF2 iteration count (default 200000)")
	encryptCmd.Flags().StringVarP(&encryptOut, "out", "o", "", "write the envelope to a file instead of stdout")
	encryptCmd.Flags().StringVarP(&encryptName, "name", "n", "", "label for the history entry")
	encryptCmd.Flags().BoolVar(&encryptNoHistory, "no-history", false, "do not record this envelope in history")
	encryptCmd.Flags().StringVar(&encryptExportKey, "export-key", "", "also write the derived key to a separate key file")
}

// resolveIterations picks the iteration count: the command flag wins,
// then the config default, then the built-in constant.
func resolveIterations(config *configs.Config) int {
	if encryptIterations > 0 {
		return encryptIterations
	}
	if config.Defaults.Iterations > 0 {
		return config.Defaults.Iterations
	}
	return crypto.DefaultIterations
}

// exportKeyFile re-derives the envelope's key and writes it as a wrapped
// JWK. The key file is a separate artifact; it never travels inside the
// envelope.
func exportKeyFile(env *envelope.Envelope, passphrase, path string) error {
	salt, err := env.DecodeSalt()
	if err != nil {
		return err
	}
	key, err := crypto.DeriveKey(passphrase, salt, env.Iterations)
	if err != nil {
		return err
	}
	defer key.Zero()

	text, err := crypto.ExportKey(key)
	if err != nil {
		return err
	}
	return writeOutput(path, []byte(text+"\n"))
}

// appendHistory records the envelope in the capped history log.
func appendHistory(name string, env *envelope.Envelope, size int) error {
	store, closeStore, err := openHistory()
	if err != nil {
		return err
	}
	defer closeStore()

	_, err = store.Append(name, env, size)
	return err
}
