package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/envelope"
	"github.com/sealbox/sealbox/internal/terminal"
)

var keyExportOut string

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage exported envelope keys",
}

var keyExportCmd = &cobra.Command{
	Use:   "export [envelope-file]",
	Short: "Export the derived key for an envelope to a key file",
	Long: `Derives the envelope's key from your passphrase using the salt and
iteration count stored in the envelope, and writes it to a separate key
file. Whoever holds the key file can decrypt the envelope without the
passphrase, so treat it like the secret it is and store it apart from
the envelope.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting key export command")

		input, _, err := readInput(args)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read input: %v", err)
		}

		env, err := envelope.DecodeText(string(input))
		if err != nil {
			return reportDecodeError(err)
		}

		passphrase, err := terminal.ReadPassphrase("Enter passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read passphrase: %v", err)
		}

		spinner, cleanup := startSpinner("Deriving key...")
		defer cleanup()

		if err := exportKeyFile(env, passphrase, keyExportOut); err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Failed to export key: " + err.Error()
			return err
		}

		finalMessage := color.GreenString("✓") + " Key exported"
		if keyExportOut != "" {
			finalMessage += ": " + color.YellowString(keyExportOut)
		}
		finalMessage += "\n" + color.CyanString("→") + " Store the key file separately from the envelope"
		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	keyExportCmd.Flags().StringVarP(&keyExportOut, "out", "o", "", "write the key to a file instead of stdout")
	keyCmd.AddCommand(keyExportCmd)
}
