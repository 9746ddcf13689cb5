package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/envelope"
	"github.com/sealbox/sealbox/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show an envelope's public metadata without decrypting it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _, err := readInput(args)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read input: %v", err)
		}

		env, err := envelope.DecodeText(string(input))
		if err != nil {
			return reportDecodeError(err)
		}

		salt, err := env.DecodeSalt()
		if err != nil {
			return reportDecodeError(err)
		}
		iv, err := env.DecodeIV()
		if err != nil {
			return reportDecodeError(err)
		}
		ct, err := env.DecodeCiphertext()
		if err != nil {
			return reportDecodeError(err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Valid envelope")
		fmt.Printf("  algorithm:  %s\n", env.Algorithm)
		fmt.Printf("  kdf:        %s\n", env.KDF)
		fmt.Printf("  iterations: %d\n", env.Iterations)
		fmt.Printf("  salt:       %d bytes\n", len(salt))
		fmt.Printf("  iv:         %d bytes\n", len(iv))
		fmt.Printf("  ciphertext: %d bytes %s\n", len(ct), ui.Muted.Sprint("tag included"))
		return nil
	},
}
