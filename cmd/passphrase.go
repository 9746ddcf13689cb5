package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/configs"
	"github.com/sealbox/sealbox/internal/passphrase"
	"github.com/sealbox/sealbox/internal/ui"
)

var passphraseWords int

var passphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Generate a random wordlist passphrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		words := passphraseWords
		if words <= 0 {
			config, err := configs.Load()
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to load config: %v", err)
			}
			words = config.Defaults.Words
		}
		if words <= 0 {
			words = passphrase.DefaultWordCount
		}

		generated, err := passphrase.Generate(words)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to generate passphrase: %v", err)
		}

		strength := passphrase.EstimateStrength(generated)
		fmt.Println(generated)
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Muted.Sprintf("%d words, ~%d bits: %s", words, strength.EntropyBits, strength.Feedback))
		return nil
	},
}

func init() {
	passphraseCmd.Flags().IntVarP(&passphraseWords, "words", "w", 0, "number of words (default 6)")
}
