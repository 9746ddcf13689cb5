package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/passphrase"
	"github.com/sealbox/sealbox/internal/terminal"
	"github.com/sealbox/sealbox/internal/ui"
)

var strengthCmd = &cobra.Command{
	Use:   "strength [password]",
	Short: "Estimate the strength of a password",
	Long: `Scores a password from 0 (very weak) to 4 (very strong) from its
estimated entropy. Pass the password as an argument, or run with no
arguments to be prompted without echo (preferred: arguments end up in
shell history).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) > 0 {
			password = args[0]
		} else {
			var err error
			password, err = terminal.ReadPassphrase("Enter password: ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read password: %v", err)
			}
		}

		result := passphrase.EstimateStrength(password)

		meter := ui.Error
		if result.Score >= 3 {
			meter = ui.Success
		} else if result.Score == 2 {
			meter = ui.Warning
		}

		fmt.Printf("score:    %s\n", meter.Sprintf("%d/4", result.Score))
		fmt.Printf("entropy:  ~%d bits\n", result.EntropyBits)
		fmt.Printf("feedback: %s\n", result.Feedback)
		return nil
	},
}
