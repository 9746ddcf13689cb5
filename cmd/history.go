package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox/internal/envelope"
	"github.com/sealbox/sealbox/internal/history"
	"github.com/sealbox/sealbox/internal/terminal"
	"github.com/sealbox/sealbox/internal/ui"
)

var historyClearForce bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the local log of past envelopes",
	Long: `Sealbox keeps the last 20 envelopes you created in a local database,
newest first. The log holds envelopes only, never passphrases, keys, or
plaintext.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded envelopes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open history: %v", err)
		}
		defer closeStore()

		entries := store.List()
		if len(entries) == 0 {
			fmt.Println(ui.Muted.Sprint("history is empty"))
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s  %s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				ui.Highlight.Sprint(e.ID),
				e.Name,
				ui.Muted.Sprintf("%d bytes", e.Size))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the envelope text of a recorded entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open history: %v", err)
		}
		defer closeStore()

		for _, e := range store.List() {
			if e.ID == args[0] {
				return printEntry(e)
			}
		}
		return Logger.ErrorfAndReturn("No history entry with id %s", args[0])
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove one entry from history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open history: %v", err)
		}
		defer closeStore()

		if err := store.Remove(args[0]); err != nil {
			return Logger.ErrorfAndReturn("Failed to remove entry: %v", err)
		}
		fmt.Println(ui.Success.Sprint("✓") + " Removed")
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !historyClearForce {
			ok, err := terminal.ReadConfirm("Clear all history? [y/N] ")
			if err != nil || !ok {
				fmt.Println(ui.Muted.Sprint("aborted"))
				return nil
			}
		}

		store, closeStore, err := openHistory()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open history: %v", err)
		}
		defer closeStore()

		if err := store.Clear(); err != nil {
			return Logger.ErrorfAndReturn("Failed to clear history: %v", err)
		}
		fmt.Println(color.GreenString("✓") + " History cleared")
		return nil
	},
}

func printEntry(e *history.Entry) error {
	text, err := envelope.EncodeText(e.Payload)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to encode envelope: %v", err)
	}
	fmt.Println(text)
	return nil
}

func init() {
	historyClearCmd.Flags().BoolVarP(&historyClearForce, "force", "f", false, "do not ask for confirmation")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)
}
