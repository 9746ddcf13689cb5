package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/sealbox/sealbox/internal/configs"
	"github.com/sealbox/sealbox/internal/history"
	"github.com/sealbox/sealbox/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when
// not in verbose or debug mode. Returns the spinner and a cleanup
// function to defer. FinalMSG values do not need trailing newlines; the
// cleanup function applies ui.EnsureNewline before printing.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// Continue without a colored spinner.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Discard stray log output while the spinner owns the line.
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(os.Stderr, finalMsg)
		}
	}

	return s, cleanup
}

// readInput reads the whole of the named file, or stdin when no file is
// given (or the file is "-").
func readInput(args []string) ([]byte, string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return data, args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, "", nil
}

// writeOutput writes data to the named file, or stdout when path is
// empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// openHistory loads the user config and opens the history store. The
// returned close function releases the backing database.
func openHistory() (*history.Store, func(), error) {
	config, err := configs.Load()
	if err != nil {
		return nil, nil, err
	}
	path, err := config.HistoryPath()
	if err != nil {
		return nil, nil, err
	}
	backend, err := history.OpenBolt(path)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := backend.Close(); err != nil {
			Logger.Warnf("Failed to close history database: %v", err)
		}
	}
	return history.NewStore(backend), closeFn, nil
}
