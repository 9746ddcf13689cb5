package terminal

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// PassphraseEnvVar lets scripts supply the passphrase without a prompt.
const PassphraseEnvVar = "SEALBOX_PASSPHRASE"

// ReadPassphrase prompts for a passphrase without echoing input. The
// environment variable escape hatch is checked first so piped invocations
// work. When stdin is not a terminal (the plaintext is being piped in),
// the prompt falls back to /dev/tty.
func ReadPassphrase(prompt string) (string, error) {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		return env, nil
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		passphrase, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", err)
		}
		return string(passphrase), nil
	}

	return readFromTTY(prompt)
}

// ReadPassphraseWithConfirm prompts twice and requires both entries to
// match. Used on encrypt, where a typo would lock the user out.
func ReadPassphraseWithConfirm(prompt, confirmPrompt string) (string, error) {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		return env, nil
	}

	passphrase, err := ReadPassphrase(prompt)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassphrase(confirmPrompt)
	if err != nil {
		return "", err
	}
	if passphrase != confirm {
		return "", fmt.Errorf("passphrases do not match")
	}
	return passphrase, nil
}

// ReadConfirm prompts for a yes/no answer on the terminal. Anything other
// than "y" or "yes" is no.
func ReadConfirm(prompt string) (bool, error) {
	fmt.Fprint(os.Stderr, prompt)
	var answer string
	if _, err := fmt.Fscanln(os.Stdin, &answer); err != nil {
		return false, nil
	}
	return answer == "y" || answer == "Y" || answer == "yes", nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func readFromTTY(prompt string) (string, error) {
	ttyPath := "/dev/tty"
	if runtime.GOOS == "windows" {
		ttyPath = "CON"
	}

	tty, err := os.Open(ttyPath)
	if err != nil {
		return "", fmt.Errorf("cannot read passphrase: stdin is piped and %s is unavailable; set %s", ttyPath, PassphraseEnvVar)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%s is not a terminal", ttyPath)
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return string(passphrase), nil
}
