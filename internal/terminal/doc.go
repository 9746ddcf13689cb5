// Package terminal handles interactive passphrase and confirmation
// prompts. Passphrases are read without echo via x/term, with a /dev/tty
// fallback when stdin carries piped data and a SEALBOX_PASSPHRASE
// environment variable escape hatch for scripts.
package terminal
