// Package configs handles the sealbox user configuration.
//
// Configuration lives in a single TOML file under the user config
// directory (~/.config/sealbox/config.toml on Linux). It holds only
// preferences, never secrets: default PBKDF2 iterations, default
// passphrase word count, and an optional history database path. A missing
// config file is not an error; everything has a built-in default.
package configs
