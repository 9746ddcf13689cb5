// Package logger provides leveled logging for sealbox CLI commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown. Commands
// construct a Logger from their flags in PersistentPreRun and pass it
// down; there is no global logger state.
package logger
