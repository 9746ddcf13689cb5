// Package ui provides semantic text formatting for CLI output, with
// automatic fallback to plain-text decorations when color is disabled.
package ui
